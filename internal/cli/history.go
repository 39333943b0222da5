package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/history"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent resume analyses from the local history database",
	Long: `List recently saved resume analyses. Entries are written by the score
command when run with --save, letting you compare score changes across
resume revisions.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	historyLimit  int
	historyFormat string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to list")
	historyCmd.Flags().StringVar(&historyFormat, "format", "text", "Output format: json or text")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in configuration")
	}

	store, err := history.Open(cfg.History.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() { _ = store.Close() }()

	records, err := store.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	switch historyFormat {
	case "json":
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode history: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		printHistoryTable(records)
	default:
		return fmt.Errorf("unsupported output format '%s'. Supported formats: [json text]", historyFormat)
	}

	return nil
}

func printHistoryTable(records []history.Record) {
	if len(records) == 0 {
		fmt.Println("No saved analyses yet. Run 'resumelens score --save' to record one.")
		return
	}

	fmt.Printf("%-5s %-20s %-25s %8s %6s %7s %9s\n",
		"ID", "DATE", "LABEL", "OVERALL", "ATS", "MATCH", "CONTENT")
	for _, r := range records {
		match := "-"
		if r.MatchScore != nil {
			match = fmt.Sprintf("%d", *r.MatchScore)
		}
		label := r.Label
		if len(label) > 25 {
			label = label[:22] + "..."
		}
		fmt.Printf("%-5d %-20s %-25s %8d %6d %7s %9d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), label,
			r.Overall, r.ATSOverall, match, r.ContentStrength)
		if len(r.MissingKeywords) > 0 {
			fmt.Printf("      missing: %s\n", strings.Join(r.MissingKeywords, ", "))
		}
	}
}
