package cli

import (
	"fmt"
	"path/filepath"

	"resumelens/internal/common"
	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/history"
	"resumelens/internal/scoring"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-description-file]",
	Short: "Score a resume, optionally against a job description",
	Long: `Run the full scoring pipeline over a resume: ATS compatibility checks,
content strength, overused-phrase detection and quantified-metrics analysis.
The resume file must be a JSON resume document (as produced by the parse
command). An optional second argument supplies a job description, either as
plain text or as a JSON job object, enabling keyword matching and the
match component of the weighted overall score.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

var (
	scoreSave  bool
	scoreLabel string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Save the analysis to the local history database")
	scoreCmd.Flags().StringVar(&scoreLabel, "label", "", "Label for the saved history entry (default: resume file name)")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	fileProcessor := common.NewFileProcessor(logger)
	outputHandler := common.NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	resume, err := common.DecodeResume(contents[0])
	if err != nil {
		return err
	}

	var jd types.JobDescription
	if len(contents) == 2 {
		jd = common.DecodeJobDescription(contents[1])
	}

	logger.Info("Starting resume scoring",
		"resume_file", args[0],
		"has_job_description", len(contents) == 2,
		"output_format", scoreConfig.OutputFormat)

	analysis := scoring.Analyze(resume, jd)

	if err := outputHandler.HandleOutput(analysis, scoreConfig); err != nil {
		return err
	}

	if scoreSave {
		if err := saveToHistory(cmd, cfg, logger, args[0], analysis); err != nil {
			return err
		}
	}

	logger.Info("Resume scoring completed successfully", "overall", analysis.Overall)
	return nil
}

func saveToHistory(cmd *cobra.Command, cfg *config.Config, logger *errors.Logger, resumePath string, analysis types.ResumeAnalysis) error {
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in configuration")
	}

	store, err := history.Open(cfg.History.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() { _ = store.Close() }()

	label := scoreLabel
	if label == "" {
		label = filepath.Base(resumePath)
	}

	id, err := store.Save(cmd.Context(), label, &analysis)
	if err != nil {
		return fmt.Errorf("failed to save analysis to history: %w", err)
	}

	logger.Info("Analysis saved to history", "id", id, "label", label)
	return nil
}
