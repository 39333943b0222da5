package cli

import (
	"resumelens/internal/common"
	"resumelens/internal/scoring"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats [resume-file]",
	Short: "Run the ATS compatibility checklist over a resume",
	Long: `Check a resume against the ATS compatibility checklist: contact
information, section structure, formatting signals, keyword coverage,
quantified achievements and overall length. The resume file must be a
JSON resume document. The output includes per-area sub-scores and
actionable feedback.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if atsConfig.OutputFormat == "" {
			atsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(atsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runATS,
}

var atsConfig common.CommandConfig

func init() {
	atsCmd.Flags().StringVarP(&atsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	atsCmd.Flags().StringVar(&atsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = atsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runATS(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	createInput := func(contents []string) (types.ResumeDocument, error) {
		return common.DecodeResume(contents[0])
	}

	logDetails := func(input types.ResumeDocument, cfg common.CommandConfig) {
		logger.Info("Starting ATS compatibility check",
			"resume_file", args[0],
			"output_format", cfg.OutputFormat)
	}

	err = common.RunEngineCommand(
		logger,
		atsConfig,
		args,
		createInput,
		scoring.ScoreATS,
		logDetails,
	)

	if err != nil {
		return err
	}
	logger.Info("ATS compatibility check completed successfully")
	return nil
}
