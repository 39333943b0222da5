package cli

import (
	"resumelens/internal/common"
	"resumelens/internal/scoring"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-description-file]",
	Short: "Match a resume against a job description",
	Long: `Extract keywords from a job description and report which of them the
resume covers. The resume file must be a JSON resume document; the job
description can be plain text or a JSON job object. The output lists
matched, missing and extra keywords along with the match score.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

// matchInput pairs the decoded resume with the job description it is
// matched against.
type matchInput struct {
	Resume types.ResumeDocument
	Job    types.JobDescription
}

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	createInput := func(contents []string) (matchInput, error) {
		resume, err := common.DecodeResume(contents[0])
		if err != nil {
			return matchInput{}, err
		}
		return matchInput{
			Resume: resume,
			Job:    common.DecodeJobDescription(contents[1]),
		}, nil
	}

	logDetails := func(input matchInput, cfg common.CommandConfig) {
		logger.Info("Starting job description matching",
			"resume_file", args[0],
			"job_file", args[1],
			"job_chars", len(input.Job.Description),
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(input matchInput) types.KeywordMatchResult {
		return scoring.MatchJobDescription(input.Resume, input.Job)
	}

	err = common.RunEngineCommand(
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return err
	}
	logger.Info("Job description matching completed successfully")
	return nil
}
