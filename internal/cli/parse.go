package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-text-file]",
	Short: "Parse raw resume text into a structured document using AI",
	Long: `Parse a plain-text resume into the structured JSON document consumed
by the scoring commands. The command takes one argument: the path to the
raw resume text file. Output defaults to JSON so it can be fed directly
into score, ats and match.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Structured documents only render as JSON
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = "json"
		}
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	// Create AI service for parse operation
	parseAIConfig := cfg.GetParseConfig()
	aiService, err := ai.NewService(&parseAIConfig, "parse", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (types.ParseResumeInput, error) {
		if len(contents) != 1 {
			return types.ParseResumeInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ParseResumeInput{
			ResumeText: contents[0],
		}, nil
	}

	logDetails := func(input types.ParseResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume parsing",
			"resume_chars", len(input.ResumeText),
			"output_format", cfg.OutputFormat)
	}

	// Create a wrapper function that uses our specific AI service
	parseOperation := func(ctx context.Context, input types.ParseResumeInput) (types.ParseResumeOutput, *ai.TokenUsage, error) {
		return aiService.Provider.ParseResume(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		parseConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parsing completed successfully")
	return nil
}
