package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resumelens/internal/config"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// modelLoadingRetryDelay is the fixed wait before the single retry
// allowed when the provider reports the model is still loading.
const modelLoadingRetryDelay = 10 * time.Second

// GeminiProvider implements AIProvider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *apperrors.Logger
}

// Ensure GeminiProvider implements AIProvider
var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *apperrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	circuitBreaker := NewAICircuitBreaker(operationType, cfg, logger)
	modelBreaker := NewModelCircuitBreaker(operationType, cfg, logger)

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: circuitBreaker,
		modelBreaker:   modelBreaker,
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelLoadingRetryDelay)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// executeWithLoadingRetry runs an AI call with the only retry the
// provider contract allows: when the model is still loading (HTTP 503
// with a loading indicator), wait a fixed 10 seconds and try exactly
// once more. Every other failure surfaces immediately; there is no
// backoff policy beyond this.
func (g *GeminiProvider) executeWithLoadingRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	result, err := fn()
	if err == nil {
		return result, nil
	}

	if !isModelLoadingError(err) {
		return nil, err
	}

	g.logger.Warn("Model still loading, retrying once after fixed delay",
		"operation", operation,
		"delay", modelLoadingRetryDelay.String(),
		"error", err.Error())

	select {
	case <-time.After(modelLoadingRetryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	result, err = fn()
	if err != nil {
		g.logger.LogError(err, "AI operation failed after loading retry",
			"operation", operation)
		return nil, fmt.Errorf("operation '%s' failed after loading retry: %w", operation, err)
	}

	g.logger.Info("AI operation succeeded after loading retry",
		"operation", operation)
	return result, nil
}

// isModelLoadingError reports whether the provider answered 503 with a
// model-loading indicator.
func isModelLoadingError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code != http.StatusServiceUnavailable {
			return false
		}
		return strings.Contains(strings.ToLower(apiErr.Message), "loading") ||
			strings.Contains(strings.ToLower(apiErr.Body), "loading")
	}

	return false
}

// executeAIOperation is a generic helper to run AI operations with common tracing, circuit breaker, and parsing logic.
func executeAIOperation[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out
	tracer := otel.Tracer("resumelens.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithLoadingRetry(ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed, "Failed to generate content for "+operationName, err)
	}

	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, apperrors.NewAIError("AI_RESPONSE_PARSE_FAILED", "Failed to parse AI response for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output, tokenUsage, nil
}

// ParseResume implements AIProvider interface for structured resume parsing
func (g *GeminiProvider) ParseResume(ctx context.Context, input types.ParseResumeInput) (types.ParseResumeOutput, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForParse(input.ResumeText)
	config := g.buildParseSchema()

	resume, tokenUsage, err := executeAIOperation[types.ResumeDocument](
		g,
		ctx,
		"parse_resume",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.resume_length", len(input.ResumeText)),
	)

	if err != nil {
		return types.ParseResumeOutput{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.experience_entries", len(resume.Experience)),
			attribute.Int("output.education_entries", len(resume.Education)),
			attribute.Int("output.technical_skills", len(resume.Skills.Technical)),
		)
	}

	return types.ParseResumeOutput{Resume: resume}, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	// Overall health - both breakers must be healthy
	aiHealthy := g.circuitBreaker.IsHealthy()
	modelHealthy := g.modelBreaker.IsModelHealthy()
	stats["overall_healthy"] = aiHealthy && modelHealthy

	return stats
}

// Close implements AIProvider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// buildParseSchema creates the schema for resume parsing requests
func (g *GeminiProvider) buildParseSchema() *genai.GenerateContentConfig {
	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"personalInfo": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"fullName":  {Type: genai.TypeString},
						"email":     {Type: genai.TypeString},
						"phone":     {Type: genai.TypeString},
						"location":  {Type: genai.TypeString},
						"linkedin":  {Type: genai.TypeString},
						"portfolio": {Type: genai.TypeString},
					},
					Required: []string{"fullName", "email", "phone", "location", "linkedin", "portfolio"},
				},
				"summary": {Type: genai.TypeString},
				"experience": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"company":     {Type: genai.TypeString},
							"position":    {Type: genai.TypeString},
							"startDate":   {Type: genai.TypeString},
							"endDate":     {Type: genai.TypeString},
							"location":    {Type: genai.TypeString},
							"current":     {Type: genai.TypeBoolean},
							"description": stringArray,
						},
						Required: []string{"company", "position", "startDate", "endDate", "current", "description"},
					},
				},
				"education": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"degree":         {Type: genai.TypeString},
							"school":         {Type: genai.TypeString},
							"gpa":            {Type: genai.TypeString},
							"graduationDate": {Type: genai.TypeString},
						},
						Required: []string{"degree", "school", "gpa", "graduationDate"},
					},
				},
				"skills": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"technical": stringArray,
						"soft":      stringArray,
					},
					Required: []string{"technical", "soft"},
				},
			},
			Required: []string{"personalInfo", "summary", "experience", "education", "skills"},
		},
	}

	// Apply temperature configuration if set
	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// getPromptsForParse returns system and user prompts for resume parsing
func (g *GeminiProvider) getPromptsForParse(resumeText string) (string, string) {
	systemPrompt := resolvePrompt(g.config.CustomPrompts.SystemPrompts.ParseResume, DefaultSystemPrompts.ParseResume)
	userPrompt := resolvePrompt(g.config.CustomPrompts.UserPrompts.ParseResume, DefaultUserPrompts.ParseResume)

	return systemPrompt, fmt.Sprintf(userPrompt, resumeText)
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

// resolvePrompt selects the configured prompt when present, otherwise
// the hardcoded default.
func resolvePrompt(fromConfig, fromDefault string) string {
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
