package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resumelens/internal/ai"
	"resumelens/internal/observability"
	"resumelens/internal/scoring"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the full analysis handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		// Parse request
		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		resumeText := scoring.ResumeText(req.Resume)
		if strings.TrimSpace(resumeText) == "" {
			err := fmt.Errorf("empty resume document")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Empty resume", "resume field must contain a non-empty resume document", http.StatusBadRequest)
			return
		}

		var jd types.JobDescription
		if req.Job != nil {
			jd = *req.Job
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(resumeText)),
			attribute.Bool("request.has_job", req.Job != nil),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		var result types.ResumeAnalysis
		metrics.TrackScoreOperation(ctx, "score", func(ctx context.Context) {
			result = scoring.Analyze(req.Resume, jd)
		})

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("score.overall", result.Overall),
			attribute.Int("score.ats", result.ATS.Overall))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.overall", result.Overall),
			attribute.Int("response.ats_overall", result.ATS.Overall),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createATSHandler wraps the ATS checklist handler with observability
func (s *Server) createATSHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.ats")
		defer span.End()

		var req ATSRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation (similar to score)
		resumeText := scoring.ResumeText(req.Resume)
		if strings.TrimSpace(resumeText) == "" {
			err := fmt.Errorf("empty resume document")
			span.RecordError(err)
			writeErrorResponse(w, "Empty resume", "resume field must contain a non-empty resume document", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(resumeText)),
			attribute.String("operation", "ats"),
		)

		metrics := om.GetMetrics()
		var result types.ATSScore
		metrics.TrackScoreOperation(ctx, "ats", func(ctx context.Context) {
			result = scoring.ScoreATS(req.Resume)
		})

		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("score.ats", result.Overall))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.ats_overall", result.Overall),
			attribute.Int("response.feedback_count", len(result.Feedback)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createMatchHandler wraps the job-match handler with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		resumeText := scoring.ResumeText(req.Resume)
		if strings.TrimSpace(resumeText) == "" {
			err := fmt.Errorf("empty resume document")
			span.RecordError(err)
			writeErrorResponse(w, "Empty resume", "resume field must contain a non-empty resume document", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Job.Description) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "job.description field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(resumeText)),
			attribute.Int("request.job_length", len(req.Job.Description)),
			attribute.String("operation", "match"),
		)

		metrics := om.GetMetrics()
		var result types.KeywordMatchResult
		metrics.TrackScoreOperation(ctx, "match", func(ctx context.Context) {
			result = scoring.MatchJobDescription(req.Resume, req.Job)
		})

		metrics.RecordBusinessMetric(ctx, "jd_matched", true, om,
			attribute.Int("score.match", result.Score),
			attribute.Int("match.missing_count", len(result.Missing)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.match_score", result.Score),
			attribute.Int("response.missing_count", len(result.Missing)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createParseHandler wraps the AI resume parser with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		var req ParseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "parse"),
		)

		input := types.ParseResumeInput{
			ResumeText: req.ResumeText,
		}

		// Create AI service for parse operation
		parseConfig := s.AppConfig.GetParseConfig()
		aiService, err := ai.NewService(&parseConfig, "parse", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		// Track AI operation with observability and token usage
		metrics := om.GetMetrics()
		var result types.ParseResumeOutput
		err = metrics.TrackAIOperationWithTokens(ctx, "parse", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.ParseResume(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "resume_parsed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to parse resume", err.Error(), http.StatusInternalServerError)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Int("output.experience_count", len(result.Resume.Experience)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.experience_count", len(result.Resume.Experience)),
			attribute.Int("response.education_count", len(result.Resume.Education)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
