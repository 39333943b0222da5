package ai

import (
	"log/slog"
	"testing"
	"time"

	"resumelens/internal/config"
	"resumelens/internal/errors"
)

// Helper functions to create pointers for test values
func timePtr(d time.Duration) *time.Duration { return &d }
func float32Ptr(f float32) *float32          { return &f }
func boolPtr(b bool) *bool                   { return &b }

var testLogger = errors.NewLogger(slog.LevelDebug)

// TestParseConfigDerivation verifies that the parse operation's
// configuration is correctly derived, with fallbacks to the global
// AI configuration.
func TestParseConfigDerivation(t *testing.T) {
	testConfig := &config.Config{
		AI: config.AIConfig{
			// Global defaults that should be used as fallbacks
			Provider:         "gemini",
			Model:            "global-model",
			Timeout:          60 * time.Second,
			APIKey:           "global-api-key",
			Temperature:      0.9,
			UseSystemPrompts: true,

			// Operation-specific configuration that overrides globals
			Parse: config.OperationAIConfig{
				Model:       "parse-specific-model",
				Timeout:     timePtr(90 * time.Second),
				Temperature: float32Ptr(0.1),
				// APIKey and UseSystemPrompts fall back to global values.
			},
		},
	}

	cfg := testConfig.GetParseConfig()

	if cfg.Model != "parse-specific-model" {
		t.Errorf("Expected Model 'parse-specific-model', got '%s'", cfg.Model)
	}
	if *cfg.Timeout != 90*time.Second {
		t.Errorf("Expected Timeout 90s, got %v", *cfg.Timeout)
	}
	if *cfg.Temperature != float32(0.1) {
		t.Errorf("Expected Temperature 0.1, got %f", *cfg.Temperature)
	}
	if cfg.APIKey != "global-api-key" {
		t.Errorf("Expected APIKey fallback 'global-api-key', got '%s'", cfg.APIKey)
	}
	if !*cfg.UseSystemPrompts {
		t.Error("Expected UseSystemPrompts fallback true")
	}

	if _, err := NewService(&cfg, "Parse", testLogger); err != nil {
		// We expect an error due to the dummy API key, but not a panic.
		t.Logf("Received expected error when creating service with test key: %v", err)
	}
}

func TestParseConfigAllFallbacks(t *testing.T) {
	testConfig := &config.Config{
		AI: config.AIConfig{
			Provider:         "gemini",
			Model:            "global-model",
			Timeout:          60 * time.Second,
			APIKey:           "global-api-key",
			Temperature:      0.9,
			UseSystemPrompts: true,
			// No parse-specific overrides at all.
		},
	}

	cfg := testConfig.GetParseConfig()

	if cfg.Model != "global-model" {
		t.Errorf("Expected Model fallback 'global-model', got '%s'", cfg.Model)
	}
	if *cfg.Timeout != 60*time.Second {
		t.Errorf("Expected Timeout fallback 60s, got %v", *cfg.Timeout)
	}
	if *cfg.Temperature != float32(0.9) {
		t.Errorf("Expected Temperature fallback 0.9, got %f", *cfg.Temperature)
	}
}

func TestCircuitBreakerIntegrationWithService(t *testing.T) {
	testOpConfig := &config.OperationAIConfig{
		Provider:         "gemini",
		Model:            "test-model",
		Timeout:          timePtr(30 * time.Second),
		APIKey:           "test-key",
		Temperature:      float32Ptr(0.5),
		UseSystemPrompts: boolPtr(true),
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      5,
			Interval:         30 * time.Second,
			Timeout:          45 * time.Second,
			MinRequests:      2,
			FailureThreshold: 0.8,
		},
	}

	service, err := NewService(testOpConfig, "test-op", testLogger)
	if err != nil {
		t.Logf("Received expected error when creating service with test key: %v", err)
	}

	if service.config.CircuitBreaker.MaxRequests != 5 {
		t.Errorf("Expected circuit breaker max requests 5, got %d", service.config.CircuitBreaker.MaxRequests)
	}
	if service.config.CircuitBreaker.FailureThreshold != 0.8 {
		t.Errorf("Expected circuit breaker failure threshold 0.8, got %f", service.config.CircuitBreaker.FailureThreshold)
	}

	if geminiProvider, ok := service.Provider.(*GeminiProvider); ok {
		stats := geminiProvider.GetCircuitBreakerStats()

		aiOpsStats, ok := stats["ai_operations"].(map[string]any)
		if !ok {
			t.Fatal("AI operations stats should exist and be a map")
		}
		if name, _ := aiOpsStats["name"].(string); name != "AI-test-op" {
			t.Errorf("Expected circuit breaker name 'AI-test-op', got '%s'", name)
		}

		modelOpsStats, ok := stats["model_operations"].(map[string]any)
		if !ok {
			t.Fatal("Model operations stats should exist and be a map")
		}
		if name, _ := modelOpsStats["name"].(string); name != "AI-Model-test-op" {
			t.Errorf("Expected model circuit breaker name 'AI-Model-test-op', got '%s'", name)
		}

		if overallHealthy, _ := stats["overall_healthy"].(bool); !overallHealthy {
			t.Error("Circuit breaker should be healthy initially")
		}
	} else {
		t.Fatal("Service provider is not of type *GeminiProvider")
	}
}
