package ai

import (
	"testing"
	"time"

	"resumelens/internal/config"

	"google.golang.org/genai"
)

func parseBreakerConfig() *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestParseCircuitBreakers(t *testing.T) {
	cfg := parseBreakerConfig()

	parseCB := NewAICircuitBreaker("Parse", cfg, nil)
	modelCB := NewModelCircuitBreaker("Parse", cfg, nil)

	t.Run("ParseCircuitBreaker", func(t *testing.T) {
		stats := parseCB.GetStats()

		name, ok := stats["name"].(string)
		if !ok {
			t.Fatal("Circuit breaker name not found")
		}
		if name != "AI-Parse" {
			t.Errorf("Expected circuit breaker name 'AI-Parse', got '%s'", name)
		}

		state, ok := stats["state"].(string)
		if !ok {
			t.Fatal("Circuit breaker state not found")
		}
		if state != "closed" {
			t.Errorf("Expected initial state 'closed', got '%s'", state)
		}

		enabled, ok := stats["enabled"].(bool)
		if !ok {
			t.Fatal("Circuit breaker enabled status not found")
		}
		if !enabled {
			t.Error("Circuit breaker should be enabled")
		}
	})

	t.Run("ModelCircuitBreaker", func(t *testing.T) {
		stats := modelCB.GetModelStats()

		name, ok := stats["name"].(string)
		if !ok {
			t.Fatal("Circuit breaker name not found")
		}
		if name != "AI-Model-Parse" {
			t.Errorf("Expected circuit breaker name 'AI-Model-Parse', got '%s'", name)
		}
	})

	// The AI and model breakers track failures independently
	t.Run("IndependentHealthStates", func(t *testing.T) {
		if !parseCB.IsHealthy() {
			t.Error("Parse circuit breaker should be healthy initially")
		}
		if !modelCB.IsModelHealthy() {
			t.Error("Model circuit breaker should be healthy initially")
		}
	})
}

func TestCircuitBreakerConfigurationMapping(t *testing.T) {
	customConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      10,
			Interval:         120 * time.Second,
			Timeout:          90 * time.Second,
			MinRequests:      5,
			FailureThreshold: 0.8,
		},
	}

	cb := NewAICircuitBreaker("Test", customConfig, nil)
	if cb == nil {
		t.Fatal("Circuit breaker should not be nil")
	}

	stats := cb.GetStats()
	if stats == nil {
		t.Fatal("Circuit breaker stats should not be nil")
	}

	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Circuit breaker name not found")
	}
	if name != "AI-Test" {
		t.Errorf("Expected circuit breaker name 'AI-Test', got '%s'", name)
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	disabledConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false,
		},
	}

	cb := NewAICircuitBreaker("Disabled", disabledConfig, nil)
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}

	// A nil breaker still executes the wrapped call directly
	if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return nil, nil
	}); err != nil {
		t.Errorf("Execute through disabled breaker failed: %v", err)
	}
}
