package ai

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestIsModelLoadingError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "503 with loading message",
			err:  &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "model is loading"},
			want: true,
		},
		{
			name: "503 with loading body",
			err:  &googleapi.Error{Code: http.StatusServiceUnavailable, Body: `{"error":"Model still LOADING"}`},
			want: true,
		},
		{
			name: "503 without loading indicator",
			err:  &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "overloaded"},
			want: false,
		},
		{
			name: "500 with loading message",
			err:  &googleapi.Error{Code: http.StatusInternalServerError, Message: "loading"},
			want: false,
		},
		{
			name: "wrapped 503 loading",
			err:  fmt.Errorf("generate content: %w", &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "model is loading, try again"}),
			want: true,
		},
		{
			name: "429 rate limit",
			err:  &googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota exceeded"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isModelLoadingError(tt.err); got != tt.want {
				t.Errorf("isModelLoadingError() = %v, want %v", got, tt.want)
			}
		})
	}
}
