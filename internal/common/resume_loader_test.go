package common

import (
	"testing"
)

func TestDecodeResume(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError bool
		wantEmail   string
	}{
		{
			name:      "full document",
			content:   `{"personalInfo":{"fullName":"Ada Lovelace","email":"ada@example.com"},"summary":"Analyst"}`,
			wantEmail: "ada@example.com",
		},
		{
			name:    "empty object defaults every field",
			content: `{}`,
		},
		{
			name:        "not JSON",
			content:     "plain resume text",
			expectError: true,
		},
		{
			name:        "truncated JSON",
			content:     `{"summary":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume, err := DecodeResume(tt.content)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if resume.PersonalInfo.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", resume.PersonalInfo.Email, tt.wantEmail)
			}
		})
	}
}

func TestDecodeJobDescription(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		wantTitle       string
		wantDescription string
	}{
		{
			name:            "raw posting text",
			content:         "We are hiring a backend engineer.",
			wantDescription: "We are hiring a backend engineer.",
		},
		{
			name:            "structured JSON posting",
			content:         `{"title":"Backend Engineer","description":"Go services at scale"}`,
			wantTitle:       "Backend Engineer",
			wantDescription: "Go services at scale",
		},
		{
			name:            "JSON without description falls back to raw",
			content:         `{"title":"Backend Engineer"}`,
			wantDescription: `{"title":"Backend Engineer"}`,
		},
		{
			name: "empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := DecodeJobDescription(tt.content)
			if jd.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", jd.Title, tt.wantTitle)
			}
			if jd.Description != tt.wantDescription {
				t.Errorf("Description = %q, want %q", jd.Description, tt.wantDescription)
			}
		})
	}
}
