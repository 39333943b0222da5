package scoring

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: []string{},
		},
		{
			name: "technology names lowercased",
			text: "seeking python and react engineers who ship docker containers daily",
			want: []string{"python", "react", "docker"},
		},
		{
			name: "duplicates collapsed",
			text: "python python PYTHON Python",
			want: []string{"python"},
		},
		{
			name: "capitalized tokens after tech pass",
			text: "built services in golang for Acme Corporation",
			want: []string{"golang", "acme", "corporation"},
		},
		{
			name: "short capitalized tokens skipped",
			text: "Bob met Al",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractKeywords() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractKeywords()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&sb, "Uniqueword%02d ", i)
	}
	got := ExtractKeywords(sb.String())
	if len(got) != maxKeywords {
		t.Errorf("ExtractKeywords() returned %d keywords, want %d", len(got), maxKeywords)
	}
	if got[0] != "uniqueword00" {
		t.Errorf("ExtractKeywords() first keyword = %q, want discovery order preserved", got[0])
	}
}

func BenchmarkExtractKeywords(b *testing.B) {
	text := strings.Repeat("Experienced Python developer building React frontends and Kubernetes deployments. ", 20)
	for b.Loop() {
		ExtractKeywords(text)
	}
}
