package scoring

import (
	"testing"
)

func TestDetectOverusedWords(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantWords []string
		wantCount []int
	}{
		{
			name: "empty text",
			text: "",
		},
		{
			name: "single occurrence below threshold",
			text: "I led the migration.",
		},
		{
			name:      "repeated phrase flagged",
			text:      "I led the team. I led the project.",
			wantWords: []string{"led"},
			wantCount: []int{2},
		},
		{
			name:      "case insensitive",
			text:      "Responsible for billing. Later responsible for payments.",
			wantWords: []string{"responsible for"},
			wantCount: []int{2},
		},
		{
			name: "whole words only",
			text: "Misled the ledger twice, misled it again.",
		},
		{
			name:      "dictionary order not frequency order",
			text:      "did this, did that, did more, managed one thing, managed another",
			wantWords: []string{"managed", "did"},
			wantCount: []int{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectOverusedWords(tt.text)
			if len(got) != len(tt.wantWords) {
				t.Fatalf("DetectOverusedWords() = %v, want words %v", got, tt.wantWords)
			}
			for i, word := range tt.wantWords {
				if got[i].Word != word {
					t.Errorf("result[%d].Word = %q, want %q", i, got[i].Word, word)
				}
				if got[i].Count != tt.wantCount[i] {
					t.Errorf("result[%d].Count = %d, want %d", i, got[i].Count, tt.wantCount[i])
				}
				if len(got[i].Suggestions) < 4 {
					t.Errorf("result[%d].Suggestions = %v, want at least 4 alternatives", i, got[i].Suggestions)
				}
			}
		})
	}
}

func BenchmarkDetectOverusedWords(b *testing.B) {
	text := "Responsible for the roadmap, responsible for hiring, led delivery, led planning, helped everyone, helped often."
	for b.Loop() {
		DetectOverusedWords(text)
	}
}
