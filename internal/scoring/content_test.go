package scoring

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func resumeWithBullets(n int) types.ResumeDocument {
	bullets := make([]string, n)
	for i := range bullets {
		bullets[i] = "Shipped a feature"
	}
	return types.ResumeDocument{
		Experience: []types.Experience{{Position: "Engineer", Description: bullets}},
	}
}

func TestContentStrength(t *testing.T) {
	tests := []struct {
		name   string
		resume types.ResumeDocument
		want   int
	}{
		{
			name:   "empty resume",
			resume: types.ResumeDocument{},
			want:   0,
		},
		{
			name:   "education only",
			resume: types.ResumeDocument{Education: []types.Education{{Degree: "BS", School: "State"}}},
			want:   10,
		},
		{
			name:   "short summary scores nothing",
			resume: types.ResumeDocument{Summary: strings.Repeat("a", 50)},
			want:   0,
		},
		{
			name:   "medium summary",
			resume: types.ResumeDocument{Summary: strings.Repeat("a", 51)},
			want:   10,
		},
		{
			name:   "long summary",
			resume: types.ResumeDocument{Summary: strings.Repeat("a", 101)},
			want:   20,
		},
		{
			name:   "single bullet",
			resume: resumeWithBullets(1),
			want:   10,
		},
		{
			name:   "three bullets",
			resume: resumeWithBullets(3),
			want:   20,
		},
		{
			name:   "six bullets",
			resume: resumeWithBullets(6),
			want:   30,
		},
		{
			name:   "three skills",
			resume: types.ResumeDocument{Skills: types.Skills{Technical: []string{"go", "sql", "git"}}},
			want:   10,
		},
		{
			name: "five skills mixed",
			resume: types.ResumeDocument{Skills: types.Skills{
				Technical: []string{"go", "sql", "git"},
				Soft:      []string{"empathy", "focus"},
			}},
			want: 15,
		},
		{
			name: "digits in experience",
			resume: types.ResumeDocument{Experience: []types.Experience{
				{Description: []string{"Cut latency by 45 ms across 3 services and saved 1200 hours"}},
			}},
			// one bullet (10) plus five digit occurrences (20)
			want: 30,
		},
		{
			name:   "full resume",
			resume: strongResume(),
			// 20 summary + 30 bullets + 15 for seven skills + 20 digits + 10 education
			want: 95,
		},
		{
			name: "all top tiers reach the cap",
			resume: types.ResumeDocument{
				Summary: strings.Repeat("a", 101),
				Experience: []types.Experience{{Description: []string{
					"Grew revenue 12%", "Cut costs 30%", "Hired 4 engineers",
					"Shipped 7 releases", "Closed 9 deals", "Saved 100 hours",
				}}},
				Education: []types.Education{{Degree: "BS", School: "State"}},
				Skills: types.Skills{
					Technical: []string{"go", "sql", "git", "aws", "docker", "react"},
					Soft:      []string{"empathy", "focus", "grit", "candor"},
				},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentStrength(tt.resume); got != tt.want {
				t.Errorf("ContentStrength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContentStrengthMonotonicBullets(t *testing.T) {
	prev := -1
	for n := 0; n <= 8; n++ {
		got := ContentStrength(resumeWithBullets(n))
		if got < prev {
			t.Fatalf("ContentStrength decreased from %d to %d at %d bullets", prev, got, n)
		}
		if got > 100 {
			t.Fatalf("ContentStrength = %d, want <= 100", got)
		}
		prev = got
	}
}

func BenchmarkContentStrength(b *testing.B) {
	resume := strongResume()
	for b.Loop() {
		ContentStrength(resume)
	}
}
