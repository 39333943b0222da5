package scoring

import (
	"testing"

	"resumelens/internal/types"
)

func atsWithFormatting(formatting int) types.ATSScore {
	return types.ATSScore{
		Overall:  10, // deliberately different from the formatting sub-score
		Sections: types.ATSSections{Formatting: formatting},
	}
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name       string
		formatting int
		jdMatch    int
		content    int
		length     int
		want       int
	}{
		{
			name:       "documented blend",
			formatting: 75,
			jdMatch:    80,
			content:    60,
			length:     85,
			// round(32 + 22.5 + 12 + 8.5)
			want: 75,
		},
		{
			name: "all zero",
			want: 0,
		},
		{
			name:       "all perfect",
			formatting: 100,
			jdMatch:    100,
			content:    100,
			length:     100,
			want:       100,
		},
		{
			name:       "formatting sub-score drives the thirty percent",
			formatting: 100,
			want:       30,
		},
		{
			name:    "match alone",
			jdMatch: 100,
			want:    40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallScore(atsWithFormatting(tt.formatting), tt.jdMatch, tt.content, tt.length)
			if got != tt.want {
				t.Errorf("OverallScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverallScoreIdempotent(t *testing.T) {
	ats := atsWithFormatting(64)
	first := OverallScore(ats, 52, 48, 71)
	second := OverallScore(ats, 52, 48, 71)
	if first != second {
		t.Errorf("OverallScore() not stable: %d then %d", first, second)
	}
}

func TestAnalyzeWithoutJobDescription(t *testing.T) {
	analysis := Analyze(strongResume(), types.JobDescription{})
	if analysis.Match != nil {
		t.Errorf("Match = %v, want nil without a job description", analysis.Match)
	}
	ats := analysis.ATS
	want := OverallScore(ats, 0, analysis.ContentStrength, ats.Sections.Length)
	if analysis.Overall != want {
		t.Errorf("Overall = %d, want %d", analysis.Overall, want)
	}
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	jd := types.JobDescription{Description: "python and kubernetes work with docker deployments"}
	analysis := Analyze(strongResume(), jd)
	if analysis.Match == nil {
		t.Fatal("Match = nil, want a populated match result")
	}
	if analysis.Match.Score != 100 {
		t.Errorf("Match.Score = %d, want 100", analysis.Match.Score)
	}
	want := OverallScore(analysis.ATS, analysis.Match.Score, analysis.ContentStrength, analysis.ATS.Sections.Length)
	if analysis.Overall != want {
		t.Errorf("Overall = %d, want %d", analysis.Overall, want)
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	analysis := Analyze(types.ResumeDocument{}, types.JobDescription{})
	if analysis.Overall != 0 {
		t.Errorf("Overall = %d, want 0", analysis.Overall)
	}
	if analysis.ATS.Overall != 0 {
		t.Errorf("ATS.Overall = %d, want 0", analysis.ATS.Overall)
	}
	if len(analysis.ATS.Feedback) == 0 {
		t.Error("ATS.Feedback is empty, want suggestions")
	}
}

func BenchmarkAnalyze(b *testing.B) {
	resume := strongResume()
	jd := types.JobDescription{Description: "python and kubernetes work with docker deployments"}
	for b.Loop() {
		Analyze(resume, jd)
	}
}
