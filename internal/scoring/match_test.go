package scoring

import (
	"reflect"
	"testing"

	"resumelens/internal/types"
)

func TestMatchJobDescriptionEmptyDescription(t *testing.T) {
	result := MatchJobDescription(strongResume(), types.JobDescription{Title: "Backend Engineer"})
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0 for empty description", result.Score)
	}
	if len(result.Matches) != 0 || len(result.Missing) != 0 {
		t.Errorf("Matches = %v, Missing = %v, want empty", result.Matches, result.Missing)
	}
}

func TestMatchJobDescription(t *testing.T) {
	resume := types.ResumeDocument{
		Summary: "Builds python services",
		Skills:  types.Skills{Technical: []string{"python", "react"}},
	}
	jd := types.JobDescription{
		Description: "seeking python and react engineers who ship docker containers daily",
	}

	result := MatchJobDescription(resume, jd)

	if result.Score != 67 {
		t.Errorf("Score = %d, want 67 for two of three keywords", result.Score)
	}
	want := []types.KeywordMatch{
		{Keyword: "python", Found: true, Count: 2},
		{Keyword: "react", Found: true, Count: 1},
		{Keyword: "docker", Found: false, Count: 0},
	}
	if !reflect.DeepEqual(result.Matches, want) {
		t.Errorf("Matches = %v, want %v", result.Matches, want)
	}
	if !reflect.DeepEqual(result.Missing, []string{"docker"}) {
		t.Errorf("Missing = %v, want [docker]", result.Missing)
	}
	if !reflect.DeepEqual(result.Extra, []string{"builds"}) {
		t.Errorf("Extra = %v, want [builds]", result.Extra)
	}
}

func TestMatchJobDescriptionScoreBounds(t *testing.T) {
	tests := []struct {
		name   string
		resume types.ResumeDocument
		jd     string
	}{
		{"nothing matches", types.ResumeDocument{Summary: "gardening enthusiast"}, "kubernetes terraform aws"},
		{"everything matches", strongResume(), "python docker kubernetes"},
		{"empty everything", types.ResumeDocument{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MatchJobDescription(tt.resume, types.JobDescription{Description: tt.jd})
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("Score = %d, want within [0,100]", result.Score)
			}
		})
	}
}

func TestMatchJobDescriptionEscapesMetacharacters(t *testing.T) {
	resume := types.ResumeDocument{
		Skills: types.Skills{Technical: []string{"C++", ".NET"}},
	}
	jd := types.JobDescription{Description: "we use c++ and .net heavily"}
	result := MatchJobDescription(resume, jd)
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100 (matches: %v)", result.Score, result.Matches)
	}
}

func BenchmarkMatchJobDescription(b *testing.B) {
	resume := strongResume()
	jd := types.JobDescription{
		Description: "seeking a senior engineer with python, kubernetes, docker and postgresql experience leading cross-functional teams",
	}
	for b.Loop() {
		MatchJobDescription(resume, jd)
	}
}
