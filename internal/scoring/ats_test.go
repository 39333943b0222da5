package scoring

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func strongResume() types.ResumeDocument {
	bullet := "Led and managed the team, developed and implemented designed processes that improved delivery results by 20% with clear stakeholder communication across the project"
	bullets := []string{bullet, bullet, bullet, bullet, bullet, bullet}
	return types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FullName: "Jordan Rivera",
			Email:    "jordan@example.com",
			Phone:    "+1 555 123 4567",
			Location: "Austin, TX",
			LinkedIn: "linkedin.com/in/jordanrivera",
		},
		Summary: strings.TrimSpace(strings.Repeat("Experienced engineer delivering measurable results across large projects. ", 6)),
		Experience: []types.Experience{
			{Company: "Initech Solutions", Position: "Senior Software Engineer", StartDate: "2020-01", EndDate: "2023-06", Description: bullets},
			{Company: "Globex Systems", Position: "Software Engineer", StartDate: "2016-05", EndDate: "2019-12", Description: bullets},
		},
		Education: []types.Education{
			{Degree: "Bachelor of Science in Computer Science", School: "State University", GraduationDate: "2016"},
		},
		Skills: types.Skills{
			Technical: []string{"Go", "Python", "Kubernetes", "PostgreSQL", "Docker"},
			Soft:      []string{"Communication", "Leadership"},
		},
	}
}

func TestScoreATSEmptyResume(t *testing.T) {
	score := ScoreATS(types.ResumeDocument{})
	if score.Overall != 0 {
		t.Errorf("Overall = %d, want 0", score.Overall)
	}
	if len(score.Feedback) == 0 {
		t.Error("Feedback is empty, want at least one suggestion")
	}
	sections := []struct {
		name  string
		value int
	}{
		{"keywords", score.Sections.Keywords},
		{"formatting", score.Sections.Formatting},
		{"contact", score.Sections.Contact},
		{"length", score.Sections.Length},
		{"sections", score.Sections.Sections},
	}
	for _, s := range sections {
		if s.value != 0 {
			t.Errorf("Sections.%s = %d, want 0", s.name, s.value)
		}
	}
}

func TestScoreATSPerfectResume(t *testing.T) {
	score := ScoreATS(strongResume())
	if score.Overall != 100 {
		t.Fatalf("Overall = %d, want 100 (feedback: %v)", score.Overall, score.Feedback)
	}
	if len(score.Feedback) != 1 {
		t.Fatalf("Feedback = %v, want the single positive line", score.Feedback)
	}
	if score.Feedback[0] != "Excellent! Your resume passes all ATS compatibility checks" {
		t.Errorf("Feedback[0] = %q", score.Feedback[0])
	}
}

func TestScoreATSSectionsAreIndependent(t *testing.T) {
	resume := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			Email: "sam@example.com",
			Phone: "555-0100",
		},
	}
	score := ScoreATS(resume)
	if score.Sections.Contact != 50 {
		t.Errorf("Sections.Contact = %d, want 50 for two of four contact checks", score.Sections.Contact)
	}
	// with any content the three structural formatting assumptions hold
	if score.Sections.Formatting != 50 {
		t.Errorf("Sections.Formatting = %d, want 50", score.Sections.Formatting)
	}
	if score.Overall != 21 {
		t.Errorf("Overall = %d, want 21 (5 of 24 points)", score.Overall)
	}
}

func TestScoreATSStructuralChecksNeedContent(t *testing.T) {
	resume := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{FullName: "Ada Lovelace"},
	}
	score := ScoreATS(resume)
	if score.Sections.Formatting != 50 {
		t.Errorf("Sections.Formatting = %d, want 50 for the three structural points", score.Sections.Formatting)
	}
	if score.Overall != 13 {
		t.Errorf("Overall = %d, want 13 (3 of 24 points)", score.Overall)
	}
}

func TestScoreATSFeedbackWording(t *testing.T) {
	score := ScoreATS(types.ResumeDocument{})
	wantFirst := "Add a valid email address so recruiters can reach you"
	if score.Feedback[0] != wantFirst {
		t.Errorf("Feedback[0] = %q, want %q", score.Feedback[0], wantFirst)
	}
}

func BenchmarkScoreATS(b *testing.B) {
	resume := strongResume()
	for b.Loop() {
		ScoreATS(resume)
	}
}
