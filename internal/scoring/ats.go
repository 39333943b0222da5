package scoring

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	impactPattern = regexp.MustCompile(`%|\$|percent|dollar|million|thousand`)
)

// atsCheck is one checklist item worth a single raw point. Items with
// an empty feedback string never surface in the feedback list.
type atsCheck struct {
	passed   bool
	feedback string
}

// ScoreATS runs the fixed 24-point compatibility checklist against a
// resume. Every item is worth one raw point and the overall score is
// the rounded percentage of points earned. Each failed item contributes
// one feedback line; a perfect run emits a single positive line, so
// feedback is never empty.
func ScoreATS(resume types.ResumeDocument) types.ATSScore {
	text := ResumeText(resume)
	lower := strings.ToLower(text)
	info := resume.PersonalInfo

	// Quirk: three of the formatting items (safe headings, no tables,
	// no embedded images) are assumptions about the generated document
	// rather than inspections. They hold for any document with content
	// and are kept in the checklist because the score contract counts
	// them; an empty document earns nothing.
	hasContent := text != "" ||
		strings.TrimSpace(info.FullName) != "" ||
		strings.TrimSpace(info.Email) != "" ||
		strings.TrimSpace(info.Phone) != ""

	summaryLen := len(strings.TrimSpace(resume.Summary))
	bullets := countBullets(resume.Experience)
	keywordHits := countVocabHits(lower, atsKeywords)
	verbHits := countVocabHits(lower, actionVerbs)
	digits := countDigits(text)
	words := len(strings.Fields(text))

	datedExperience := false
	for _, exp := range resume.Experience {
		if strings.TrimSpace(exp.StartDate) != "" || strings.TrimSpace(exp.EndDate) != "" {
			datedExperience = true
			break
		}
	}

	completeSections := 0
	if summaryLen > 0 {
		completeSections++
	}
	if len(resume.Experience) > 0 {
		completeSections++
	}
	if len(resume.Education) > 0 {
		completeSections++
	}
	if len(resume.Skills.Technical) > 0 {
		completeSections++
	}

	contactChecks := []atsCheck{
		{emailPattern.MatchString(info.Email), "Add a valid email address so recruiters can reach you"},
		{strings.TrimSpace(info.Phone) != "", "Add a phone number"},
		{strings.TrimSpace(info.Location) != "", "Add your location (city and state is enough)"},
		{strings.TrimSpace(info.LinkedIn) != "" || strings.TrimSpace(info.Portfolio) != "", "Add a LinkedIn profile or portfolio URL"},
	}
	contentChecks := []atsCheck{
		{summaryLen >= 50 && summaryLen < 500, "Write a professional summary between 50 and 500 characters"},
		{len(resume.Experience) > 0, "Add at least one work experience entry"},
		{bullets > 0, "Describe each role with bullet points"},
		{len(resume.Education) > 0, "Add your education history"},
		{len(resume.Skills.Technical)+len(resume.Skills.Soft) > 0, "List your technical and soft skills"},
	}
	formattingChecks := []atsCheck{
		{len(resume.Experience) > 0 && len(resume.Education) > 0, "Include both experience and education sections"},
		{datedExperience, "Add dates to your work experience"},
		{hasContent, ""}, // safe heading characters, assumed
		{bullets > 0, "Use bullet points instead of paragraphs to describe your roles"},
		{hasContent, ""}, // no tables, assumed
		{hasContent, ""}, // no embedded images, assumed
	}
	keywordChecks := []atsCheck{
		{keywordHits >= 6, "Include more industry keywords throughout your summary and experience"},
		{verbHits >= 3, "Start your bullet points with strong action verbs"},
		{len(resume.Skills.Technical) >= 5, "List at least 5 technical skills"},
		{len(resume.Skills.Soft) >= 1, "Add a few soft skills such as communication or leadership"},
	}
	metricChecks := []atsCheck{
		{digits >= 1, "Quantify your achievements with numbers"},
		{digits >= 3, "Add more measurable results across your experience"},
		{impactPattern.MatchString(lower), "Use percentages or dollar amounts to show impact"},
	}
	lengthChecks := []atsCheck{
		{words >= 300 && words <= 800, "Keep your resume between 300 and 800 words"},
		{completeSections >= 4, "Complete all major resume sections"},
	}

	groups := [][]atsCheck{contactChecks, contentChecks, formattingChecks, keywordChecks, metricChecks, lengthChecks}

	raw, total := 0, 0
	feedback := []string{}
	for _, group := range groups {
		for _, check := range group {
			total++
			if check.passed {
				raw++
			} else if check.feedback != "" {
				feedback = append(feedback, check.feedback)
			}
		}
	}
	if len(feedback) == 0 {
		feedback = append(feedback, "Excellent! Your resume passes all ATS compatibility checks")
	}

	return types.ATSScore{
		Overall: roundRatio(raw, total),
		Sections: types.ATSSections{
			Keywords:   roundRatio(min(keywordHits, 6), 6),
			Formatting: roundRatio(earned(formattingChecks), len(formattingChecks)),
			Contact:    roundRatio(earned(contactChecks), len(contactChecks)),
			Length:     roundRatio(earned(lengthChecks), len(lengthChecks)),
			Sections:   roundRatio(earned(contentChecks), len(contentChecks)),
		},
		Feedback: feedback,
	}
}

func earned(checks []atsCheck) int {
	points := 0
	for _, check := range checks {
		if check.passed {
			points++
		}
	}
	return points
}
