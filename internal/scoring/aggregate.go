package scoring

import (
	"math"
	"strings"

	"resumelens/internal/types"
)

// Aggregate weights, fixed by the score contract. The formatting weight
// reads the ATS formatting sub-score, not the ATS overall; downstream
// consumers depend on that exact blend.
const (
	matchWeight      = 0.40
	formattingWeight = 0.30
	contentWeight    = 0.20
	lengthWeight     = 0.10
)

// OverallScore blends the job-match score, the ATS formatting
// sub-score, the content-strength score and a length score into the
// single weighted number shown to users.
func OverallScore(ats types.ATSScore, jdMatch, contentStrength, lengthScore int) int {
	return int(math.Round(
		matchWeight*float64(jdMatch) +
			formattingWeight*float64(ats.Sections.Formatting) +
			contentWeight*float64(contentStrength) +
			lengthWeight*float64(lengthScore)))
}

// Analyze runs every scorer over a resume and assembles the full
// report. The job description is optional: with an empty description
// the match block is omitted and a match score of 0 feeds the weighted
// overall. The ATS length sub-score doubles as the aggregate's length
// input.
func Analyze(resume types.ResumeDocument, jd types.JobDescription) types.ResumeAnalysis {
	ats := ScoreATS(resume)
	text := ResumeText(resume)

	analysis := types.ResumeAnalysis{
		ATS:             ats,
		ContentStrength: ContentStrength(resume),
		OverusedWords:   DetectOverusedWords(text),
		Metrics:         ScanMetrics(resume.Experience),
	}

	matchScore := 0
	if strings.TrimSpace(jd.Description) != "" {
		match := MatchJobDescription(resume, jd)
		analysis.Match = &match
		matchScore = match.Score
	}

	analysis.Overall = OverallScore(ats, matchScore, analysis.ContentStrength, ats.Sections.Length)
	return analysis
}
