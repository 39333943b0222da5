package scoring

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

// MatchJobDescription compares keywords extracted from a job
// description against the resume text. Every keyword is escaped and
// counted case-insensitively; the score is the rounded percentage of
// keywords found, defined as 0 when the description yields no keywords.
// Missing keywords keep extraction order. Extra holds resume keywords
// the job description never mentions, as informational output only.
func MatchJobDescription(resume types.ResumeDocument, jd types.JobDescription) types.KeywordMatchResult {
	keywords := ExtractKeywords(jd.Description)
	result := types.KeywordMatchResult{
		Matches: []types.KeywordMatch{},
		Missing: []string{},
		Extra:   []string{},
	}

	text := ResumeText(resume)
	haystack := strings.ToLower(text)

	found := 0
	for _, keyword := range keywords {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
		count := len(pattern.FindAllString(haystack, -1))
		result.Matches = append(result.Matches, types.KeywordMatch{
			Keyword: keyword,
			Found:   count > 0,
			Count:   count,
		})
		if count > 0 {
			found++
		} else {
			result.Missing = append(result.Missing, keyword)
		}
	}
	if len(keywords) > 0 {
		result.Score = roundRatio(found, len(keywords))
	}

	wanted := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		wanted[keyword] = struct{}{}
	}
	for _, keyword := range ExtractKeywords(text) {
		if _, ok := wanted[keyword]; !ok {
			result.Extra = append(result.Extra, keyword)
		}
	}
	return result
}
