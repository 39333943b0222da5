package scoring

import "resumelens/internal/types"

// minOverusedCount is the repetition threshold below which a phrase is
// not worth flagging.
const minOverusedCount = 2

// DetectOverusedWords flags cliched phrases repeated throughout the
// text and proposes fixed stronger alternatives. Matching is whole-word
// and case-insensitive; results follow dictionary declaration order,
// not occurrence frequency.
func DetectOverusedWords(text string) []types.OverusedWord {
	results := []types.OverusedWord{}
	if text == "" {
		return results
	}
	for _, entry := range overusedPhrases {
		count := len(entry.pattern.FindAllString(text, -1))
		if count >= minOverusedCount {
			results = append(results, types.OverusedWord{
				Word:        entry.phrase,
				Count:       count,
				Suggestions: entry.alternatives,
			})
		}
	}
	return results
}
