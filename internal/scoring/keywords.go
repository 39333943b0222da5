package scoring

import "strings"

// maxKeywords caps extraction output
const maxKeywords = 50

// ExtractKeywords pulls candidate keyword tokens out of free text, such
// as a job description or a flattened resume. Extraction is purely
// lexical: a first pass over the technology patterns, then a second
// pass collecting capitalized tokens of 4 to 29 characters. Results are
// lowercased, trimmed, de-duplicated and truncated to the first 50 in
// discovery order. Empty input yields an empty slice.
func ExtractKeywords(text string) []string {
	keywords := []string{}
	if strings.TrimSpace(text) == "" {
		return keywords
	}

	seen := make(map[string]struct{})
	add := func(raw string) {
		kw := strings.ToLower(strings.TrimSpace(raw))
		if kw == "" {
			return
		}
		if _, dup := seen[kw]; dup {
			return
		}
		seen[kw] = struct{}{}
		if len(keywords) < maxKeywords {
			keywords = append(keywords, kw)
		}
	}

	for _, pattern := range techPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			add(match)
		}
	}
	for _, match := range properNounPattern.FindAllString(text, -1) {
		if n := len(match); n >= 4 && n <= 29 {
			add(match)
		}
	}
	return keywords
}
