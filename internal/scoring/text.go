package scoring

import (
	"math"
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var digitPattern = regexp.MustCompile(`\d`)

// ResumeText flattens a resume into the single text blob scanned by the
// keyword, metric and overused-word checks. Empty fields contribute
// nothing, so a fully empty document yields an empty string.
func ResumeText(resume types.ResumeDocument) string {
	var parts []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	add(resume.Summary)
	for _, exp := range resume.Experience {
		add(exp.Position)
		add(exp.Company)
		for _, bullet := range exp.Description {
			add(bullet)
		}
	}
	for _, edu := range resume.Education {
		add(edu.Degree)
		add(edu.School)
	}
	for _, skill := range resume.Skills.Technical {
		add(skill)
	}
	for _, skill := range resume.Skills.Soft {
		add(skill)
	}
	return strings.Join(parts, "\n")
}

// experienceText flattens summary plus experience bullets, the subset
// scanned for digit occurrences.
func experienceText(resume types.ResumeDocument) string {
	var parts []string
	if s := strings.TrimSpace(resume.Summary); s != "" {
		parts = append(parts, s)
	}
	for _, exp := range resume.Experience {
		for _, bullet := range exp.Description {
			if b := strings.TrimSpace(bullet); b != "" {
				parts = append(parts, b)
			}
		}
	}
	return strings.Join(parts, "\n")
}

func countBullets(experience []types.Experience) int {
	count := 0
	for _, exp := range experience {
		for _, bullet := range exp.Description {
			if strings.TrimSpace(bullet) != "" {
				count++
			}
		}
	}
	return count
}

func countDigits(text string) int {
	return len(digitPattern.FindAllString(text, -1))
}

// countVocabHits reports how many vocabulary entries occur in the
// lowercased text at least once.
func countVocabHits(lower string, vocab []string) int {
	hits := 0
	for _, word := range vocab {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	return hits
}

// roundRatio converts earned/total points into a rounded 0-100 score.
// A zero total yields zero, never a division by zero.
func roundRatio(earned, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(earned) / float64(total) * 100))
}
