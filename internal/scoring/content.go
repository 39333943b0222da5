package scoring

import (
	"strings"

	"resumelens/internal/types"
)

// ContentStrength scores how substantial a resume is independent of any
// job description. Five buckets add up to at most 100; within each
// bucket the highest qualifying tier wins, tiers never stack.
func ContentStrength(resume types.ResumeDocument) int {
	score := 0

	switch summaryLen := len(strings.TrimSpace(resume.Summary)); {
	case summaryLen > 100:
		score += 20
	case summaryLen > 50:
		score += 10
	}

	switch bullets := countBullets(resume.Experience); {
	case bullets >= 6:
		score += 30
	case bullets >= 3:
		score += 20
	case bullets >= 1:
		score += 10
	}

	switch skills := len(resume.Skills.Technical) + len(resume.Skills.Soft); {
	case skills >= 10:
		score += 20
	case skills >= 5:
		score += 15
	case skills >= 3:
		score += 10
	}

	switch digits := countDigits(experienceText(resume)); {
	case digits >= 5:
		score += 20
	case digits >= 3:
		score += 15
	case digits >= 1:
		score += 10
	}

	if len(resume.Education) > 0 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
