package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"resumelens/internal/types"
)

// metricPattern decides whether a bullet carries a quantifiable result.
// The trailing k\b is deliberately loose so "10k" and "50K" count.
var metricPattern = regexp.MustCompile(`(?i)\d|%|\$|percent|dollar|million|thousand|k\b`)

const (
	metricSuggestionLimit = 5
	metricPreviewLength   = 50
)

// ScanMetrics walks every experience bullet and reports how many are
// backed by a measurable result. Up to five metric-less bullets are
// surfaced as suggestions, each truncated to a short preview. Blank
// bullets are ignored.
func ScanMetrics(experience []types.Experience) types.QuantifiedMetrics {
	metrics := types.QuantifiedMetrics{Suggestions: []string{}}
	for _, exp := range experience {
		for _, bullet := range exp.Description {
			bullet = strings.TrimSpace(bullet)
			if bullet == "" {
				continue
			}
			if metricPattern.MatchString(bullet) {
				metrics.MetricCount++
				continue
			}
			metrics.BulletsWithoutMetrics++
			if len(metrics.Suggestions) < metricSuggestionLimit {
				preview := bullet
				if len(preview) > metricPreviewLength {
					preview = preview[:metricPreviewLength]
				}
				metrics.Suggestions = append(metrics.Suggestions,
					fmt.Sprintf("Add a measurable result to: %q", preview+"..."))
			}
		}
	}
	metrics.HasMetrics = metrics.MetricCount > 0
	return metrics
}
