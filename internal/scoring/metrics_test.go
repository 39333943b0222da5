package scoring

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestScanMetrics(t *testing.T) {
	tests := []struct {
		name            string
		experience      []types.Experience
		wantHasMetrics  bool
		wantMetricCount int
		wantWithout     int
		wantSuggestions int
	}{
		{
			name:       "no experience",
			experience: nil,
		},
		{
			name: "mixed bullets",
			experience: []types.Experience{
				{Description: []string{"Grew revenue by 20%", "Helped the team"}},
			},
			wantHasMetrics:  true,
			wantMetricCount: 1,
			wantWithout:     1,
			wantSuggestions: 1,
		},
		{
			name: "dollar amounts and words count as metrics",
			experience: []types.Experience{
				{Description: []string{"Saved $apx in spend", "Processed million row batches", "Served thousand clients"}},
			},
			wantHasMetrics:  true,
			wantMetricCount: 3,
		},
		{
			name: "trailing k shorthand counts",
			experience: []types.Experience{
				{Description: []string{"Scaled service to 10k users"}},
			},
			wantHasMetrics:  true,
			wantMetricCount: 1,
		},
		{
			name: "blank bullets ignored",
			experience: []types.Experience{
				{Description: []string{"", "   ", "Grew revenue by 20%"}},
			},
			wantHasMetrics:  true,
			wantMetricCount: 1,
		},
		{
			name: "suggestions capped at five",
			experience: []types.Experience{
				{Description: []string{
					"Improved onboarding flow", "Helped the support rota",
					"Organized team offsites", "Wrote internal docs",
					"Mentored new hires", "Reviewed design proposals",
					"Ran weekly planning",
				}},
			},
			wantWithout:     7,
			wantSuggestions: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanMetrics(tt.experience)
			if got.HasMetrics != tt.wantHasMetrics {
				t.Errorf("HasMetrics = %v, want %v", got.HasMetrics, tt.wantHasMetrics)
			}
			if got.MetricCount != tt.wantMetricCount {
				t.Errorf("MetricCount = %d, want %d", got.MetricCount, tt.wantMetricCount)
			}
			if got.BulletsWithoutMetrics != tt.wantWithout {
				t.Errorf("BulletsWithoutMetrics = %d, want %d", got.BulletsWithoutMetrics, tt.wantWithout)
			}
			if len(got.Suggestions) != tt.wantSuggestions {
				t.Errorf("Suggestions = %v, want %d entries", got.Suggestions, tt.wantSuggestions)
			}
		})
	}
}

func TestScanMetricsSuggestionFormat(t *testing.T) {
	long := strings.Repeat("Organized recurring planning sessions ", 3) // over the preview limit
	got := ScanMetrics([]types.Experience{{Description: []string{"Helped the team", long}}})

	want := `Add a measurable result to: "Helped the team..."`
	if got.Suggestions[0] != want {
		t.Errorf("Suggestions[0] = %q, want %q", got.Suggestions[0], want)
	}
	// long bullets are truncated to a 50 character preview
	if !strings.Contains(got.Suggestions[1], strings.TrimSpace(long)[:50]) {
		t.Errorf("Suggestions[1] = %q, want 50 character preview", got.Suggestions[1])
	}
	if strings.Contains(got.Suggestions[1], strings.TrimSpace(long)[:60]) {
		t.Errorf("Suggestions[1] = %q, preview was not truncated", got.Suggestions[1])
	}
}

func BenchmarkScanMetrics(b *testing.B) {
	experience := strongResume().Experience
	for b.Loop() {
		ScanMetrics(experience)
	}
}
