package history

import (
	"context"
	"path/filepath"
	"testing"

	"resumelens/internal/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSaveAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	analysis := &types.ResumeAnalysis{
		Overall:         72,
		ATS:             types.ATSScore{Overall: 83},
		ContentStrength: 60,
		Match: &types.KeywordMatchResult{
			Score:   67,
			Missing: []string{"kubernetes", "terraform"},
		},
	}

	id, err := store.Save(ctx, "backend-v2", analysis)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if id <= 0 {
		t.Errorf("Save() id = %d, want positive", id)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Recent() returned %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Label != "backend-v2" {
		t.Errorf("Label = %q, want %q", rec.Label, "backend-v2")
	}
	if rec.Overall != 72 || rec.ATSOverall != 83 || rec.ContentStrength != 60 {
		t.Errorf("scores = (%d, %d, %d), want (72, 83, 60)", rec.Overall, rec.ATSOverall, rec.ContentStrength)
	}
	if rec.MatchScore == nil || *rec.MatchScore != 67 {
		t.Errorf("MatchScore = %v, want 67", rec.MatchScore)
	}
	if len(rec.MissingKeywords) != 2 || rec.MissingKeywords[0] != "kubernetes" {
		t.Errorf("MissingKeywords = %v, want [kubernetes terraform]", rec.MissingKeywords)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want parsed timestamp")
	}
}

func TestSaveWithoutJobMatch(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	analysis := &types.ResumeAnalysis{
		Overall:         40,
		ATS:             types.ATSScore{Overall: 50},
		ContentStrength: 30,
	}

	if _, err := store.Save(ctx, "", analysis); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Recent() returned %d records, want 1", len(records))
	}
	if records[0].MatchScore != nil {
		t.Errorf("MatchScore = %v, want nil when no job description was supplied", *records[0].MatchScore)
	}
	if records[0].MissingKeywords != nil {
		t.Errorf("MissingKeywords = %v, want nil", records[0].MissingKeywords)
	}
}

func TestSaveNilAnalysis(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Save(context.Background(), "label", nil); err == nil {
		t.Error("Save(nil) error = nil, want validation error")
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	labels := []string{"v1", "v2", "v3"}
	for i, label := range labels {
		analysis := &types.ResumeAnalysis{
			Overall: 50 + i,
			ATS:     types.ATSScore{Overall: 60 + i},
		}
		if _, err := store.Save(ctx, label, analysis); err != nil {
			t.Fatalf("Save(%q) error = %v", label, err)
		}
	}

	records, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Recent(2) returned %d records, want 2", len(records))
	}
	if records[0].Label != "v3" || records[1].Label != "v2" {
		t.Errorf("Recent() order = [%s %s], want newest first [v3 v2]", records[0].Label, records[1].Label)
	}
}

func TestRecentDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	records, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent(0) error = %v", err)
	}
	if records != nil {
		t.Errorf("Recent() on empty store = %v, want nil", records)
	}
}
