// Package history persists analysis results to a local SQLite database so
// score changes can be compared across resume revisions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at       TEXT    NOT NULL,
	label            TEXT    NOT NULL,
	overall          INTEGER NOT NULL,
	ats_overall      INTEGER NOT NULL,
	match_score      INTEGER,
	content_strength INTEGER NOT NULL,
	missing_keywords TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

// Record is a single saved analysis result.
type Record struct {
	ID              int64     `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Label           string    `json:"label"`
	Overall         int       `json:"overall"`
	ATSOverall      int       `json:"atsOverall"`
	MatchScore      *int      `json:"matchScore,omitempty"` // nil when no job description was supplied
	ContentStrength int       `json:"contentStrength"`
	MissingKeywords []string  `json:"missingKeywords,omitempty"`
}

// Store provides access to the analysis history database.
type Store struct {
	db     *sql.DB
	logger *apperrors.Logger
}

// Open opens (creating if needed) the history database at path.
func Open(path string, logger *apperrors.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to create history directory for %s", path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed,
			fmt.Sprintf("failed to open history database %s", path), err)
	}

	// SQLite handles one writer at a time; keep the pool at a single
	// connection so concurrent saves serialize instead of failing.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed,
			"failed to initialize history schema", err)
	}

	if logger != nil {
		logger.Debug("History store opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Save persists an analysis result and returns the new record ID.
func (s *Store) Save(ctx context.Context, label string, analysis *types.ResumeAnalysis) (int64, error) {
	if analysis == nil {
		return 0, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, "analysis is required", nil)
	}

	var matchScore sql.NullInt64
	var missing string
	if analysis.Match != nil {
		matchScore = sql.NullInt64{Int64: int64(analysis.Match.Score), Valid: true}
		missing = strings.Join(analysis.Match.Missing, ",")
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (created_at, label, overall, ats_overall, match_score, content_strength, missing_keywords)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		label,
		analysis.Overall,
		analysis.ATS.Overall,
		matchScore,
		analysis.ContentStrength,
		missing,
	)
	if err != nil {
		return 0, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed, "failed to save analysis", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed, "failed to read inserted analysis ID", err)
	}

	if s.logger != nil {
		s.logger.Debug("Analysis saved to history", "id", id, "label", label, "overall", analysis.Overall)
	}

	return id, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, label, overall, ats_overall, match_score, content_strength, missing_keywords
		 FROM analyses ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed, "failed to query history", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec        Record
			createdAt  string
			matchScore sql.NullInt64
			missing    string
		)
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Label, &rec.Overall, &rec.ATSOverall, &matchScore, &rec.ContentStrength, &missing); err != nil {
			return nil, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed, "failed to scan history record", err)
		}

		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		if matchScore.Valid {
			score := int(matchScore.Int64)
			rec.MatchScore = &score
		}
		if missing != "" {
			rec.MissingKeywords = strings.Split(missing, ",")
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(apperrors.ErrCodeStorageFailed, "failed to iterate history records", err)
	}

	return records, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
