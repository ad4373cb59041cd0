// Package attempts keeps a process-lifetime log of README fetch attempts
// for diagnostics.
package attempts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zopdev/chartdoc/internal/db"
	"github.com/zopdev/chartdoc/internal/fetcher"
)

// DefaultLimit caps Recent when no limit is given.
const DefaultLimit = 50

const timeLayout = "2006-01-02 15:04:05.000"

// Store provides access to logged attempts.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts an attempt. If a.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fetch_attempts (
			id, session_id, doc_id, url, status, outcome, error, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, a.DocID, a.URL, a.Status, a.Outcome, a.Error, a.DurationMS,
		a.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting fetch attempt: %w", err)
	}
	return nil
}

// RecordAttempt implements fetcher.Recorder.
func (s *Store) RecordAttempt(ctx context.Context, a fetcher.Attempt) error {
	return s.Record(ctx, Attempt{
		SessionID:  a.SessionID,
		DocID:      a.DocID,
		URL:        a.URL,
		Status:     a.Status,
		Outcome:    string(a.Outcome),
		Error:      a.Err,
		DurationMS: a.Duration.Milliseconds(),
	})
}

// Recent returns the newest attempts first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.query(ctx, `
		SELECT id, session_id, doc_id, url, status, outcome, error, duration_ms, created_at
		FROM fetch_attempts ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
}

// ForDocument returns the attempts made for docID, newest first.
func (s *Store) ForDocument(ctx context.Context, docID string) ([]Attempt, error) {
	return s.query(ctx, `
		SELECT id, session_id, doc_id, url, status, outcome, error, duration_ms, created_at
		FROM fetch_attempts WHERE doc_id = ? ORDER BY created_at DESC, rowid DESC`, docID)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying fetch attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a  Attempt
			ts string
		)
		if err := rows.Scan(&a.ID, &a.SessionID, &a.DocID, &a.URL, &a.Status, &a.Outcome, &a.Error, &a.DurationMS, &ts); err != nil {
			return nil, err
		}
		t, err := parseTimestamp(ts)
		if err != nil {
			return nil, fmt.Errorf("attempt %s: %w", a.ID, err)
		}
		a.CreatedAt = t
		out = append(out, a)
	}
	return out, rows.Err()
}

// parseTimestamp reads created_at back. The driver may hand a DATETIME
// column back in RFC 3339 form rather than the layout it was written in.
func parseTimestamp(ts string) (time.Time, error) {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, time.DateTime} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing created_at %q", ts)
}
