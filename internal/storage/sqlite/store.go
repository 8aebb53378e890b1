// Package sqlite persists scans as an append-only log. Rows are never
// updated or deleted; the insertion id orders the log.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"reputation_pulse/internal/domain"
	"reputation_pulse/internal/scoring"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	handle TEXT NOT NULL,
	normalized_score REAL NOT NULL,
	rating TEXT NOT NULL,
	payload TEXT NOT NULL,
	scanned_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_handle_id ON scans(handle, id);
`

// Store is the append-only scan log. Each operation opens its own
// connection and closes it before returning; there is no cross-operation
// transaction.
type Store struct {
	path   string
	logger *slog.Logger
}

// New ensures the database file's directory and schema exist.
func New(path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	store := &Store{path: path, logger: logger.With("component", "scanstore")}

	db, err := store.connect(context.Background())
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return store, nil
}

func (s *Store) connect(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// scanRow is the summary projection as stored; scanned_at is kept as the
// RFC 3339 UTC string written at save time.
type scanRow struct {
	ID              int64   `db:"id"`
	Handle          string  `db:"handle"`
	NormalizedScore float64 `db:"normalized_score"`
	Rating          string  `db:"rating"`
	ScannedAt       string  `db:"scanned_at"`
}

func (r scanRow) toSummary() (domain.ScanSummary, error) {
	at, err := time.Parse(time.RFC3339, r.ScannedAt)
	if err != nil {
		return domain.ScanSummary{}, fmt.Errorf("parse scanned_at: %w", err)
	}
	return domain.ScanSummary{
		ID:              r.ID,
		Handle:          r.Handle,
		NormalizedScore: r.NormalizedScore,
		Rating:          r.Rating,
		ScannedAt:       at,
	}, nil
}

// Save appends one scan row, stamping scanned_at with the current UTC time
// and serializing the full result as the payload. It returns the insertion id.
func (s *Store) Save(ctx context.Context, result domain.ScanResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("marshal payload: %w", err)
	}

	query, args, err := sq.Insert("scans").
		Columns("handle", "normalized_score", "rating", "payload", "scanned_at").
		Values(
			result.Handle,
			result.Score.Normalized,
			result.Summary.Rating,
			string(payload),
			time.Now().UTC().Format(time.RFC3339),
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	db, err := s.connect(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert scan: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read insert id: %w", err)
	}
	return id, nil
}

// LatestScans returns the most recent rows across all handles, newest first.
func (s *Store) LatestScans(ctx context.Context, limit int) ([]domain.ScanSummary, error) {
	query, args, err := sq.Select("id", "handle", "normalized_score", "rating", "scanned_at").
		From("scans").
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var rows []scanRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query latest scans: %w", err)
	}

	summaries := make([]domain.ScanSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := row.toSummary()
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// LatestScanForHandle returns the most recent row for handle, or nil when
// the handle has never been scanned.
func (s *Store) LatestScanForHandle(ctx context.Context, handle string) (*domain.ScanSummary, error) {
	query, args, err := sq.Select("id", "handle", "normalized_score", "rating", "scanned_at").
		From("scans").
		Where(sq.Eq{"handle": handle}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var row scanRow
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest scan: %w", err)
	}

	summary, err := row.toSummary()
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// LatestResultForHandle deserializes the most recent full payload for
// handle. A corrupt stored payload counts as no record, not an error: it is
// unreadable history, not a live failure.
func (s *Store) LatestResultForHandle(ctx context.Context, handle string) (*domain.ScanResult, error) {
	query, args, err := sq.Select("payload").
		From("scans").
		Where(sq.Eq{"handle": handle}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var payload string
	if err := db.GetContext(ctx, &payload, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest payload: %w", err)
	}

	var result domain.ScanResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		s.logger.Warn("stored payload is unreadable", "handle", handle, "error", err)
		return nil, nil
	}
	return &result, nil
}

// ScoreSeries returns the handle's most recent limit scores re-ordered
// oldest to newest. Rows are fetched newest first bounded by limit and then
// reversed; ties break on insertion id.
func (s *Store) ScoreSeries(ctx context.Context, handle string, limit int) ([]domain.SeriesPoint, error) {
	query, args, err := sq.Select("id", "handle", "normalized_score", "rating", "scanned_at").
		From("scans").
		Where(sq.Eq{"handle": handle}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var rows []scanRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query score series: %w", err)
	}

	points := make([]domain.SeriesPoint, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		at, err := time.Parse(time.RFC3339, rows[i].ScannedAt)
		if err != nil {
			return nil, fmt.Errorf("parse scanned_at: %w", err)
		}
		points = append(points, domain.SeriesPoint{
			Score:     rows[i].NormalizedScore,
			ScannedAt: at,
		})
	}
	return points, nil
}

// HandleInsights aggregates every stored scan of handle in one query, plus
// the latest row's score and rating. It returns nil when the handle has no
// rows.
func (s *Store) HandleInsights(ctx context.Context, handle string) (*domain.Insight, error) {
	query, args, err := sq.Select(
		"COUNT(*) AS scan_count",
		"AVG(normalized_score) AS avg_score",
		"MIN(normalized_score) AS min_score",
		"MAX(normalized_score) AS max_score",
		"MIN(scanned_at) AS first_scanned_at",
		"MAX(scanned_at) AS last_scanned_at",
	).
		From("scans").
		Where(sq.Eq{"handle": handle}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var agg struct {
		Count int             `db:"scan_count"`
		Avg   sql.NullFloat64 `db:"avg_score"`
		Min   sql.NullFloat64 `db:"min_score"`
		Max   sql.NullFloat64 `db:"max_score"`
		First sql.NullString  `db:"first_scanned_at"`
		Last  sql.NullString  `db:"last_scanned_at"`
	}
	if err := db.GetContext(ctx, &agg, query, args...); err != nil {
		return nil, fmt.Errorf("query insights: %w", err)
	}
	if agg.Count == 0 {
		return nil, nil
	}

	first, err := time.Parse(time.RFC3339, agg.First.String)
	if err != nil {
		return nil, fmt.Errorf("parse first scanned_at: %w", err)
	}
	last, err := time.Parse(time.RFC3339, agg.Last.String)
	if err != nil {
		return nil, fmt.Errorf("parse last scanned_at: %w", err)
	}

	latest, err := s.LatestScanForHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}

	return &domain.Insight{
		Handle:         handle,
		Count:          agg.Count,
		Average:        scoring.Round2(agg.Avg.Float64),
		Min:            agg.Min.Float64,
		Max:            agg.Max.Float64,
		FirstScannedAt: first,
		LastScannedAt:  last,
		LatestScore:    latest.NormalizedScore,
		LatestRating:   latest.Rating,
	}, nil
}
