// Package recorder persists computed charts.
package recorder

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

// SQLiteRecorder stores charts as JSON documents in a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS charts (
			id          TEXT PRIMARY KEY,
			source      TEXT NOT NULL,
			instant     INTEGER NOT NULL,
			latitude    REAL NOT NULL,
			longitude   REAL NOT NULL,
			recorded_at INTEGER NOT NULL,
			payload     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_charts_recorded ON charts(recorded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_charts_source ON charts(source, recorded_at)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Record(ctx context.Context, chart domain.BirthChart, source ports.ChartSource) error {
	payload, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("marshal chart: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.ExecContext(ctx, `INSERT INTO charts
		(id, source, instant, latitude, longitude, recorded_at, payload)
		VALUES (?,?,?,?,?,?,?)`,
		chart.ID.String(), string(source), chart.Instant.UnixNano(),
		chart.Location.Latitude, chart.Location.Longitude,
		r.now().UnixNano(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert chart: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Get(ctx context.Context, id uuid.UUID) (domain.BirthChart, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM charts WHERE id = ?`, id.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BirthChart{}, domain.ErrChartNotFound
	}
	if err != nil {
		return domain.BirthChart{}, fmt.Errorf("query chart: %w", err)
	}

	var chart domain.BirthChart
	if err := json.Unmarshal([]byte(payload), &chart); err != nil {
		return domain.BirthChart{}, fmt.Errorf("decode chart %s: %w", id, err)
	}
	return chart, nil
}

func (r *SQLiteRecorder) Recent(ctx context.Context, limit int) ([]ports.ChartSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, source, instant, latitude, longitude, recorded_at
		FROM charts ORDER BY recorded_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var out []ports.ChartSummary
	for rows.Next() {
		var (
			id, source          string
			instant, recordedAt int64
			s                   ports.ChartSummary
		)
		if err := rows.Scan(&id, &source, &instant, &s.Location.Latitude, &s.Location.Longitude, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan chart row: %w", err)
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse chart id %q: %w", id, err)
		}
		s.Source = ports.ChartSource(source)
		s.Instant = time.Unix(0, instant).UTC()
		s.RecordedAt = time.Unix(0, recordedAt).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
