// ABOUTME: Local SQLite log of predictions made from this client
// ABOUTME: Backs the history view and its outcome counts

package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded prediction.
type Entry struct {
	ID          string
	ModelID     int
	Nama        string
	Prediction  string
	Probability float64
	CreatedAt   time.Time
}

// Store persists prediction history in a local SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or opens the history database at the given path. The schema
// is created automatically; parent directories are created if needed.
func Open(path string) (*Store, error) {
	logger := slog.Default().With("component", "history")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS predictions (
			id          TEXT PRIMARY KEY,
			model_id    INTEGER NOT NULL,
			nama        TEXT NOT NULL DEFAULT '',
			prediction  TEXT NOT NULL,
			probability REAL NOT NULL,
			created_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_predictions_created
			ON predictions(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends one prediction outcome. probability is the winning class
// probability.
func (s *Store) Record(ctx context.Context, modelID int, nama, prediction string, probability float64) error {
	query := `
		INSERT INTO predictions (id, model_id, nama, prediction, probability, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New().String(),
		modelID,
		nama,
		prediction,
		probability,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording prediction: %w", err)
	}

	s.logger.Debug("recorded prediction", "model_id", modelID, "prediction", prediction)
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, model_id, nama, prediction, probability, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.ModelID, &e.Nama, &e.Prediction, &e.Probability, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing history timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

// Counts returns the number of recorded predictions per outcome.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	query := `SELECT prediction, COUNT(*) FROM predictions GROUP BY prediction`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting history: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var prediction string
		var n int
		if err := rows.Scan(&prediction, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[prediction] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counts: %w", err)
	}

	return counts, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
