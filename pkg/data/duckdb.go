package data

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS reading_progress (
	key        VARCHAR PRIMARY KEY,
	novel_id   VARCHAR NOT NULL,
	value      VARCHAR NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository persists reading progress. Values are stored as text under
// ProgressKey so the table mirrors a plain key/value store.
type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) SaveProgress(novelID string, chapter int) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO reading_progress (key, novel_id, value, updated_at) VALUES (?, ?, ?, ?)`,
		ProgressKey(novelID), novelID, strconv.Itoa(chapter), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save progress for %s: %w", novelID, err)
	}
	return nil
}

// GetProgress returns the stored chapter index. ok is false when the novel
// has never been opened.
func (r *Repository) GetProgress(novelID string) (chapter int, ok bool, err error) {
	var value string
	err = r.db.QueryRow(
		`SELECT value FROM reading_progress WHERE key = ?`,
		ProgressKey(novelID),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read progress for %s: %w", novelID, err)
	}

	chapter, err = strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("invalid progress value %q for %s: %w", value, novelID, err)
	}
	return chapter, true, nil
}

func (r *Repository) ListProgress() ([]*Progress, error) {
	rows, err := r.db.Query(
		`SELECT novel_id, value, updated_at FROM reading_progress ORDER BY updated_at DESC, novel_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Progress
	for rows.Next() {
		var (
			p     Progress
			value string
		)
		if err := rows.Scan(&p.NovelID, &value, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if p.Chapter, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("invalid progress value %q for %s: %w", value, p.NovelID, err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
