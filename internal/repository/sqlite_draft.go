package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLiteDraftStore implements DraftStore using the local SQLite database.
// Rows are stored as a JSON blob; the grid is small and always read whole.
type SQLiteDraftStore struct {
	db *sql.DB
}

func NewSQLiteDraftStore(conn *sql.DB) *SQLiteDraftStore {
	return &SQLiteDraftStore{db: conn}
}

func (s *SQLiteDraftStore) Load(ctx context.Context, username, monthYear string) (*Draft, error) {
	query := `SELECT payload, updated_at FROM grid_drafts WHERE username = ? AND month_year = ?`
	row := s.db.QueryRowContext(ctx, query, username, monthYear)

	var payload string
	d := Draft{Username: username, MonthYear: monthYear}
	if err := row.Scan(&payload, &d.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("draft %s/%s: %w", username, monthYear, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning draft: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &d.Rows); err != nil {
		return nil, fmt.Errorf("decoding draft payload: %w", err)
	}
	return &d, nil
}

func (s *SQLiteDraftStore) Save(ctx context.Context, d Draft) error {
	payload, err := json.Marshal(d.Rows)
	if err != nil {
		return fmt.Errorf("encoding draft payload: %w", err)
	}
	query := `INSERT OR REPLACE INTO grid_drafts (username, month_year, payload, updated_at)
		VALUES (?, ?, ?, datetime('now'))`
	if _, err := s.db.ExecContext(ctx, query, d.Username, d.MonthYear, string(payload)); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

func (s *SQLiteDraftStore) Delete(ctx context.Context, username, monthYear string) error {
	query := `DELETE FROM grid_drafts WHERE username = ? AND month_year = ?`
	if _, err := s.db.ExecContext(ctx, query, username, monthYear); err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}
