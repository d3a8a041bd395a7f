package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/session"
)

// SQLiteSessionStore implements SessionStore using the local SQLite database.
type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(conn *sql.DB) *SQLiteSessionStore {
	return &SQLiteSessionStore{db: conn}
}

func (s *SQLiteSessionStore) Load(ctx context.Context) (*session.Context, error) {
	query := `SELECT username, first_name, last_name, employee_id, role, token, expires_at
		FROM login_session WHERE id = 'default'`
	row := s.db.QueryRowContext(ctx, query)

	var sc session.Context
	var role string
	err := row.Scan(&sc.Username, &sc.FirstName, &sc.LastName, &sc.EmployeeID, &role, &sc.Token, &sc.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, session.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("scanning login session: %w", err)
	}
	sc.Role = domain.Role(role)
	return &sc, nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, sc session.Context) error {
	query := `INSERT OR REPLACE INTO login_session
		(id, username, first_name, last_name, employee_id, role, token, expires_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		sc.Username, sc.FirstName, sc.LastName, sc.EmployeeID, string(sc.Role), sc.Token, sc.ExpiresAt)
	if err != nil {
		return fmt.Errorf("saving login session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM login_session`); err != nil {
		return fmt.Errorf("clearing login session: %w", err)
	}
	return nil
}
