// Package repository persists the small amount of purely local state timecard
// keeps between runs: the login session and unsaved grid drafts.
package repository

import (
	"context"
	"errors"

	"github.com/nconsulting/timecard/internal/grid"
	"github.com/nconsulting/timecard/internal/session"
)

// ErrNotFound indicates the requested record does not exist locally.
var ErrNotFound = errors.New("not found")

// SessionStore persists the login session between CLI invocations, the
// terminal counterpart of the browser's session cookies.
type SessionStore interface {
	Load(ctx context.Context) (*session.Context, error)
	Save(ctx context.Context, sc session.Context) error
	Clear(ctx context.Context) error
}

// Draft is an autosaved snapshot of unsaved grid edits for one user-month.
type Draft struct {
	Username  string
	MonthYear string
	Rows      map[int][]*grid.Row
	UpdatedAt string
}

// DraftStore keeps unsaved grid edits so an interrupted editing session can
// resume before save. Cleared on successful save/submit or explicit discard.
type DraftStore interface {
	Load(ctx context.Context, username, monthYear string) (*Draft, error)
	Save(ctx context.Context, d Draft) error
	Delete(ctx context.Context, username, monthYear string) error
}
