// Package session holds the logged-in user's identity and role. The context
// is loaded once at startup and injected explicitly into services and the
// workflow; nothing reads it ambiently.
package session

import (
	"errors"
	"strings"

	"github.com/nconsulting/timecard/internal/domain"
)

// ErrNotLoggedIn indicates no stored session exists; the user must log in.
var ErrNotLoggedIn = errors.New("not logged in")

// Context is the client-side session state: who is using the app, their
// access role, and the bearer token for the remote service.
type Context struct {
	Username   string
	FirstName  string
	LastName   string
	EmployeeID string
	Role       domain.Role
	Token      string
	ExpiresAt  string
}

// DisplayName returns "First Last", or just the first name when no last name
// is on record.
func (c Context) DisplayName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// FileSlug returns the display name with whitespace collapsed to underscores,
// used in exported artifact file names.
func (c Context) FileSlug() string {
	return strings.Join(strings.Fields(c.DisplayName()), "_")
}

// LoggedIn reports whether the context carries a usable session.
func (c Context) LoggedIn() bool {
	return c.Username != "" && c.Token != ""
}
