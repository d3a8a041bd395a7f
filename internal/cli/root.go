// Package cli wires the cobra command tree and the interactive grid editor.
package cli

import (
	"context"
	"fmt"

	"github.com/nconsulting/timecard/internal/service"
	"github.com/nconsulting/timecard/internal/session"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth       service.AuthService
	Timesheets service.TimesheetService
	Approvals  service.ApprovalService
	Employees  service.EmployeeService
	Projects   service.ProjectService
	Tasks      service.TaskService
	Holidays   service.HolidayService

	// ExportDir receives PDF and spreadsheet files.
	ExportDir string

	// IsInteractive reports whether stdin is a terminal; forms and the grid
	// editor are only offered when it is.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// requireSession loads the stored login session or fails with a hint.
func (a *App) requireSession(ctx context.Context) (session.Context, error) {
	sc, err := a.Auth.Current(ctx)
	if err != nil {
		return session.Context{}, fmt.Errorf("not logged in (run \"timecard login\"): %w", err)
	}
	return *sc, nil
}

// NewRootCmd creates the top-level "timecard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timecard",
		Short:         "Terminal client for the NConsulting timesheet service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newMonthsCmd(app),
		newTimesheetCmd(app),
		newOverviewCmd(app),
		newEmployeeCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newHolidayCmd(app),
	)

	return root
}
