package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/cli/formatter"
	"github.com/nconsulting/timecard/internal/workflow"
	"github.com/spf13/cobra"
)

func newMonthsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Show the selectable months and their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, err := app.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := app.Timesheets.MonthSelector(cmd.Context(), viewer, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSelector(entries))
			return nil
		},
	}
}

// resolveMonth parses --month, defaulting to the current month.
func resolveMonth(monthStr string) (calendar.Month, error) {
	if monthStr == "" {
		return calendar.MonthOf(time.Now()), nil
	}
	return calendar.ParseMonth(monthStr)
}

// loadTimesheet loads the month for the viewer or, for approver roles, a
// target user.
func loadTimesheet(ctx context.Context, app *App, monthStr, user string) (*workflow.Session, error) {
	viewer, err := app.requireSession(ctx)
	if err != nil {
		return nil, err
	}
	month, err := resolveMonth(monthStr)
	if err != nil {
		return nil, err
	}
	target := user
	if target == viewer.Username {
		target = ""
	}
	if target != "" && !viewer.Role.CanApprove() {
		return nil, fmt.Errorf("role %q may not view another user's timesheet", viewer.Role)
	}
	return app.Timesheets.LoadMonth(ctx, viewer, target, month)
}

func newTimesheetCmd(app *App) *cobra.Command {
	var monthStr, user string

	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "View and edit the monthly timesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadTimesheet(cmd.Context(), app, monthStr, user)
			if err != nil {
				return err
			}

			if !app.interactive() {
				printTimesheet(cmd, sess)
				return nil
			}

			restored, err := app.Timesheets.RestoreDraft(cmd.Context(), sess)
			if err != nil {
				return err
			}
			model := newGridModel(app, sess, restored)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&monthStr, "month", "", "Month to open (YYYY-MM, default current)")
	cmd.PersistentFlags().StringVar(&user, "user", "", "View another user's sheet (approver roles)")

	cmd.AddCommand(
		newTimesheetShowCmd(app, &monthStr, &user),
		newTimesheetSaveCmd(app, &monthStr, false),
		newTimesheetSaveCmd(app, &monthStr, true),
		newTimesheetAuditCmd(app, &monthStr, &user),
		newTimesheetExportCmd(app, &monthStr, &user),
		newTimesheetDiscardCmd(app, &monthStr),
	)

	return cmd
}

func printTimesheet(cmd *cobra.Command, sess *workflow.Session) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatMonthHeader(sess))
	fmt.Fprintln(out)
	for wi := range sess.Weeks {
		fmt.Fprintln(out, formatter.FormatWeekGrid(sess, wi))
		if notes := formatter.FormatNotes(sess, wi); notes != "" {
			fmt.Fprint(out, notes)
		}
		fmt.Fprintln(out)
	}
}

func newTimesheetShowCmd(app *App, monthStr, user *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the month grid without opening the editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadTimesheet(cmd.Context(), app, *monthStr, *user)
			if err != nil {
				return err
			}
			printTimesheet(cmd, sess)
			return nil
		},
	}
}

func newTimesheetSaveCmd(app *App, monthStr *string, submit bool) *cobra.Command {
	var reopen bool

	use, short := "save", "Validate and save the month as currently stored"
	if submit {
		use, short = "submit", "Validate, attach the PDF statement and submit the month"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadTimesheet(cmd.Context(), app, *monthStr, "")
			if err != nil {
				return err
			}
			if reopen {
				if err := sess.EditTimesheet(); err != nil {
					return err
				}
			}
			if _, err := app.Timesheets.RestoreDraft(cmd.Context(), sess); err != nil {
				return err
			}

			if submit {
				err = app.Timesheets.Submit(cmd.Context(), sess)
			} else {
				err = app.Timesheets.Save(cmd.Context(), sess)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", sess.Month.Range(), formatter.Status(sess.UIStatus))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "edit", false, "Reopen a submitted or approved sheet first")

	return cmd
}

func newTimesheetDiscardCmd(app *App, monthStr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Throw away the unsaved draft for the month",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadTimesheet(cmd.Context(), app, *monthStr, "")
			if err != nil {
				return err
			}
			if err := app.Timesheets.DiscardDraft(cmd.Context(), sess); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Draft for %s discarded.\n", sess.Month)
			return nil
		},
	}
}

func newTimesheetAuditCmd(app *App, monthStr, user *string) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Show the activity log for the month",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadTimesheet(cmd.Context(), app, *monthStr, *user)
			if err != nil {
				return err
			}
			entries, err := app.Timesheets.ActivityLog(cmd.Context(), sess)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity recorded.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAuditLog(entries))
			return nil
		},
	}
}

func newTimesheetExportCmd(app *App, monthStr, user *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the PDF month statement to the export directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadTimesheet(cmd.Context(), app, *monthStr, *user)
			if err != nil {
				return err
			}
			name, data, err := app.Timesheets.ExportPDF(sess)
			if err != nil {
				return err
			}
			path := filepath.Join(app.ExportDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}
