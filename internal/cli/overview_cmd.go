package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/cli/formatter"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/session"
	"github.com/spf13/cobra"
)

func newOverviewCmd(app *App) *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Approver view of all timesheets for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, month, rows, err := fetchOverview(cmd.Context(), app, monthStr)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No timesheets for %s.\n", month.String())
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverview(rows))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&monthStr, "month", "", "Month to list (YYYY-MM, default current)")

	cmd.AddCommand(
		newApprovalActionCmd(app, &monthStr, "approve", true),
		newApprovalActionCmd(app, &monthStr, "reject", false),
		newLockActionCmd(app, &monthStr, "lock", true),
		newLockActionCmd(app, &monthStr, "unlock", false),
		newLockAllCmd(app, &monthStr),
		newOverviewExportCmd(app, &monthStr),
	)

	return cmd
}

func fetchOverview(ctx context.Context, app *App, monthStr string) (session.Context, calendar.Month, []domain.OverviewRow, error) {
	viewer, err := app.requireSession(ctx)
	if err != nil {
		return session.Context{}, calendar.Month{}, nil, err
	}
	month, err := resolveMonth(monthStr)
	if err != nil {
		return session.Context{}, calendar.Month{}, nil, err
	}
	rows, err := app.Approvals.Overview(ctx, viewer, month)
	return viewer, month, rows, err
}

func findRow(rows []domain.OverviewRow, username string) (domain.OverviewRow, error) {
	for _, r := range rows {
		if r.Username == username {
			return r, nil
		}
	}
	return domain.OverviewRow{}, fmt.Errorf("no timesheet for %q in this month", username)
}

// newApprovalActionCmd builds approve/reject for the manager and HR columns.
// actionValue true approves, false rejects (and then a comment is mandatory).
func newApprovalActionCmd(app *App, monthStr *string, verb string, actionValue bool) *cobra.Command {
	var comment string
	var hr bool

	cmd := &cobra.Command{
		Use:   verb + " USERNAME",
		Short: capitalized(verb) + " one user's timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, _, rows, err := fetchOverview(cmd.Context(), app, *monthStr)
			if err != nil {
				return err
			}
			row, err := findRow(rows, args[0])
			if err != nil {
				return err
			}

			if !actionValue && comment == "" && app.interactive() {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewText().
							Title("Rejection comment").
							Description("Required; shown to the employee.").
							Value(&comment),
					),
				).WithTheme(timecardHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			action := domain.ActionManagerApproval
			if hr {
				action = domain.ActionHRApproval
			}
			if err := app.Approvals.SetApproval(cmd.Context(), viewer, row, action, actionValue, comment); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s.\n", row.Username, pastTense(verb))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hr, "hr", false, "Act on the HR approval column")
	if !actionValue {
		cmd.Flags().StringVar(&comment, "comment", "", "Rejection comment (required)")
	}

	return cmd
}

func newLockActionCmd(app *App, monthStr *string, verb string, lock bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " USERNAME",
		Short: capitalized(verb) + " one user's timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, _, rows, err := fetchOverview(cmd.Context(), app, *monthStr)
			if err != nil {
				return err
			}
			row, err := findRow(rows, args[0])
			if err != nil {
				return err
			}
			if err := app.Approvals.SetApproval(cmd.Context(), viewer, row, domain.ActionLock, lock, ""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s.\n", row.Username, pastTense(verb))
			return nil
		},
	}
}

func newLockAllCmd(app *App, monthStr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lock-all",
		Short: "Lock every manager-approved timesheet in one batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, month, rows, err := fetchOverview(cmd.Context(), app, *monthStr)
			if err != nil {
				return err
			}
			targets := make([]domain.OverviewRow, 0, len(rows))
			for _, r := range rows {
				if !r.IsLocked {
					targets = append(targets, r)
				}
			}
			if len(targets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to lock.")
				return nil
			}
			if err := app.Approvals.BulkLock(cmd.Context(), viewer, month, targets); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Locked %d timesheets.\n", len(targets))
			return nil
		},
	}
}

func newOverviewExportCmd(app *App, monthStr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the overview as a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, month, rows, err := fetchOverview(cmd.Context(), app, *monthStr)
			if err != nil {
				return err
			}
			name, data, err := app.Approvals.ExportOverview(month, rows)
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

func capitalized(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func pastTense(verb string) string {
	if strings.HasSuffix(verb, "e") {
		return verb + "d"
	}
	return verb + "ed"
}
