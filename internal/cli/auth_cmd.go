package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nconsulting/timecard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the timesheet service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				if !app.interactive() {
					return fmt.Errorf("--username and --password are required outside a terminal")
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Username").
							Value(&username).
							Validate(validateRequired("username")),
						huh.NewInput().
							Title("Password").
							EchoMode(huh.EchoModePassword).
							Value(&password).
							Validate(validateRequired("password")),
					),
				).WithTheme(timecardHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			sc, err := app.Auth.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", sc.DisplayName(), sc.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := app.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s employee=%s\n",
				sc.DisplayName(),
				sc.Username,
				formatter.StyleBold.Render(string(sc.Role)),
				sc.EmployeeID,
			)
			return nil
		},
	}
}
