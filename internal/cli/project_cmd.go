package cli

import (
	"fmt"
	"strconv"

	"github.com/nconsulting/timecard/internal/cli/formatter"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects (admin)",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectAddCmd(app),
		newProjectStatusCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjects(projects))
			return nil
		},
	}
}

func newProjectAddCmd(app *App) *cobra.Command {
	var p domain.Project
	var id int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create or update a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("id") {
				p.ProjectID = &id
			}
			if err := app.Projects.Save(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved project %s\n", p.ProjectName)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Project ID (set to update an existing project)")
	cmd.Flags().StringVar(&p.ProjectName, "name", "", "Project name")
	cmd.Flags().StringVar(&p.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&p.PONumber, "po", "", "Purchase order number")
	cmd.Flags().StringVar(&p.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.EndDate, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("po")

	return cmd
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a project's status (Active or Inactive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}
			if err := app.Projects.SetStatus(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %d is now %s.\n", id, args[1])
			return nil
		},
	}
}
