package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nconsulting/timecard/internal/cli/formatter"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage task assignments (admin)",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List task assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks))
			return nil
		},
	}
}

// taskForm picks the user from the assignable list and the approvers from
// the manager lists, mirroring the web admin form.
func taskForm(app *App, cmd *cobra.Command, t *domain.Task) error {
	users, err := app.Tasks.AssignableUsers(cmd.Context())
	if err != nil {
		return err
	}
	managers, err := app.Tasks.Managers(cmd.Context())
	if err != nil {
		return err
	}
	projects, err := app.Projects.List(cmd.Context())
	if err != nil {
		return err
	}

	userOptions := make([]huh.Option[string], 0, len(users))
	for _, u := range users {
		userOptions = append(userOptions, huh.NewOption(u.FirstName+" "+u.LastName, u.Email))
	}
	projectOptions := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		projectOptions = append(projectOptions, huh.NewOption(p.ProjectName, p.ProjectName))
	}
	approverOptions := make([]huh.Option[string], 0, len(managers.TimesheetApprovers))
	for _, a := range managers.TimesheetApprovers {
		approverOptions = append(approverOptions, huh.NewOption(a, a))
	}
	hrOptions := make([]huh.Option[string], 0, len(managers.HRApprovers))
	for _, a := range managers.HRApprovers {
		hrOptions = append(hrOptions, huh.NewOption(a, a))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Employee").Options(userOptions...).Value(&t.Username),
			huh.NewSelect[string]().Title("Project").Options(projectOptions...).Value(&t.Project),
			huh.NewInput().Title("Task").Value(&t.Task).Validate(validateRequired("task")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Timesheet approver").Options(approverOptions...).Value(&t.TimesheetApprover),
			huh.NewSelect[string]().Title("HR approver").Options(hrOptions...).Value(&t.HRApprover),
			huh.NewConfirm().Title("Allow overtime?").Value(&t.AllowOvertime),
			huh.NewConfirm().Title("Enable weekend entry?").Value(&t.EnableWeekend),
		),
	).WithTheme(timecardHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func newTaskAddCmd(app *App) *cobra.Command {
	var t domain.Task

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Assign a task to an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if t.Username == "" && app.interactive() {
				if err := taskForm(app, cmd, &t); err != nil {
					return err
				}
			}
			if err := app.Tasks.Save(cmd.Context(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved task %q for %s\n", t.Task, t.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&t.Username, "user", "", "Employee username")
	cmd.Flags().StringVar(&t.Project, "project", "", "Project name")
	cmd.Flags().StringVar(&t.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&t.Task, "task", "", "Task description")
	cmd.Flags().StringVar(&t.TimesheetApprover, "approver", "", "Timesheet approver")
	cmd.Flags().StringVar(&t.HRApprover, "hr-approver", "", "HR approver")
	cmd.Flags().BoolVar(&t.AllowOvertime, "overtime", false, "Allow overtime rows")
	cmd.Flags().BoolVar(&t.EnableWeekend, "weekend", false, "Allow weekend entry")

	return cmd
}
