package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nconsulting/timecard/internal/cli/formatter"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the employee directory (admin)",
	}

	cmd.AddCommand(
		newEmployeeListCmd(app),
		newEmployeeShowCmd(app),
		newEmployeeAddCmd(app),
		newEmployeeEditCmd(app),
		newEmployeeStatusCmd(app, "activate", true),
		newEmployeeStatusCmd(app, "deactivate", false),
		newDepartmentListCmd(app),
	)

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Employees.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No employees found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEmployees(employees))
			return nil
		},
	}
}

func newEmployeeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show EMAIL",
		Short: "Show one employee record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Employees.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEmployees([]domain.Employee{*e}))
			return nil
		},
	}
}

// employeeFlags binds the shared add/edit flag set.
func employeeFlags(cmd *cobra.Command, e *domain.Employee) {
	cmd.Flags().StringVar(&e.EmployeeID, "id", "", "Employee ID")
	cmd.Flags().StringVar(&e.FirstName, "first", "", "First name")
	cmd.Flags().StringVar(&e.LastName, "last", "", "Last name")
	cmd.Flags().StringVar(&e.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&e.Department, "department", "", "Department")
	cmd.Flags().StringVar(&e.Designation, "designation", "", "Designation")
	cmd.Flags().StringVar(&e.WorkLocation, "location", "", "Work location")
	cmd.Flags().StringVar((*string)(&e.AccessRole), "role", string(domain.RoleEmployee), "Access role")
	cmd.Flags().StringVar(&e.JoiningDate, "joined", "", "Joining date (YYYY-MM-DD)")
}

// employeeForm collects the record interactively; departments come from the
// server so the choices match the web admin.
func employeeForm(app *App, cmd *cobra.Command, e *domain.Employee) error {
	departments, err := app.Employees.Departments(cmd.Context())
	if err != nil {
		return err
	}
	deptOptions := make([]huh.Option[string], 0, len(departments))
	for _, d := range departments {
		deptOptions = append(deptOptions, huh.NewOption(d.DepartmentName, d.DepartmentName))
	}

	roleOptions := []huh.Option[string]{
		huh.NewOption(string(domain.RoleEmployee), string(domain.RoleEmployee)),
		huh.NewOption(string(domain.RoleApprover), string(domain.RoleApprover)),
		huh.NewOption(string(domain.RoleHR), string(domain.RoleHR)),
		huh.NewOption(string(domain.RoleAdmin), string(domain.RoleAdmin)),
	}

	role := string(e.AccessRole)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Employee ID").Value(&e.EmployeeID).Validate(validateRequired("employee ID")),
			huh.NewInput().Title("First name").Value(&e.FirstName).Validate(validateRequired("first name")),
			huh.NewInput().Title("Last name").Value(&e.LastName).Validate(validateRequired("last name")),
			huh.NewInput().Title("Email").Value(&e.Email).Validate(validateRequired("email")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Department").Options(deptOptions...).Value(&e.Department),
			huh.NewInput().Title("Designation").Value(&e.Designation),
			huh.NewInput().Title("Work location").Value(&e.WorkLocation).Validate(validateRequired("work location")),
			huh.NewSelect[string]().Title("Access role").Options(roleOptions...).Value(&role),
			huh.NewInput().Title("Joining date").Placeholder("2024-01-01").Value(&e.JoiningDate).Validate(validateOptionalDate),
		),
	).WithTheme(timecardHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	e.AccessRole = domain.Role(role)
	return nil
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	e := domain.Employee{IsActive: true}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.Email == "" && app.interactive() {
				if err := employeeForm(app, cmd, &e); err != nil {
					return err
				}
			}
			if err := app.Employees.Create(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s <%s>\n", e.FirstName, e.LastName, e.Email)
			return nil
		},
	}

	employeeFlags(cmd, &e)
	return cmd
}

func newEmployeeEditCmd(app *App) *cobra.Command {
	var e domain.Employee

	cmd := &cobra.Command{
		Use:   "edit EMAIL",
		Short: "Update an employee record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Employees.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			merged := mergeEmployee(*current, e, cmd)
			if app.interactive() && cmd.Flags().NFlag() == 0 {
				if err := employeeForm(app, cmd, &merged); err != nil {
					return err
				}
			}
			if err := app.Employees.Update(cmd.Context(), merged); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", merged.Email)
			return nil
		},
	}

	employeeFlags(cmd, &e)
	return cmd
}

// mergeEmployee overlays only the flags the user actually set.
func mergeEmployee(base, edit domain.Employee, cmd *cobra.Command) domain.Employee {
	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("id") {
		base.EmployeeID = edit.EmployeeID
	}
	if set("first") {
		base.FirstName = edit.FirstName
	}
	if set("last") {
		base.LastName = edit.LastName
	}
	if set("department") {
		base.Department = edit.Department
	}
	if set("designation") {
		base.Designation = edit.Designation
	}
	if set("location") {
		base.WorkLocation = edit.WorkLocation
	}
	if set("role") {
		base.AccessRole = edit.AccessRole
	}
	if set("joined") {
		base.JoiningDate = edit.JoiningDate
	}
	return base
}

func newEmployeeStatusCmd(app *App, verb string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " EMAIL",
		Short: capitalized(verb) + " an employee account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Employees.SetActive(cmd.Context(), args[0], active); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s.\n", args[0], pastTense(verb))
			return nil
		},
	}
}

func newDepartmentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			departments, err := app.Employees.Departments(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range departments {
				fmt.Fprintln(cmd.OutOrStdout(), d.DepartmentName)
			}
			return nil
		},
	}
}
