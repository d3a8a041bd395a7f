package cli

import (
	"fmt"
	"strconv"

	"github.com/nconsulting/timecard/internal/cli/formatter"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage the holiday calendar (admin)",
	}

	cmd.AddCommand(
		newHolidayListCmd(app),
		newHolidayAddCmd(app),
		newHolidayRemoveCmd(app),
	)

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List holiday calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Holidays.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No events found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHolidays(events))
			return nil
		},
	}
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var ev domain.HolidayEvent

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a calendar event",
		Long:  "Adds a calendar event. Only events of type Holiday block timesheet cells.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Holidays.Save(cmd.Context(), []domain.HolidayEvent{ev}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", ev.EventName, ev.EventDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&ev.EventName, "name", "", "Event name")
	cmd.Flags().StringVar(&ev.EventDate, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ev.EventType, "type", domain.EventTypeHoliday, "Event type (Holiday or Observance)")
	cmd.Flags().StringVar(&ev.City, "city", "", "City the event applies to")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid holiday ID %q", args[0])
			}
			if err := app.Holidays.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed event %d.\n", id)
			return nil
		},
	}
}
