package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/domain"
)

type holidayService struct {
	api api.Client
}

func NewHolidayService(client api.Client) HolidayService {
	return &holidayService{api: client}
}

func (s *holidayService) List(ctx context.Context) ([]domain.HolidayEvent, error) {
	return s.api.ListHolidays(ctx)
}

func (s *holidayService) Save(ctx context.Context, events []domain.HolidayEvent) error {
	if len(events) == 0 {
		return fmt.Errorf("no holiday events given")
	}
	for i, ev := range events {
		if strings.TrimSpace(ev.EventName) == "" {
			return fmt.Errorf("invalid input: event %d has no name", i+1)
		}
		if err := validate.Var(ev.EventDate, "required,datetime=2006-01-02"); err != nil {
			return fmt.Errorf("invalid input: event %q needs a date in YYYY-MM-DD form", ev.EventName)
		}
	}
	return s.api.SaveHolidays(ctx, events)
}

func (s *holidayService) Delete(ctx context.Context, holidayID int) error {
	return s.api.DeleteHoliday(ctx, holidayID)
}
