package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
)

type projectService struct {
	api api.Client
}

func NewProjectService(client api.Client) ProjectService {
	return &projectService{api: client}
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.api.ListProjects(ctx)
}

func (s *projectService) Save(ctx context.Context, p domain.Project) error {
	if err := checkValid(p); err != nil {
		return err
	}
	if p.StartDate != "" && p.EndDate != "" {
		start, _ := time.Parse(calendar.WireDate, p.StartDate)
		end, _ := time.Parse(calendar.WireDate, p.EndDate)
		if end.Before(start) {
			return fmt.Errorf("invalid input: end date is before start date")
		}
	}
	return s.api.SaveProject(ctx, p)
}

func (s *projectService) SetStatus(ctx context.Context, projectID int, status string) error {
	return s.api.UpdateProjectStatus(ctx, projectID, status)
}
