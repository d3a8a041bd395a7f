package service

import (
	"context"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/domain"
)

type taskService struct {
	api api.Client
}

func NewTaskService(client api.Client) TaskService {
	return &taskService{api: client}
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.api.ListTasks(ctx)
}

func (s *taskService) Save(ctx context.Context, t domain.Task) error {
	if err := checkValid(t); err != nil {
		return err
	}
	return s.api.SaveTask(ctx, t)
}

func (s *taskService) AssignableUsers(ctx context.Context) ([]domain.Employee, error) {
	return s.api.TaskUserList(ctx)
}

func (s *taskService) Managers(ctx context.Context) (*api.ManagerLists, error) {
	return s.api.GetTaskManagers(ctx)
}
