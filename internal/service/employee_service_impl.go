package service

import (
	"context"
	"strings"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/domain"
)

type employeeService struct {
	api      api.Client
	observer UseCaseObserver
}

func NewEmployeeService(client api.Client, observers ...UseCaseObserver) EmployeeService {
	return &employeeService{
		api:      client,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.api.ListEmployees(ctx)
}

func (s *employeeService) Get(ctx context.Context, email string) (*domain.Employee, error) {
	return s.api.GetEmployee(ctx, email)
}

func (s *employeeService) Create(ctx context.Context, e domain.Employee) (err error) {
	defer observe(ctx, s.observer, "create-employee", "", map[string]any{"email": e.Email}, &err)()

	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	if err = checkValid(e); err != nil {
		return err
	}
	taken, err := s.api.CheckEmail(ctx, e.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}
	return s.api.SaveEmployee(ctx, e, false)
}

func (s *employeeService) Update(ctx context.Context, e domain.Employee) (err error) {
	defer observe(ctx, s.observer, "update-employee", "", map[string]any{"email": e.Email}, &err)()

	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	if err = checkValid(e); err != nil {
		return err
	}
	return s.api.SaveEmployee(ctx, e, true)
}

func (s *employeeService) SetActive(ctx context.Context, email string, active bool) error {
	return s.api.UpdateEmployeeStatus(ctx, email, active)
}

func (s *employeeService) Departments(ctx context.Context) ([]domain.Department, error) {
	return s.api.ListDepartments(ctx)
}
