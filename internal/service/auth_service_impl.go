package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/repository"
	"github.com/nconsulting/timecard/internal/session"
)

type authService struct {
	api      api.Client
	sessions repository.SessionStore
	observer UseCaseObserver
}

func NewAuthService(client api.Client, sessions repository.SessionStore, observers ...UseCaseObserver) AuthService {
	return &authService{
		api:      client,
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (sc *session.Context, err error) {
	username = strings.TrimSpace(username)
	defer observe(ctx, s.observer, "login", username, nil, &err)()

	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	res, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sc = &session.Context{
		Username:   res.Username,
		FirstName:  res.FirstName,
		LastName:   res.LastName,
		EmployeeID: res.EmployeeID,
		Role:       res.Role,
		Token:      res.Token,
		ExpiresAt:  res.Expiration,
	}
	if err = s.sessions.Save(ctx, *sc); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	return sc, nil
}

func (s *authService) Logout(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "logout", "", nil, &err)()
	err = s.sessions.Clear(ctx)
	return err
}

func (s *authService) Current(ctx context.Context) (*session.Context, error) {
	return s.sessions.Load(ctx)
}
