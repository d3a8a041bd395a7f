package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/cli"
	"github.com/nconsulting/timecard/internal/config"
	"github.com/nconsulting/timecard/internal/db"
	"github.com/nconsulting/timecard/internal/repository"
	"github.com/nconsulting/timecard/internal/service"
	"github.com/nconsulting/timecard/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Structured logs go to the configured file; no file, no logging.
	var logSink io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logSink = f
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	defer database.Close()

	sessions := repository.NewSQLiteSessionStore(database)
	drafts := repository.NewSQLiteDraftStore(database)

	// A stored session carries the bearer token for the API client. Absence
	// just means unauthenticated; login will establish one.
	var token string
	if sess, err := sessions.Load(context.Background()); err == nil {
		token = sess.Token
	} else if !errors.Is(err, session.ErrNotLoggedIn) {
		return err
	}

	client := api.New(api.Config{
		BaseURL:   cfg.ServerURL,
		Token:     token,
		TimeoutMs: cfg.TimeoutMs,
	}, api.NewLogObserver(logSink))

	obs := service.NewLogUseCaseObserver(logSink)

	app := &cli.App{
		Auth:       service.NewAuthService(client, sessions, obs),
		Timesheets: service.NewTimesheetService(client, drafts, obs),
		Approvals:  service.NewApprovalService(client, obs),
		Employees:  service.NewEmployeeService(client, obs),
		Projects:   service.NewProjectService(client),
		Tasks:      service.NewTaskService(client),
		Holidays:   service.NewHolidayService(client),

		ExportDir: cfg.ExportDir,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
