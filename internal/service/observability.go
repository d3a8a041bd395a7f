package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent is one service call: what ran, for whom, how long, outcome.
type UseCaseEvent struct {
	Name     string
	Actor    string
	Duration time.Duration
	Err      error
	Fields   map[string]any
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to w as slog text.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
	)
	if event.Actor != "" {
		attrs = append(attrs, "actor", event.Actor)
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "use_case_failed", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

// observe wraps a deferred observer call. Usage:
//
//	defer observe(ctx, obs, "save-month", actor, fields, &err)()
func observe(ctx context.Context, obs UseCaseObserver, name, actor string, fields map[string]any, errp *error) func() {
	started := time.Now()
	return func() {
		var err error
		if errp != nil {
			err = *errp
		}
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:     name,
			Actor:    actor,
			Duration: time.Since(started),
			Err:      err,
			Fields:   fields,
		})
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
