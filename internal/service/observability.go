package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent describes one completed service operation: which use case
// ran, how long it took, and whether it produced an error.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type slogUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver emits one slog line per use case to w. Failed
// operations log at error level with the wrapped error message attached.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &slogUseCaseObserver{logger: slog.New(handler)}
}

func (o *slogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		"use_case", event.Name,
		"started_at", event.StartedAt.Format(time.RFC3339),
		"duration_ms", event.Duration.Milliseconds(),
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}

	if !event.Success {
		if event.Err != nil {
			attrs = append(attrs, "error", event.Err.Error())
		}
		o.logger.ErrorContext(ctx, "use_case_failed", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case_done", attrs...)
}

// useCaseObserverOrNoop picks the first non-nil observer from an optional
// variadic argument list.
func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
