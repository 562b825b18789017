// Package saga runs an ordered list of independent store writes with
// explicit compensating actions in place of a database transaction.
//
// Each step commits on its own; there is no shared transaction to roll
// back. On the first hard failure the runner executes the compensations of
// the steps that already completed, in reverse order, then returns the
// failing step's error. A compensation's own failure is a degraded outcome:
// it is logged and counted but never overrides the reported error, and it
// is never surfaced as a distinct failure to the caller.
//
// Best-effort steps may fail without changing the verdict; their failures
// are logged and counted only. Nothing is ever retried.
package saga

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"regdesk/pkg/requestcontext"
)

// Step is one store write in a saga.
type Step struct {
	// Name identifies the step in logs, traces, and metrics.
	Name string

	// Run performs the write. A non-nil error aborts the saga unless
	// BestEffort is set.
	Run func(ctx context.Context) error

	// Compensate semantically undoes a completed Run after a later step
	// fails. Nil means the step has no compensation (its effect is either
	// harmless or explicitly accepted as an inconsistency window).
	Compensate func(ctx context.Context) error

	// BestEffort steps never fail the saga.
	BestEffort bool
}

// Observer receives saga outcomes. The registration metrics package
// implements it with Prometheus counters.
type Observer interface {
	SagaSucceeded(saga string)
	SagaFailed(saga, step string)
	CompensationRun(saga, step string)
	CompensationFailed(saga, step string)
	BestEffortFailed(saga, step string)
}

// NopObserver discards all outcomes.
type NopObserver struct{}

func (NopObserver) SagaSucceeded(string)              {}
func (NopObserver) SagaFailed(string, string)         {}
func (NopObserver) CompensationRun(string, string)    {}
func (NopObserver) CompensationFailed(string, string) {}
func (NopObserver) BestEffortFailed(string, string)   {}

// Runner executes sagas sequentially within one request. It holds no state
// between runs and is safe for concurrent use.
type Runner struct {
	logger   *slog.Logger
	observer Observer
	tracer   trace.Tracer
}

// NewRunner builds a runner. A nil observer disables outcome counting.
func NewRunner(logger *slog.Logger, observer Observer) *Runner {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Runner{
		logger:   logger,
		observer: observer,
		tracer:   otel.Tracer("regdesk/registration/saga"),
	}
}

// Execute runs the steps in order. It returns nil when every hard step
// completed, or the first hard failure after compensating completed steps.
func (r *Runner) Execute(ctx context.Context, name string, steps []Step) error {
	ctx, span := r.tracer.Start(ctx, "saga."+name)
	defer span.End()

	var completed []Step
	for _, step := range steps {
		span.AddEvent("step", trace.WithAttributes(attribute.String("step", step.Name)))

		err := step.Run(ctx)
		if err == nil {
			completed = append(completed, step)
			continue
		}

		if step.BestEffort {
			// Accepted inconsistency window: the saga verdict is unchanged.
			r.observer.BestEffortFailed(name, step.Name)
			r.logger.WarnContext(ctx, "best-effort saga step failed",
				"saga", name,
				"step", step.Name,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			continue
		}

		r.observer.SagaFailed(name, step.Name)
		span.SetStatus(codes.Error, step.Name)
		span.RecordError(err)
		r.compensate(ctx, name, completed)
		return err
	}

	r.observer.SagaSucceeded(name)
	return nil
}

// compensate undoes completed steps in reverse order. Failures here are
// logged and counted, never returned: the caller still sees the original
// step error.
func (r *Runner) compensate(ctx context.Context, name string, completed []Step) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		r.observer.CompensationRun(name, step.Name)
		if err := step.Compensate(ctx); err != nil {
			r.observer.CompensationFailed(name, step.Name)
			r.logger.ErrorContext(ctx, "saga compensation failed",
				"saga", name,
				"step", step.Name,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
	}
}
