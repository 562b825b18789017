package saga

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcomes struct {
	succeeded          []string
	failed             []string
	compensations      []string
	compensationFailed []string
	bestEffort         []string
}

func (o *outcomes) SagaSucceeded(saga string)            { o.succeeded = append(o.succeeded, saga) }
func (o *outcomes) SagaFailed(saga, step string)         { o.failed = append(o.failed, step) }
func (o *outcomes) CompensationRun(saga, step string)    { o.compensations = append(o.compensations, step) }
func (o *outcomes) CompensationFailed(saga, step string) { o.compensationFailed = append(o.compensationFailed, step) }
func (o *outcomes) BestEffortFailed(saga, step string)   { o.bestEffort = append(o.bestEffort, step) }

func step(name string, calls *[]string, err error) Step {
	return Step{
		Name: name,
		Run: func(context.Context) error {
			*calls = append(*calls, name)
			return err
		},
	}
}

func TestExecute_RunsStepsInOrder(t *testing.T) {
	obs := &outcomes{}
	runner := NewRunner(slog.Default(), obs)

	var calls []string
	err := runner.Execute(context.Background(), "test", []Step{
		step("first", &calls, nil),
		step("second", &calls, nil),
		step("third", &calls, nil),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
	assert.Equal(t, []string{"test"}, obs.succeeded)
}

func TestExecute_FailureCompensatesCompletedStepsInReverse(t *testing.T) {
	obs := &outcomes{}
	runner := NewRunner(slog.Default(), obs)

	boom := errors.New("boom")
	var calls, undone []string
	steps := []Step{
		{
			Name: "first",
			Run:  func(context.Context) error { calls = append(calls, "first"); return nil },
			Compensate: func(context.Context) error {
				undone = append(undone, "first")
				return nil
			},
		},
		{
			Name: "second",
			Run:  func(context.Context) error { calls = append(calls, "second"); return nil },
			Compensate: func(context.Context) error {
				undone = append(undone, "second")
				return nil
			},
		},
		step("third", &calls, boom),
		step("never", &calls, nil),
	}

	err := runner.Execute(context.Background(), "test", steps)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
	assert.Equal(t, []string{"second", "first"}, undone)
	assert.Equal(t, []string{"third"}, obs.failed)
	assert.Empty(t, obs.succeeded)
}

func TestExecute_CompensationFailureKeepsOriginalError(t *testing.T) {
	obs := &outcomes{}
	runner := NewRunner(slog.Default(), obs)

	boom := errors.New("boom")
	steps := []Step{
		{
			Name:       "first",
			Run:        func(context.Context) error { return nil },
			Compensate: func(context.Context) error { return errors.New("undo failed") },
		},
		{
			Name: "second",
			Run:  func(context.Context) error { return boom },
		},
	}

	err := runner.Execute(context.Background(), "test", steps)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first"}, obs.compensationFailed)
}

func TestExecute_StepsWithoutCompensationAreSkippedDuringUndo(t *testing.T) {
	obs := &outcomes{}
	runner := NewRunner(slog.Default(), obs)

	var undone []string
	steps := []Step{
		{
			Name: "uncompensated",
			Run:  func(context.Context) error { return nil },
		},
		{
			Name:       "compensated",
			Run:        func(context.Context) error { return nil },
			Compensate: func(context.Context) error { undone = append(undone, "compensated"); return nil },
		},
		{
			Name: "failing",
			Run:  func(context.Context) error { return errors.New("boom") },
		},
	}

	require.Error(t, runner.Execute(context.Background(), "test", steps))
	assert.Equal(t, []string{"compensated"}, undone)
	assert.Equal(t, []string{"compensated"}, obs.compensations)
}

func TestExecute_BestEffortFailureDoesNotFailSaga(t *testing.T) {
	obs := &outcomes{}
	runner := NewRunner(slog.Default(), obs)

	var calls []string
	steps := []Step{
		step("first", &calls, nil),
		{
			Name:       "flaky",
			BestEffort: true,
			Run: func(context.Context) error {
				calls = append(calls, "flaky")
				return errors.New("unavailable")
			},
		},
		step("last", &calls, nil),
	}

	require.NoError(t, runner.Execute(context.Background(), "test", steps))
	assert.Equal(t, []string{"first", "flaky", "last"}, calls)
	assert.Equal(t, []string{"flaky"}, obs.bestEffort)
	assert.Equal(t, []string{"test"}, obs.succeeded)
}

func TestNewRunner_NilObserverDefaultsToNop(t *testing.T) {
	runner := NewRunner(slog.Default(), nil)
	require.NoError(t, runner.Execute(context.Background(), "test", []Step{
		{Name: "only", Run: func(context.Context) error { return nil }},
	}))
}
