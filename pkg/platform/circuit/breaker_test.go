package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_StartsClosed(t *testing.T) {
	b := New(3, time.Minute)
	assert.True(t, b.Allow())
	assert.False(t, b.Open())
}

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b := New(3, time.Minute)

	b.Failure()
	b.Failure()
	assert.True(t, b.Allow())

	b.Failure()
	assert.True(t, b.Open())
	assert.False(t, b.Allow())
}

func TestBreaker_SuccessResets(t *testing.T) {
	b := New(3, time.Minute)

	b.Failure()
	b.Failure()
	b.Success()

	b.Failure()
	b.Failure()
	assert.True(t, b.Allow())
	assert.False(t, b.Open())
}

func TestBreaker_CooldownAllowsProbe(t *testing.T) {
	b := New(1, 10*time.Millisecond)

	b.Failure()
	assert.False(t, b.Allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow(), "expired cooldown should let a probe through")

	// A failed probe reopens immediately.
	b.Failure()
	assert.False(t, b.Allow())
}

func TestBreaker_ProbeSuccessCloses(t *testing.T) {
	b := New(2, 10*time.Millisecond)

	b.Failure()
	b.Failure()
	time.Sleep(20 * time.Millisecond)

	assert.True(t, b.Allow())
	b.Success()

	b.Failure()
	assert.True(t, b.Allow(), "one failure after recovery should not reopen")
}

func TestBreaker_DefaultsApplied(t *testing.T) {
	b := New(0, 0)
	for i := 0; i < 4; i++ {
		b.Failure()
	}
	assert.True(t, b.Allow())
	b.Failure()
	assert.False(t, b.Allow())
}
