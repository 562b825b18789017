// Package circuit provides a small consecutive-failure circuit breaker for
// fail-open side channels. When a sink keeps failing, the breaker opens and
// callers skip the sink entirely instead of piling retries onto it.
package circuit

import (
	"sync"
	"time"
)

// Breaker tracks consecutive failures. It opens once the threshold is
// reached and stays open for the cooldown, after which the next Allow lets
// a probe through.
type Breaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration

	failures  int
	open      bool
	openUntil time.Time
}

// New builds a breaker. Non-positive arguments fall back to 5 failures and
// a one-minute cooldown.
func New(threshold int, cooldown time.Duration) *Breaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	return &Breaker{threshold: threshold, cooldown: cooldown}
}

// Allow reports whether the caller should attempt the operation. An open
// breaker whose cooldown has expired closes and lets the call through as a
// probe; the next Failure reopens it immediately.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return true
	}
	if time.Now().After(b.openUntil) {
		b.open = false
		// Leave the failure count at the threshold so a failed probe
		// reopens without waiting for another full run of failures.
		b.failures = b.threshold - 1
		return true
	}
	return false
}

// Success closes the breaker and clears the failure count.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.open = false
}

// Failure records one failed attempt, opening the breaker at the threshold.
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures >= b.threshold {
		b.open = true
		b.openUntil = time.Now().Add(b.cooldown)
	}
}

// Open reports whether the breaker is currently rejecting attempts.
func (b *Breaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open && time.Now().Before(b.openUntil)
}
