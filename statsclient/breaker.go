package statsclient

import (
	"context"
	"errors"
	"time"

	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/safedep/dry/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "stats-api"

// BreakerConfig controls when the stats circuit opens.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures that open the circuit.
	MaxFailures uint32
	// OpenTimeout is how long the circuit stays open before a trial request.
	OpenTimeout time.Duration
}

// Breaker guards the stats endpoint so a down server is not hammered on
// every refresh.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[[]concurrency.Sample]
}

// NewBreaker creates a breaker from cfg.
func NewBreaker(cfg BreakerConfig) *Breaker {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[[]concurrency.Sample](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Breaker{cb: cb}
}

// Execute runs fn unless the circuit is open.
func (b *Breaker) Execute(fn func() ([]concurrency.Sample, error)) ([]concurrency.Sample, error) {
	return b.cb.Execute(fn)
}

// State returns the current breaker state name.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// IsOpen reports whether err was caused by a rejected request.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
