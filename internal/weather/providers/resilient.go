package providers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/sloc-weather/internal/weather"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultBackoff is used by NewResilient when no backoff is given.
var DefaultBackoff = BackoffConfig{
	MaxRetries:      3,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
}

var (
	// ErrCircuitOpen is returned while the breaker rejects calls.
	ErrCircuitOpen   = errors.New("circuit breaker open")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// Resilient guards a provider's Conditions call with retries, exponential
// backoff and a circuit breaker. All other methods are those of the wrapped
// provider.
type Resilient struct {
	weather.Provider

	backoff BackoffConfig
	circuit *gobreaker.CircuitBreaker
}

// NewResilient wraps p. A zero backoff selects DefaultBackoff.
func NewResilient(p weather.Provider, backoff BackoffConfig) *Resilient {
	if backoff == (BackoffConfig{}) {
		backoff = DefaultBackoff
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Resilient{Provider: p, backoff: backoff, circuit: cb}
}

// Conditions calls the wrapped provider, retrying failures.
func (r *Resilient) Conditions(ctx context.Context) (weather.Conditions, error) {
	return callWithResilience(ctx, r.backoff, r.circuit, r.Provider.Conditions)
}

// Unwrap returns the wrapped provider.
func (r *Resilient) Unwrap() weather.Provider {
	return r.Provider
}

// State reports the circuit breaker state.
func (r *Resilient) State() gobreaker.State {
	return r.circuit.State()
}

func callWithResilience(
	ctx context.Context,
	cfg BackoffConfig,
	cb *gobreaker.CircuitBreaker,
	fetch func(context.Context) (weather.Conditions, error),
) (weather.Conditions, error) {
	if cfg.MaxRetries < 0 || cfg.InitialInterval <= 0 {
		return weather.Conditions{}, errInvalidConfig
	}

	var attempt int
	for {
		if ctx.Err() != nil {
			return weather.Conditions{}, ctx.Err()
		}

		result, err := cb.Execute(func() (interface{}, error) {
			return fetch(ctx)
		})
		if err == nil {
			c, ok := result.(weather.Conditions)
			if !ok {
				return weather.Conditions{}, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return c, nil
		}

		// If circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return weather.Conditions{}, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		if attempt >= cfg.MaxRetries {
			return weather.Conditions{}, err
		}

		delay := cfg.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > cfg.MaxInterval && cfg.MaxInterval > 0 {
			delay = cfg.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return weather.Conditions{}, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
