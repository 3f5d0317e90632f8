// Package resilience wraps outbound collaborator calls with retries, a
// circuit breaker, and an optional fallback. Transient failures are retried
// with exponential backoff; a collaborator that keeps failing trips the
// breaker and callers fail fast until the cooldown expires. Callers that can
// serve a degraded answer attach it via ExecuteWithFallback.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/eapache/go-resiliency/breaker"
	"github.com/eapache/go-resiliency/retrier"
)

// ErrCircuitOpen is returned while the breaker refuses calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

const (
	defaultRetries        = 3
	defaultBackoff        = 200 * time.Millisecond
	defaultErrorThreshold = 5
	defaultSuccessToClose = 1
	defaultCooldown       = 10 * time.Second
)

// Policy combines a retrier and a circuit breaker around a named
// collaborator. The breaker sits outside the retrier: a call counts as one
// failure against the breaker no matter how many retry attempts it burned.
type Policy struct {
	name    string
	breaker *breaker.Breaker
	retries int
	backoff time.Duration
}

// Option customizes a Policy.
type Option func(*Policy)

// WithRetries sets the number of retry attempts after the first failure.
func WithRetries(retries int) Option {
	return func(p *Policy) { p.retries = retries }
}

// WithBackoff sets the initial backoff between attempts; it doubles each
// retry.
func WithBackoff(backoff time.Duration) Option {
	return func(p *Policy) { p.backoff = backoff }
}

// WithBreaker replaces the breaker thresholds.
func WithBreaker(errorThreshold, successThreshold int, cooldown time.Duration) Option {
	return func(p *Policy) {
		p.breaker = breaker.New(errorThreshold, successThreshold, cooldown)
	}
}

// NewPolicy creates a policy with exponential backoff retries and a breaker
// that opens after repeated failures.
func NewPolicy(name string, opts ...Option) *Policy {
	p := &Policy{
		name:    name,
		breaker: breaker.New(defaultErrorThreshold, defaultSuccessToClose, defaultCooldown),
		retries: defaultRetries,
		backoff: defaultBackoff,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the collaborator name the policy guards.
func (p *Policy) Name() string { return p.name }

// Execute runs work through the breaker and retrier. Context cancellation
// stops retrying immediately. When the breaker is open the work is not
// invoked at all and ErrCircuitOpen is returned.
func (p *Policy) Execute(ctx context.Context, work func(ctx context.Context) error) error {
	err := p.breaker.Run(func() error {
		r := retrier.New(retrier.ExponentialBackoff(p.retries+1, p.backoff), nil)
		return r.RunCtx(ctx, work)
	})
	if errors.Is(err, breaker.ErrBreakerOpen) {
		return ErrCircuitOpen
	}
	return err
}

// ExecuteWithFallback runs work through the policy and, when it still fails
// after retries or because the breaker is open, hands the failure to
// fallback. Whatever the fallback returns becomes the call's result.
func (p *Policy) ExecuteWithFallback(
	ctx context.Context,
	work func(ctx context.Context) error,
	fallback func(ctx context.Context, cause error) error,
) error {
	err := p.Execute(ctx, work)
	if err == nil {
		return nil
	}
	return fallback(ctx, err)
}
