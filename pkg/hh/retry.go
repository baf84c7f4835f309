package hh

import (
	"fmt"
	"time"
)

// RetryPolicy controls how getJSON reacts to failed attempts. Delays
// are keyed by zero-based attempt index so tests can assert the exact
// backoff schedule.
type RetryPolicy struct {
	MaxAttempts    int
	RateLimitDelay func(attempt int) time.Duration
	FailureDelay   func(attempt int) time.Duration
}

// DefaultRetryPolicy matches the API's published rate-limit guidance:
// five attempts, 1.5s*(n+1) after a 429, 0.8s*(n+1) after anything else.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		RateLimitDelay: func(attempt int) time.Duration {
			return time.Duration(float64(attempt+1) * 1.5 * float64(time.Second))
		},
		FailureDelay: func(attempt int) time.Duration {
			return time.Duration(float64(attempt+1) * 0.8 * float64(time.Second))
		},
	}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.RateLimitDelay == nil {
		p.RateLimitDelay = def.RateLimitDelay
	}
	if p.FailureDelay == nil {
		p.FailureDelay = def.FailureDelay
	}
	return p
}

// RequestError is returned once the retry budget is exhausted. It
// wraps the last underlying failure.
type RequestError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("hh: request %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
