package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p so that rate limits, outages and one malformed reply
// per call are retried up to cfg.MaxAttempts times in total.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err         error
		resp        *Response
		sawInvalid  bool
		lastAttempt = r.config.MaxAttempts - 1
	)
	for attempt := 0; attempt <= lastAttempt; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if resp, err = r.inner.Generate(ctx, req); err == nil {
			return resp, nil
		}

		switch classify(err) {
		case permanent:
			return nil, err
		case malformed:
			if sawInvalid {
				return nil, err
			}
			sawInvalid = true
		}
		if attempt == lastAttempt {
			break
		}

		timer := time.NewTimer(r.backoff(attempt, err))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, err
}

type failureKind int

const (
	transient failureKind = iota
	malformed
	permanent
)

func classify(err error) failureKind {
	var (
		truncated *TruncatedError
		invalid   *InvalidResponseError
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return permanent
	case errors.As(err, &truncated):
		// The same prompt will overflow again.
		return permanent
	case errors.As(err, &invalid):
		return malformed
	default:
		return transient
	}
}

// backoff honours a provider's Retry-After, otherwise grows geometrically
// from InitialWait up to MaxWait with ±20% jitter.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = min(wait, float64(r.config.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(wait, 0))
}
