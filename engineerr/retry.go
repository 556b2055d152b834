package engineerr

import (
	"math"
	"math/rand"
	"time"

	"github.com/MSS23/vgc-mcp-sub003/vgclog"
)

// RetryConfig controls WithRetry's exponential-backoff-with-jitter
// schedule, shaped after the teacher's Steam-API retry policy but
// generalized from HTTP status codes to engineerr.Kind.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	Jitter      bool
}

// DefaultRetryConfig is the default policy for ProviderTransient failures
// (spec.md section 7): 3 attempts, 500ms base delay, doubling each time,
// capped at 10s, with jitter to avoid synchronized retries.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
	}
}

// RetryableFunc is one attempt of a retryable operation. A nil *Error
// means success.
type RetryableFunc func() *Error

// WithRetry runs fn up to config.MaxAttempts times, retrying only on
// ProviderTransient failures; any other Kind stops the loop immediately
// (spec.md section 7: ProviderPermanent, InvalidInput, etc. fail outright).
func WithRetry(config RetryConfig, operation string, fn RetryableFunc) *Error {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}
	if config.BaseDelay <= 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 30 * time.Second
	}
	if config.Multiplier <= 1 {
		config.Multiplier = 2.0
	}

	var lastErr *Error
	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if attempt > 0 {
			vgclog.Warn("retrying engine operation", "operation", operation, "attempt", attempt+1, "max_attempts", config.MaxAttempts, "last_error", lastErr.Message)
		}

		err := fn()
		if err == nil {
			if attempt > 0 {
				vgclog.Info("engine operation succeeded after retry", "operation", operation, "total_attempts", attempt+1)
			}
			return nil
		}
		lastErr = err

		if err.Kind != ProviderTransient {
			break
		}

		if attempt < config.MaxAttempts-1 {
			time.Sleep(backoffDelay(attempt, config))
		}
	}

	if lastErr != nil {
		vgclog.Error("engine operation failed after exhausting retries", "operation", operation, "kind", lastErr.Kind, "error", lastErr.Message)
	}
	return lastErr
}

// backoffDelay computes baseDelay * multiplier^attempt, capped at
// maxDelay, with optional 50%-100% jitter.
func backoffDelay(attempt int, config RetryConfig) time.Duration {
	delay := float64(config.BaseDelay) * math.Pow(config.Multiplier, float64(attempt))
	if delay > float64(config.MaxDelay) {
		delay = float64(config.MaxDelay)
	}
	if config.Jitter {
		delay *= 0.5 + rand.Float64()*0.5
	}
	return time.Duration(delay)
}
