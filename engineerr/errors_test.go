package engineerr

import (
	"errors"
	"testing"
)

func TestIsMatchesByKindNotIdentity(t *testing.T) {
	err := NewUnknownSpecies("chamander")
	if !errors.Is(err, Sentinel(UnknownSpecies)) {
		t.Fatal("expected errors.Is to match on Kind")
	}
	if errors.Is(err, Sentinel(UnknownMove)) {
		t.Fatal("expected errors.Is to reject a different Kind")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewProviderTransient(cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the wrapped cause")
	}
}

func TestWithRetryRetriesOnlyProviderTransient(t *testing.T) {
	attempts := 0
	cfg := RetryConfig{MaxAttempts: 3, BaseDelay: 0, MaxDelay: 0, Multiplier: 2, Jitter: false}

	err := WithRetry(cfg, "fetch-usage", func() *Error {
		attempts++
		if attempts < 3 {
			return &Error{Kind: ProviderTransient, Message: "temporary"}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithRetryStopsImmediatelyOnNonTransient(t *testing.T) {
	attempts := 0
	cfg := DefaultRetryConfig()
	cfg.BaseDelay = 0

	err := WithRetry(cfg, "lookup-species", func() *Error {
		attempts++
		return NewUnknownSpecies("missingno")
	})
	if err == nil || err.Kind != UnknownSpecies {
		t.Fatalf("expected UnknownSpecies error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected exactly 1 attempt for a non-retryable kind, got %d", attempts)
	}
}
