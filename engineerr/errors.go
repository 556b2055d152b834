// Package engineerr implements the engine's closed error-kind taxonomy
// (spec.md section 7): InvalidInput, UnknownSpecies, UnknownMove,
// ImpossibleBenchmark, ProviderTransient, ProviderPermanent, Cancelled, and
// InternalInvariantViolated, each wrapping an underlying cause and carrying
// enough structured detail for a caller to branch on via errors.As.
package engineerr

import (
	"fmt"
	"strings"
)

// Kind is the closed set of error categories a collaborator or CLI caller
// can distinguish between (spec.md section 7).
type Kind string

const (
	InvalidInput              Kind = "invalid_input"
	UnknownSpecies            Kind = "unknown_species"
	UnknownMove               Kind = "unknown_move"
	ImpossibleBenchmark       Kind = "impossible_benchmark"
	ProviderTransient         Kind = "provider_transient"
	ProviderPermanent         Kind = "provider_permanent"
	Cancelled                 Kind = "cancelled"
	InternalInvariantViolated Kind = "internal_invariant_violated"
)

// Error is the engine's structured error type: a Kind, a human-readable
// message, an optional offending field name, a set of "did you mean..."
// candidates, and the underlying cause.
type Error struct {
	Kind        Kind
	Message     string
	Field       string
	Suggestions []string
	Cause       error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %q)", msg, e.Field)
	}
	if len(e.Suggestions) > 0 {
		msg = fmt.Sprintf("%s (did you mean: %s?)", msg, strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, engineerr.Sentinel(...)) work by comparing a sentinel
// *Error carrying only a Kind against any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel returns a bare *Error of the given Kind, suitable for
// errors.Is(err, engineerr.Sentinel(engineerr.InvalidInput)) comparisons.
func Sentinel(k Kind) *Error { return &Error{Kind: k} }

// NewInvalidInput builds an InvalidInput error naming the offending field
// (e.g. an EV total over 508, a nature outside the 25-entry enum).
func NewInvalidInput(field, message string) *Error {
	return &Error{Kind: InvalidInput, Message: message, Field: field}
}

// NewUnknownSpecies builds an UnknownSpecies error, used after the
// form-stripped retry (spec.md section 6) still misses. suggestions, if
// non-empty, are "did you mean...?" candidates from a fuzzy match against
// the provider's known names.
func NewUnknownSpecies(name string, suggestions ...string) *Error {
	return &Error{Kind: UnknownSpecies, Message: fmt.Sprintf("unknown species %q", name), Field: "species", Suggestions: suggestions}
}

// NewUnknownMove builds an UnknownMove error for the same form-stripped
// retry failure on the move side.
func NewUnknownMove(name string, suggestions ...string) *Error {
	return &Error{Kind: UnknownMove, Message: fmt.Sprintf("unknown move %q", name), Field: "move", Suggestions: suggestions}
}

// NewImpossibleBenchmark marks a search that found no feasible EV spread.
// This is not a fatal error in the §7 sense: callers should read it as the
// IMPOSSIBLE verdict carrying the best-effort spread, not abort.
func NewImpossibleBenchmark(message string) *Error {
	return &Error{Kind: ImpossibleBenchmark, Message: message}
}

// NewProviderTransient wraps a retryable collaborator failure (network,
// disk) that WithRetry should retry before giving up.
func NewProviderTransient(cause error) *Error {
	return &Error{Kind: ProviderTransient, Message: "transient provider failure", Cause: cause}
}

// NewProviderPermanent wraps a non-retryable collaborator failure (a 404
// surviving the form-stripped retry).
func NewProviderPermanent(cause error) *Error {
	return &Error{Kind: ProviderPermanent, Message: "permanent provider failure", Cause: cause}
}

// NewCancelled wraps a cooperative-cancellation error. Per spec.md section
// 7, callers should fail without recording an audit trail.
func NewCancelled(cause error) *Error {
	return &Error{Kind: Cancelled, Message: "operation cancelled", Cause: cause}
}

// NewInternalInvariantViolated marks a bug: a computed value that should
// be structurally impossible (a negative damage roll, a type-chart lookup
// out of bounds). Callers should treat this as a panic-worthy condition,
// not a recoverable failure.
func NewInternalInvariantViolated(message string) *Error {
	return &Error{Kind: InternalInvariantViolated, Message: message}
}
