package search

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreRequired is returned when NewEngine is given a nil store.
	ErrStoreRequired = errors.New("job store required")

	// ErrInvalidLimit is returned for a non-positive page limit. Callers
	// should map it to a client error; it is never retryable.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrStoreUnavailable wraps any storage failure during evaluation. The
	// whole search fails rather than returning a partially filtered page:
	// a skipped exclude step would under-filter, not just under-report.
	ErrStoreUnavailable = errors.New("job store unavailable")

	// ErrJobNotFound is returned by single-document lookups. An empty
	// result page is a successful response, not this error.
	ErrJobNotFound = errors.New("job not found")
)

// wrapUnavailable tags a storage failure so callers can match it with
// errors.Is(err, ErrStoreUnavailable).
func wrapUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

