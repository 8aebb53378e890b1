package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidHandle reports a handle that is empty after normalization.
// It is a caller input error, not a collector failure.
var ErrInvalidHandle = errors.New("handle cannot be empty")

// ErrCollector is the root of all upstream collection failures. Specific
// failures wrap it, so errors.Is(err, ErrCollector) matches the whole family.
var ErrCollector = errors.New("collector failure")

var (
	// ErrNotFound means upstream reports the handle does not exist.
	ErrNotFound = fmt.Errorf("%w: upstream resource not found", ErrCollector)

	// ErrRateLimited means upstream signaled throttling.
	ErrRateLimited = fmt.Errorf("%w: upstream rate limit reached", ErrCollector)
)
