package services

import (
	"errors"
	"fmt"
)

// Business-rule and lookup failures. All of them abort the operation with
// zero partial state, so callers can retry safely.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrHoldingNotFound    = errors.New("holding not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// InvalidArgumentError reports malformed or out-of-range input. It is
// raised before any storage access.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

func invalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports a missing allocation tier. This is an
// operational defect, not a user error, and surfaces at first use of the
// affected tier.
type ConfigurationError struct {
	Tier string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("allocation weights for %s missing from configuration", e.Tier)
}
