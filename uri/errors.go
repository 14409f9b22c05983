package uri

import (
	"errors"
	"fmt"
)

// ErrInvalidPort is returned (wrapped in a *PortError) when the port part of
// the authority is not a decimal number in [0, 65535].
var ErrInvalidPort = errors.New("invalid port")

// PortError describes a rejected port.
type PortError struct {
	// Digits is the raw text between the port separator and the end of the
	// authority.
	Digits string
	// Reason is a short human-readable explanation.
	Reason string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("invalid port %q: %s", e.Digits, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidPort).
func (e *PortError) Unwrap() error {
	return ErrInvalidPort
}
