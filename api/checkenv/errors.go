package checkenv

import (
	"errors"
	"strings"
)

// Sentinel errors. Match with errors.Is; use errors.As on *MissingError or
// *UnsafeError to read the offending names.
var (
	// ErrMissing indicates at least one required variable is unset.
	ErrMissing = errors.New("missing required environment variables")
	// ErrUnsafe indicates at least one unsafe variable is set in production.
	ErrUnsafe = errors.New("unsafe environment variables set")
	// ErrInvalidName indicates a name list entry that is neither a name nor a placeholder.
	ErrInvalidName = errors.New("invalid environment variable name")
)

// MissingError is returned when required variables are unset.
// Optional carries the optional names that were also unset; it is not part
// of the message.
type MissingError struct {
	Missing  []string
	Optional []string
}

func (e *MissingError) Error() string {
	return "Some required environment variables are missing: " + strings.Join(e.Missing, ", ")
}

// Is allows errors.Is(err, ErrMissing).
func (e *MissingError) Is(target error) bool { return target == ErrMissing }

// UnsafeError is returned when unsafe variables are set while the
// production discriminator is active.
type UnsafeError struct {
	Unsafe []string
}

func (e *UnsafeError) Error() string {
	return "Some unsafe environment variables are set in production: " + strings.Join(e.Unsafe, ", ")
}

// Is allows errors.Is(err, ErrUnsafe).
func (e *UnsafeError) Is(target error) bool { return target == ErrUnsafe }
