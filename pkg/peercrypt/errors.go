package peercrypt

import (
	"errors"
	"fmt"
)

var (
	// ErrInputBounds indicates a caller-supplied offset or length falls
	// outside the backing buffer, or a buffer is shorter than a format
	// requires. Always detected before any curve-library call.
	ErrInputBounds = errors.New("peercrypt: input outside buffer bounds")

	// ErrFormat indicates a parsed or produced structure violates a
	// fixed-size or header invariant, including invalid hex input.
	ErrFormat = errors.New("peercrypt: malformed structure")

	// ErrCryptoLib indicates the curve library rejected otherwise
	// well-formed input: an invalid scalar, a point not on the curve, or a
	// malformed compact signature.
	ErrCryptoLib = errors.New("peercrypt: curve library rejected input")

	// ErrVerification indicates the input was well-formed but the
	// cryptographic check itself failed.
	ErrVerification = errors.New("peercrypt: message signature verification failed")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("peercrypt.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf builds an Error whose chain matches kind under errors.Is.
func errorf(op string, kind error, format string, args ...any) error {
	args = append([]any{kind}, args...)
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: "+format, args...),
	}
}
