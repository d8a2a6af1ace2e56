package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches markErr's identity to err so that Is(err, markErr) holds
// while the original cause stays in the chain. Marking with a Class
// sentinel also marks with its class. The result matches the standard
// errors.Is as well.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	if c, ok := markErr.(*classError); ok {
		err = cr.Mark(err, c.class)
	}
	return &markedError{cause: cr.Mark(err, markErr), mark: markErr}
}

// markedError keeps the cause's message and exposes the mark to errors.Is.
type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Is(target error) bool {
	return target == e.mark || errors.Is(e.mark, target)
}

func (e *markedError) Format(s fmt.State, verb rune) { cr.FormatError(e, s, verb) }

// FormatError prints nothing of its own so %+v shows the cause with its stack.
func (e *markedError) FormatError(cr.Printer) error { return e.cause }

// Is also matches marks, unlike the standard library.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

func IsAny(err error, targets ...error) bool {
	return cr.IsAny(err, targets...)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
