package errs

// Error classes shared by every layer. Package-level sentinels are built with
// Class so handlers can switch on the class alone.
var (
	// ErrInvalidRange covers malformed dates, start after end and other rejected input.
	ErrInvalidRange = New("invalid date range")

	ErrNotFound = New("not found")

	// ErrConcurrencyConflict is returned when a write lost a race against another writer.
	ErrConcurrencyConflict = New("concurrency conflict")

	// ErrConflict is a business-level conflict such as an occupied room.
	ErrConflict = New("conflict")

	ErrUpstreamIntegration = New("upstream integration failed")
)

// classError is a sentinel that also matches its class.
type classError struct {
	msg   string
	class error
}

func (e *classError) Error() string { return e.msg }

func (e *classError) Is(target error) bool { return target == e.class }

// Class returns a sentinel that is distinct from every other sentinel but
// still satisfies Is(err, class).
func Class(msg string, class error) error {
	return &classError{msg: msg, class: class}
}
