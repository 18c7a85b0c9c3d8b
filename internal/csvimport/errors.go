package csvimport

import "errors"

var (
	// ErrDocument marks a failure that rejects the whole document.
	ErrDocument = errors.New("invalid document")
	// ErrValidation marks a row that failed schema validation.
	ErrValidation = errors.New("validation failed")
	// ErrInvariant marks a built record that violates an entity invariant.
	ErrInvariant = errors.New("invalid record")
	// ErrUnknownResolution is returned when a resolution name is not recognised.
	ErrUnknownResolution = errors.New("unknown resolution")
)

// rowError keeps the sentinel for errors.Is while printing only the message,
// since row messages are shown to the user verbatim.
type rowError struct {
	kind error
	msg  string
}

func (e *rowError) Error() string { return e.msg }

func (e *rowError) Unwrap() error { return e.kind }

func validationError(msg string) error {
	return &rowError{kind: ErrValidation, msg: msg}
}

func invariantError(msg string) error {
	return &rowError{kind: ErrInvariant, msg: msg}
}
