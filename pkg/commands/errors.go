package commands

import (
	"errors"
	"fmt"

	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/fields"
	"github.com/entrhq/assistant/pkg/notes"
)

var (
	// ErrArguments reports missing or superfluous arguments.
	ErrArguments = errors.New("incorrect arguments")

	// ErrInvalidID reports a note ID that is not an integer.
	ErrInvalidID = errors.New("note id must be an integer")
)

const msgArguments = "Enter correct arguments."

// argumentError carries a command-specific hint for ErrArguments.
type argumentError struct {
	hint string
}

func (e *argumentError) Error() string { return e.hint }
func (e *argumentError) Unwrap() error { return ErrArguments }

func needArguments(hint string) error {
	return &argumentError{hint: hint}
}

// Present converts a handler error into the line shown to the user. The bool
// is false for errors outside the known taxonomy, which callers should log.
func Present(err error) (string, bool) {
	var (
		validation *fields.ValidationError
		args       *argumentError
		noteErr    *notes.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		return validation.Message, true
	case errors.As(err, &args):
		return args.hint, true
	case errors.Is(err, ErrArguments):
		return msgArguments, true
	case errors.Is(err, ErrInvalidID):
		return "Note ID must be an integer.", true
	case errors.Is(err, contacts.ErrNotFound):
		return "No such contact found.", true
	case errors.Is(err, contacts.ErrPhoneNotFound):
		return "Phone number not found.", true
	case errors.As(err, &noteErr):
		return noteErr.Error(), true
	case errors.Is(err, notes.ErrNotFound):
		return "Note not found.", true
	default:
		return fmt.Sprintf("Unexpected error: %v", err), false
	}
}
