package extraction

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrMissingRequiredField reports a required selector that matched nothing.
	ErrMissingRequiredField = crerr.New("missing required field")
	// ErrMalformedField reports a value that was present but failed conversion.
	ErrMalformedField = crerr.New("malformed field")
	// ErrParse reports a document that could not be read as its declared format.
	ErrParse = crerr.New("document parse failed")
	// ErrEntityNotFound reports a document without the entity's root container.
	ErrEntityNotFound = crerr.New("entity not found")
)

// FieldError carries the field a resolution failed on. It unwraps to
// ErrMissingRequiredField or ErrMalformedField.
type FieldError struct {
	Kind  error
	Field string
	Raw   string
}

func (e *FieldError) Error() string {
	if e.Kind == ErrMissingRequiredField {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("malformed field %q: %q", e.Field, e.Raw)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func missingField(field string) error {
	return &FieldError{Kind: ErrMissingRequiredField, Field: field}
}

func malformedField(field, raw string) error {
	return &FieldError{Kind: ErrMalformedField, Field: field, Raw: raw}
}

func notFound(entity, root string) error {
	return crerr.Wrapf(ErrEntityNotFound, "%s: %s not present", entity, root)
}

func parseFailure(format string, cause error) error {
	if cause == nil {
		return crerr.Wrapf(ErrParse, "%s", format)
	}
	return crerr.Wrapf(ErrParse, "%s: %v", format, cause)
}
