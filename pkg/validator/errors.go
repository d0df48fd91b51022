package validator

import (
	"errors"
	"strings"
)

var (
	// ErrValidationFailed matches every Errors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormats is returned when a format catalogue cannot be parsed.
	ErrInvalidFormats = errors.New("invalid format catalogue")
)

// Errors is the list of messages recorded by a Validator.
type Errors []string

func (e Errors) Error() string {
	if len(e) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e, "; ")
}

// Is reports ErrValidationFailed as a match.
func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether msg was recorded.
func (e Errors) Has(msg string) bool {
	for _, m := range e {
		if m == msg {
			return true
		}
	}
	return false
}

// ExtractErrors returns the Errors wrapped in err, or nil.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
