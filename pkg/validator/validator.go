package validator

import (
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/dmitrymomot/normval/pkg/logger"
)

// Check names reported to the logger.
const (
	checkRequired  = "required"
	checkMinLength = "min_length"
	checkMaxLength = "max_length"
	checkAtLeast   = "at_least"
	checkTest      = "test"
)

// Validator accumulates error messages for a single input value.
//
// Every chainable method evaluates its condition and returns the same
// Validator, so a whole rule set reads as one expression. A Validator is
// owned by one goroutine; build a new one per value.
type Validator struct {
	value   string
	present bool
	errors  []string

	// matches holds the result of the last Matches call until AtLeast consumes it.
	matches  int
	counting bool

	log *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger reports every recorded error at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// New wraps value. The empty string counts as absent: length and match
// checks skip it and only Required reports it.
func New(value string, opts ...Option) *Validator {
	v := &Validator{
		value:   value,
		present: value != "",
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// FromPtr is New for optional inputs; a nil pointer is absent.
func FromPtr(value *string, opts ...Option) *Validator {
	if value == nil {
		return New("", opts...)
	}
	return New(*value, opts...)
}

// Value returns the wrapped input.
func (v *Validator) Value() string {
	return v.value
}

// Required records msg if the input is absent.
func (v *Validator) Required(msg string) *Validator {
	v.record(checkRequired, !v.present, msg)
	return v
}

// MinLength records msg if the input is present and shorter than n runes.
func (v *Validator) MinLength(n int, msg string) *Validator {
	if v.present {
		v.record(checkMinLength, v.length() < n, msg)
	}
	return v
}

// MaxLength records msg if the input is present and longer than n runes.
func (v *Validator) MaxLength(n int, msg string) *Validator {
	if v.present {
		v.record(checkMaxLength, v.length() > n, msg)
	}
	return v
}

// Matches counts how many criteria accept the input. It records nothing by
// itself; follow it with AtLeast. Absent input leaves the counter as it was.
func (v *Validator) Matches(criteria ...Criterion) *Validator {
	if !v.present {
		return v
	}

	v.matches = 0
	v.counting = true
	for _, c := range criteria {
		if c != nil && c.Match(v.value) {
			v.matches++
		}
	}
	return v
}

// AtLeast records msg if fewer than n criteria of the preceding Matches
// call succeeded, then clears the counter. Without a pending Matches it is
// a no-op.
func (v *Validator) AtLeast(n int, msg string) *Validator {
	if !v.counting {
		return v
	}

	v.record(checkAtLeast, v.matches < n, msg)
	v.matches = 0
	v.counting = false
	return v
}

// Test is the generic check: failed should be true when the input is wrong.
// With a message the failure is recorded and Test returns false; with an
// empty message nothing is recorded and Test returns failed so the caller
// can act on it directly.
func (v *Validator) Test(failed bool, msg string) bool {
	return v.record(checkTest, failed, msg)
}

// Errors returns a copy of the recorded messages in check order.
func (v *Validator) Errors() []string {
	return slices.Clone(v.errors)
}

// Valid reports whether no error has been recorded.
func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Err returns the recorded messages as Errors, or nil.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return Errors(v.Errors())
}

// record appends msg when failed. It returns true only for an unrecorded
// failure (failed with no message).
func (v *Validator) record(check string, failed bool, msg string) bool {
	if !failed {
		return false
	}
	if msg == "" {
		return true
	}

	v.errors = append(v.errors, msg)
	v.log.Debug("validation check failed", logger.Check(check), logger.Message(msg))
	return false
}

func (v *Validator) length() int {
	return utf8.RuneCountInString(v.value)
}
