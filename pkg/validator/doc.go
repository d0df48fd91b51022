// Package validator accumulates error messages for a single string through a
// chain of checks.
//
//	errs := validator.New(form.Password).
//	    Required("password is required").
//	    MinLength(8, "password must be at least 8 characters").
//	    MaxLength(64, "password must be at most 64 characters").
//	    Matches(
//	        validator.MustPattern(`[a-z]`),
//	        validator.MustPattern(`[A-Z]`),
//	        validator.MustPattern(`\d`),
//	    ).
//	    AtLeast(2, "password needs two of: lower case, upper case, digit").
//	    Errors()
//
// # Presence
//
// The empty string (or a nil pointer with FromPtr) is absent. Only Required
// reports an absent value; MinLength, MaxLength and Matches skip it, so an
// optional field is validated only when filled in.
//
// # Match counting
//
// Matches evaluates every criterion and stores how many accepted the input.
// The next AtLeast compares that count with its minimum, records its message
// when the count is too low and clears the counter. AtLeast without a pending
// Matches does nothing. Criteria are Equals (exact string), Pattern /
// MustPattern (regular expression search), Func, Tag (go-playground/validator
// tags) and the canned URL, Email and PostalCode formats. Additional named
// patterns can be loaded from YAML with ParseFormats.
//
// # Errors
//
// Checks never stop the chain. Errors returns the messages in the order the
// checks ran; Err wraps them in an Errors value matching ErrValidationFailed.
// Test is the low-level primitive: with an empty message it records nothing
// and returns the failure to the caller instead.
//
// A Validator is a single-owner builder and is not safe for concurrent use.
// Package-level criteria are read-only and can be shared freely.
package validator
