package validator

import (
	"fmt"
	"regexp"

	playground "github.com/go-playground/validator/v10"
)

// Criterion decides whether an input matches. Matches counts the criteria
// that accept the input.
type Criterion interface {
	Match(value string) bool
}

// Equals matches inputs exactly equal to the string.
type Equals string

func (e Equals) Match(value string) bool {
	return string(e) == value
}

// Func adapts a plain function to Criterion.
type Func func(value string) bool

func (f Func) Match(value string) bool {
	return f(value)
}

type patternCriterion struct {
	re *regexp.Regexp
}

func (p patternCriterion) Match(value string) bool {
	return p.re.MatchString(value)
}

// Pattern matches inputs in which re finds a match anywhere; anchor the
// expression to match the whole input. A nil re matches nothing.
func Pattern(re *regexp.Regexp) Criterion {
	if re == nil {
		return Func(func(string) bool { return false })
	}
	return patternCriterion{re: re}
}

// MustPattern compiles expr and panics if it is invalid.
// Cache the result for criteria used on every request.
func MustPattern(expr string) Criterion {
	return Pattern(regexp.MustCompile(expr))
}

// tagValidate is safe for concurrent use and caches parsed tags.
var tagValidate = playground.New()

type tagCriterion struct {
	tag string
}

func (t tagCriterion) Match(value string) bool {
	return tagValidate.Var(value, t.tag) == nil
}

// Tag matches inputs accepted by a go-playground/validator tag expression
// such as "e164", "uuid4" or "email,max=64".
// Panics at construction if the tag is not registered.
func Tag(tag string) Criterion {
	func() {
		defer func() {
			if r := recover(); r != nil {
				panic(fmt.Sprintf("validator: invalid tag %q: %v", tag, r))
			}
		}()
		_ = tagValidate.Var("", tag)
	}()
	return tagCriterion{tag: tag}
}
