package validator

import (
	"errors"
	"fmt"
	"maps"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Building blocks of the URL expression (RFC 3986 with IRI characters).
const (
	ucsChars    = `\x{00A0}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}`
	unreserved  = `[a-z0-9\-._~` + ucsChars + `]`
	pctEncoded  = `%[\da-f]{2}`
	subDelims   = `[!$&'()*+,;=]`
	pchar       = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|[:@])`
	decOctet    = `(?:\d|[1-9]\d|1\d\d|2[0-4]\d|25[0-5])`
	alnumUCS    = `[a-z0-9` + ucsChars + `]`
	alphaUCS    = `[a-z` + ucsChars + `]`
	domainLabel = `(?:` + alnumUCS + `|` + alnumUCS + unreserved + `*` + alnumUCS + `)`
	topLabel    = `(?:` + alphaUCS + `|` + alphaUCS + unreserved + `*` + alphaUCS + `)`

	urlExpr = `(?i)^(?:https?|ftp)://` +
		`(?:(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|:)*@)?` +
		`(?:` + decOctet + `(?:\.` + decOctet + `){3}` + `|(?:` + domainLabel + `\.)+` + topLabel + `\.?)` +
		`(?::\d*)?` +
		`(?:/(?:` + pchar + `+(?:/` + pchar + `*)*)?)?` +
		`(?:\?(?:` + pchar + `|[\x{E000}-\x{F8FF}/?])*)?` +
		`(?:#(?:` + pchar + `|[/?])*)?$`

	// Interpreted string: the local-part class contains a backtick.
	emailLocalChars = "[\\w!#$%&'*+\\-/=?^`{|}~]"
	emailExpr       = `(?i)^(?:` + emailLocalChars + `+\.)*` + emailLocalChars + `+@` +
		`(?:(?:(?:[a-z0-9][a-z0-9\-]{0,62}[a-z0-9]|[a-z])\.)+[a-z]{2,6}` +
		`|(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?)$`

	postalCodeExpr = `(?i)^\s*[a-z]\d[a-z] ?\d[a-z]\d\s*$`
)

// Names of the built-in formats.
const (
	FormatURL        = "url"
	FormatEmail      = "email"
	FormatPostalCode = "postal-code"
)

var (
	urlRegex        = regexp.MustCompile(urlExpr)
	emailRegex      = regexp.MustCompile(emailExpr)
	postalCodeRegex = regexp.MustCompile(postalCodeExpr)
)

// Canned criteria for values that are tedious to match by hand.
var (
	// URL matches absolute http, https and ftp URLs.
	URL = Pattern(urlRegex)
	// Email matches e-mail addresses with a DNS or dotted-quad domain.
	Email = Pattern(emailRegex)
	// PostalCode matches Canadian postal codes such as "K1A 0B1" or " k1a0b1 ".
	PostalCode = Pattern(postalCodeRegex)
)

// FormatSet is a catalogue of named patterns.
type FormatSet map[string]*regexp.Regexp

// BuiltinFormats returns a fresh catalogue holding url, email and postal-code.
func BuiltinFormats() FormatSet {
	return FormatSet{
		FormatURL:        urlRegex,
		FormatEmail:      emailRegex,
		FormatPostalCode: postalCodeRegex,
	}
}

// ParseFormats reads a YAML mapping of format names to regular expressions:
//
//	zip: '^\d{5}(-\d{4})?$'
//	sku: '^[A-Z]{3}-\d{4}$'
func ParseFormats(data []byte) (FormatSet, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidFormats, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no formats defined", ErrInvalidFormats)
	}

	set := make(FormatSet, len(raw))
	for name, expr := range raw {
		if name == "" || expr == "" {
			return nil, fmt.Errorf("%w: empty name or pattern", ErrInvalidFormats)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: format %q: %w", ErrInvalidFormats, name, err)
		}
		set[name] = re
	}
	return set, nil
}

// Merge returns a new set with the formats of other added to s; other wins
// on name clashes.
func (s FormatSet) Merge(other FormatSet) FormatSet {
	out := make(FormatSet, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// Criterion returns the named format as a Criterion.
func (s FormatSet) Criterion(name string) (Criterion, bool) {
	re, ok := s[name]
	if !ok {
		return nil, false
	}
	return Pattern(re), true
}

// Criteria returns the named formats as criteria for Matches, skipping
// unknown names.
func (s FormatSet) Criteria(names ...string) []Criterion {
	out := make([]Criterion, 0, len(names))
	for _, name := range names {
		if c, ok := s.Criterion(name); ok {
			out = append(out, c)
		}
	}
	return out
}
