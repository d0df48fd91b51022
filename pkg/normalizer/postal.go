package normalizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const caPostalCodeLen = 6

// FormatCAPostalCode enforces the Canadian display format (A1A 1A1);
// preserves the original input when it does not clean up to six characters.
func FormatCAPostalCode(input string) string {
	out, _ := TryFormatCAPostalCode(input)
	return out
}

// TryFormatCAPostalCode is FormatCAPostalCode with an ok flag.
// Only the length is checked: "XXX XXX" is accepted, use
// validator.PostalCode to check the letter/digit alternation.
func TryFormatCAPostalCode(input string) (string, bool) {
	// A Caser is stateful and must not be shared between goroutines.
	upper := cases.Upper(language.Und).String(input)
	code := nonPostalCharRegex.ReplaceAllString(upper, "")

	if len(code) != caPostalCodeLen {
		return input, false
	}

	return code[0:3] + " " + code[3:6], true
}
