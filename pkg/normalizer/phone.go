package normalizer

import "strings"

const (
	nanpDigits      = 10
	nanpCountryCode = "1"
)

// NANPDigits extracts the first ten digits of a NANP phone number.
// Digits past the tenth (an extension, for example) are discarded.
// ok is false when the input holds fewer than ten digits.
func NANPDigits(input string) (string, bool) {
	digits := nonDigitRegex.ReplaceAllString(input, "")
	if len(digits) < nanpDigits {
		return "", false
	}
	return digits[:nanpDigits], true
}

// FormatNANP formats a phone number as ###-###-#### (or 1-###-###-####
// with includeCountryCode); preserves the original input if it has fewer
// than ten digits.
func FormatNANP(input string, includeCountryCode bool) string {
	out, _ := TryFormatNANP(input, includeCountryCode)
	return out
}

// TryFormatNANP is FormatNANP that also reports whether the input was a
// NANP number. On failure the original input is returned with ok == false.
func TryFormatNANP(input string, includeCountryCode bool) (string, bool) {
	digits, ok := NANPDigits(input)
	if !ok {
		return input, false
	}

	groups := make([]string, 0, 4)
	if includeCountryCode {
		groups = append(groups, nanpCountryCode)
	}
	groups = append(groups, digits[0:3], digits[3:6], digits[6:10])

	return strings.Join(groups, "-"), true
}

// FormatNANPQuebec formats a phone number the way Quebec writes them:
// ### ###-#### or 1 ### ###-####. Input with fewer than ten digits is
// returned untouched.
func FormatNANPQuebec(input string, includeCountryCode bool) string {
	out, _ := TryFormatNANPQuebec(input, includeCountryCode)
	return out
}

// TryFormatNANPQuebec is FormatNANPQuebec with an ok flag.
func TryFormatNANPQuebec(input string, includeCountryCode bool) (string, bool) {
	out, ok := TryFormatNANP(input, includeCountryCode)
	if !ok {
		return input, false
	}

	// Only the separators before the line number become spaces.
	out = strings.Replace(out, "-", " ", 1)
	if includeCountryCode {
		out = strings.Replace(out, "-", " ", 1)
	}

	return out, true
}
