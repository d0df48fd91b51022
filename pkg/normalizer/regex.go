package normalizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// ASCII only: \D in RE2 is [^0-9]
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Applied after upper-casing
	nonPostalCharRegex = regexp.MustCompile(`[^A-Z0-9]`)
)
