// Package normalizer formats loosely typed phone numbers and postal codes into
// canonical display strings.
//
// Supported formats:
//
//   - NANP phone numbers (North American Numbering Plan): "555-555-5555",
//     optionally with the "1-" country code.
//   - Quebec-style NANP phone numbers: "555 555-5555" / "1 555 555-5555".
//   - Canadian postal codes: "A1A 1A1".
//
// # Error handling
//
// None of the Format helpers returns an error. When the input does not have
// the minimum required shape (fewer than ten digits, or a postal code that is
// not six characters once cleaned) the original input is returned unchanged.
// Callers that need to tell both outcomes apart use the Try variants, which
// return the same string plus an ok flag:
//
//	phone, ok := normalizer.TryFormatNANP(raw, false)
//	if !ok {
//	    // raw is not a NANP number; phone == raw
//	}
//
// # Formatter
//
// Formatter bundles the per-deployment choices (phone style and whether to
// print the country code) loaded from the environment with LoadConfig:
//
//	cfg, err := normalizer.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	f := normalizer.NewFormatter(cfg, normalizer.WithLogger(log))
//	phone := f.Phone("(514) 555-0199") // "514 555-0199" with NORMALIZER_PHONE_STYLE=quebec
//
// All package-level functions are pure and safe for concurrent use. A
// Formatter is immutable once built.
package normalizer
