package normalizer

import (
	"log/slog"

	"github.com/dmitrymomot/normval/pkg/logger"
)

// Formatter applies a Config to phone numbers and postal codes.
type Formatter struct {
	cfg Config
	log *slog.Logger
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithLogger sets the logger used to report inputs left unchanged.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) FormatterOption {
	return func(f *Formatter) {
		if l != nil {
			f.log = l
		}
	}
}

// NewFormatter creates a Formatter. An unknown phone style falls back to
// PhoneStyleNANP; use Config.Validate or LoadConfig to reject it instead.
func NewFormatter(cfg Config, opts ...FormatterOption) *Formatter {
	if !cfg.PhoneStyle.Valid() {
		cfg.PhoneStyle = PhoneStyleNANP
	}

	f := &Formatter{
		cfg: cfg,
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns the effective configuration.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Phone formats input in the configured style.
func (f *Formatter) Phone(input string) string {
	var (
		out string
		ok  bool
	)
	switch f.cfg.PhoneStyle {
	case PhoneStyleQuebec:
		out, ok = TryFormatNANPQuebec(input, f.cfg.CountryCode)
	default:
		out, ok = TryFormatNANP(input, f.cfg.CountryCode)
	}

	if !ok {
		f.passThrough("phone_" + string(f.cfg.PhoneStyle))
	}
	return out
}

// PostalCode formats a Canadian postal code.
func (f *Formatter) PostalCode(input string) string {
	out, ok := TryFormatCAPostalCode(input)
	if !ok {
		f.passThrough("ca_postal_code")
	}
	return out
}

func (f *Formatter) passThrough(op string) {
	f.log.Debug("input left unchanged", logger.Operation(op))
}
