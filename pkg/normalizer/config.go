package normalizer

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable read by LoadConfig.
const EnvPrefix = "NORMALIZER_"

// PhoneStyle selects how Formatter.Phone prints a number.
type PhoneStyle string

const (
	// PhoneStyleNANP prints 555-555-5555.
	PhoneStyleNANP PhoneStyle = "nanp"
	// PhoneStyleQuebec prints 555 555-5555.
	PhoneStyleQuebec PhoneStyle = "quebec"
)

// Valid reports whether s is a known style.
func (s PhoneStyle) Valid() bool {
	switch s {
	case PhoneStyleNANP, PhoneStyleQuebec:
		return true
	default:
		return false
	}
}

// Config holds the formatting choices of a deployment.
//
//	NORMALIZER_NANP_COUNTRY_CODE=true
//	NORMALIZER_PHONE_STYLE=quebec
type Config struct {
	CountryCode bool       `env:"NANP_COUNTRY_CODE" envDefault:"false"`
	PhoneStyle  PhoneStyle `env:"PHONE_STYLE" envDefault:"nanp"`
}

// DefaultConfig returns hyphenated NANP formatting without country code.
func DefaultConfig() Config {
	return Config{PhoneStyle: PhoneStyleNANP}
}

// Validate checks the config values.
func (c Config) Validate() error {
	if !c.PhoneStyle.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPhoneStyle, c.PhoneStyle)
	}
	return nil
}

// LoadConfig reads Config from NORMALIZER_* environment variables.
//
// When files are given they are loaded with godotenv first; a missing file is
// an error. Without files the default .env is loaded if present. Variables
// already set in the process environment take precedence over file values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env is optional
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
