package normalizer

import "errors"

var (
	// ErrLoadingEnvFile is returned when an explicitly requested dotenv file cannot be loaded.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidPhoneStyle is returned when the configured phone style is unknown.
	ErrInvalidPhoneStyle = errors.New("invalid phone style")
)
