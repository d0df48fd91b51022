package logger

import "log/slog"

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the normalizer operation under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Check records the validator check name under the key "check".
func Check(name string) slog.Attr {
	return slog.String("check", name)
}

// Message records a validation message under the key "message".
// If msg is empty, it returns an empty Attr.
func Message(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("message", msg)
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
