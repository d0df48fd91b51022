// Package logger provides a small factory around log/slog used by the
// normalizer and validator packages to report what they did with an input.
//
// New builds a *slog.Logger from a set of Option functions:
//
//   - WithLevel sets the minimum level.
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the encoder.
//   - WithOutput redirects the records (stdout by default).
//   - WithAttr / WithComponent attach static attributes.
//
// Components that are not given a logger fall back to Discard, so logging is
// always opt-in.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithComponent("signup"),
//	)
//
//	f := normalizer.NewFormatter(cfg, normalizer.WithLogger(log))
//	v := validator.New(input, validator.WithLogger(log))
//
// Attribute helpers in attr.go (Component, Operation, Check, Message, Error)
// keep key names consistent between packages. Input values are never logged
// by this module because phone numbers and postal codes are personal data.
package logger
