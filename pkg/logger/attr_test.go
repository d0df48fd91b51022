package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/normval/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestMessage(t *testing.T) {
	attr := logger.Message("too short")
	assert.Equal(t, "message", attr.Key)
	assert.Equal(t, "too short", attr.Value.String())

	assert.True(t, logger.Message("").Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{name: "component", attr: logger.Component("signup"), key: "component", want: "signup"},
		{name: "operation", attr: logger.Operation("nanp"), key: "operation", want: "nanp"},
		{name: "check", attr: logger.Check("min_length"), key: "check", want: "min_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}
