package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: "INFO", want: zapcore.InfoLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "fatal", want: zapcore.FatalLevel},
		{in: "bogus", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	InitLogger("test")
	require.NotNil(t, Log)
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))

	InitLoggerWithConfig(LoggerConfig{Level: "warn", Stage: "prod", EnableJSON: true})
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))
}

func TestZapConfig(t *testing.T) {
	tests := []struct {
		name           string
		cfg            LoggerConfig
		wantEncoding   string
		wantStacktrace bool
	}{
		{name: "prod", cfg: LoggerConfig{Level: "info", Stage: "prod"}, wantEncoding: "json", wantStacktrace: false},
		{name: "prod debug keeps stacktraces", cfg: LoggerConfig{Level: "debug", Stage: "prod"}, wantEncoding: "json", wantStacktrace: true},
		{name: "dev console", cfg: LoggerConfig{Level: "info", Stage: "dev", EnableColor: true}, wantEncoding: "console", wantStacktrace: true},
		{name: "json outside prod", cfg: LoggerConfig{Level: "info", Stage: "dev", EnableJSON: true}, wantEncoding: "json", wantStacktrace: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zc := zapConfig(tt.cfg)
			assert.Equal(t, tt.wantEncoding, zc.Encoding)
			assert.Equal(t, !tt.wantStacktrace, zc.DisableStacktrace)
			assert.Equal(t, "wedding-api", zc.InitialFields["service"])
			assert.Equal(t, tt.cfg.Stage, zc.InitialFields["stage"])

			l, err := New(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	FromContext(context.Background(), base).Info("no id")
	FromContext(WithCorrelationID(context.Background(), "corr-42"), base).Info("with id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].ContextMap())
	assert.Equal(t, "corr-42", entries[1].ContextMap()["correlation_id"])

	assert.Equal(t, "", CorrelationID(context.Background()))
	assert.Equal(t, "corr-42", CorrelationID(WithCorrelationID(context.Background(), "corr-42")))
}
