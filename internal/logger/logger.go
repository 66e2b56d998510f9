package logger

import (
	"context"
	"os"
	"strings"

	"github.com/metawedding/wedding-api/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until InitLogger runs,
// so packages can log from init paths and tests without setup.
var Log = zap.NewNop()

// serviceName tags every entry written by this binary.
const serviceName = "wedding-api"

// LoggerConfig selects level and output format.
type LoggerConfig struct {
	Level       string `json:"level"`
	Stage       string `json:"stage"`
	EnableJSON  bool   `json:"enable_json"`
	EnableColor bool   `json:"enable_color"`
}

// InitLogger configures Log for stage: JSON in prod, coloured console
// elsewhere. LOG_LEVEL overrides the default info level.
func InitLogger(stage string) {
	InitLoggerWithConfig(LoggerConfig{
		Level:       getEnvWithDefault("LOG_LEVEL", "info"),
		Stage:       stage,
		EnableJSON:  stage == constants.ProdEnvironment,
		EnableColor: stage != constants.ProdEnvironment,
	})
}

// InitLoggerWithConfig replaces Log. A logger that cannot be built is a
// startup bug, so it panics.
func InitLoggerWithConfig(cfg LoggerConfig) {
	l, err := New(cfg)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = l
}

// New builds a logger for cfg without touching Log.
func New(cfg LoggerConfig) (*zap.Logger, error) {
	return zapConfig(cfg).Build()
}

func zapConfig(cfg LoggerConfig) zap.Config {
	level := ParseLevel(cfg.Level)
	prod := cfg.Stage == constants.ProdEnvironment

	var zc zap.Config
	if prod || cfg.EnableJSON {
		// CloudWatch ingests one JSON object per line
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.MessageKey = "message"
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if cfg.EnableColor {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.InitialFields = map[string]interface{}{
		"service": serviceName,
		"stage":   cfg.Stage,
	}
	// stack traces on every prod warning drown the tx logs
	zc.DisableStacktrace = prod && level > zapcore.DebugLevel
	return zc
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Info, Error, Debug, Warn and Fatal log through Log.

func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Fatal exits the process after logging.
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

type correlationKey struct{}

// WithCorrelationID returns ctx carrying a request's correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// FromContext annotates base with ctx's correlation id when there is one.
func FromContext(ctx context.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		base = Log
	}
	if id := CorrelationID(ctx); id != "" {
		return base.With(zap.String("correlation_id", id))
	}
	return base
}

// With returns Log annotated with fields.
func With(fields ...zapcore.Field) *zap.Logger {
	return Log.With(fields...)
}

// Sync flushes Log. Call it before the process exits.
func Sync() error {
	return Log.Sync()
}
