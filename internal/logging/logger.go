package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger writing to stderr. format is "console" or
// "json".
func New(level string, format string) (*zap.Logger, error) {
	parsedLevel, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	prodConfig := zap.NewProductionConfig()
	prodConfig.Level = zap.NewAtomicLevelAt(parsedLevel)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		prodConfig.Encoding = "console"
	case "json":
		prodConfig.Encoding = "json"
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	prodConfig.DisableStacktrace = true
	return prodConfig.Build()
}
