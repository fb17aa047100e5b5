package logger_test

import (
	"aircon/config"
	"aircon/shared/constant"
	"aircon/shared/logger"
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// keepGlobals restores the package-level zerolog state touched by a test.
func keepGlobals(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()
	format := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = format
	})
}

func TestInitLogger(t *testing.T) {
	keepGlobals(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction

	logger.InitLogger(cfg)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestWriter(t *testing.T) {
	tests := []struct {
		env      string
		wantJSON bool
	}{
		{env: constant.ServerEnvProduction, wantJSON: true},
		{env: constant.ServerEnvDevelopment},
		{env: ""},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env

			var buf bytes.Buffer

			l := zerolog.New(logger.Writer(cfg, &buf))
			l.Info().Str("submission_id", "abc").Msg("submission received")

			assert.Equal(t, tt.wantJSON, bytes.HasPrefix(buf.Bytes(), []byte("{")), buf.String())
			assert.Contains(t, buf.String(), "submission received")
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	keepGlobals(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("insert submission: connection refused"))

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "insert submission: connection refused")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestSetLogLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"verbose":  zerolog.TraceLevel,
		"":         zerolog.NoLevel,
	}

	for level, want := range tests {
		t.Run("level="+level, func(t *testing.T) {
			keepGlobals(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = level

			logger.SetLogLevel(cfg)

			assert.Equal(t, want, zerolog.GlobalLevel())
		})
	}
}
