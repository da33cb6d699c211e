package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept", logger.Pattern("zip"))
		entry := decode(t, buf)
		assert.Equal(t, "zip", entry["pattern"])
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts values from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("request_id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("request_id", ctxKey),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "req-42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "req-42", decode(t, buf)["request_id"])
	})

	t.Run("custom extractor", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return logger.Field("email"), true
			}),
		)
		log.InfoContext(context.Background(), "msg")
		assert.Equal(t, "email", decode(t, buf)["field"])
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		wantEnv  string
		jsonOut  bool
		debugOut bool
	}{
		{env: "production", wantEnv: "production", jsonOut: true},
		{env: "prod", wantEnv: "production", jsonOut: true},
		{env: "staging", wantEnv: "staging", jsonOut: true},
		{env: "development", wantEnv: "development", debugOut: true},
		{env: "", wantEnv: "development", debugOut: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(tt.env, "fieldcheck"))
			log.Debug("debug line")
			if tt.debugOut {
				assert.Contains(t, buf.String(), "debug line")
				assert.Contains(t, buf.String(), "env="+tt.wantEnv)
				assert.Contains(t, buf.String(), "service=fieldcheck")
				return
			}
			assert.Empty(t, buf.String())
			log.Info("info line")
			entry := decode(t, buf)
			assert.Equal(t, tt.wantEnv, entry["env"])
			assert.Equal(t, "fieldcheck", entry["service"])
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, ok := logger.ParseLevel("WARN")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, ok = logger.ParseLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, ok = logger.ParseLevel("verbose")
	assert.False(t, ok)
}

func TestWithLevelName(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("error"), logger.WithLevelName("bogus"))
	log.Warn("dropped")
	assert.Empty(t, buf.String())
}

func TestNop(t *testing.T) {
	log := logger.Nop()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.With("a", 1).WithGroup("g").Error("nothing")
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
