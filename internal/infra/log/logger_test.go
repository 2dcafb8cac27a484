package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"wayfinder/config"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONCarriesServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "staging"
	cfg.Env.ServiceName = "wayfinder"
	cfg.Env.Log.Level = "warn"

	var out bytes.Buffer
	logger, err := newLogger(cfg, &out)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("Primary routing failed", slog.String("kind", "RateLimited"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "Primary routing failed", record["msg"])
	assert.Equal(t, "wayfinder", record["service"])
	assert.Equal(t, "staging", record["env"])
	assert.Equal(t, "RateLimited", record["kind"])
	assert.NotContains(t, record, "source")
}

func TestNewLogger_DebugAddsSource(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.Env.Log.Level = "debug"

	var out bytes.Buffer
	logger, err := newLogger(cfg, &out)
	require.NoError(t, err)

	logger.Debug("tick")

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Contains(t, record, "source")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
