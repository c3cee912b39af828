package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/fontify/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	logger := logging.New(cfg)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "engine")
	ctx = logging.WithURL(ctx, "https://example.com/")
	logging.FromContext(ctx).Info().Msg("applied")

	line := buf.String()
	require.NotEmpty(t, line)
	assert.Equal(t, "engine", gjson.Get(line, "component").String())
	assert.Equal(t, "https://example.com/", gjson.Get(line, "url").String())
	assert.Equal(t, "applied", gjson.Get(line, "message").String())
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	logger := logging.FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
