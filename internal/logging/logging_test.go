package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerbosity(t *testing.T) {
	testCases := map[string]VerbosityLevel{
		"Verbose": Verbose,
		"info":    Info,
		"":        Info,
		"WARNING": Warning,
		"error":   Error,
		"Off":     Off,
	}
	for in, want := range testCases {
		got, err := ParseVerbosity(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseVerbosity("loud")
	assert.Error(t, err)
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Warning)

	logger.Info("hidden")
	logger.Warn("shown", "file", "a.xml")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "file=a.xml")
}

func TestNewLogger_Off(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Off)
	logger.Error("nothing")
	assert.Empty(t, buf.String())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
