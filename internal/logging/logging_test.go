package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"default", "", zerolog.InfoLevel},
		{"debug", "debug", zerolog.DebugLevel},
		{"upper case", "WARN", zerolog.WarnLevel},
		{"trace", "trace", zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := Setup(Options{Level: tt.level, Out: &bytes.Buffer{}})
			require.NoError(t, err)
			defer closer.Close()

			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, closer, err := Setup(Options{Level: "loud"})
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestSetup_JSONToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Setup(Options{Out: &buf})
	require.NoError(t, err)
	defer closer.Close()

	component := Component(logger, "dispatch")
	component.Info().Str("category", "key").Msg("fired")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "dispatch", line["component"])
	assert.Equal(t, "key", line["category"])
	assert.Equal(t, "fired", line["message"])
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "inputmux.log")

	logger, closer, err := Setup(Options{File: path, Discard: true})
	require.NoError(t, err)

	logger.Warn().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestSetup_DiscardWithoutFile(t *testing.T) {
	logger, closer, err := Setup(Options{Discard: true})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
