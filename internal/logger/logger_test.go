package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rrens/taskchat/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestSetup_WritesRotatingFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	file := filepath.Join(t.TempDir(), "taskchat.log")
	closer, err := Setup(config.LoggingConfig{
		Level:        "info",
		Format:       "json",
		File:         file,
		MaxAge:       24 * time.Hour,
		RotationTime: 24 * time.Hour,
	}, true)
	require.NoError(t, err)

	log.Info().Str("component", "test").Msg("hello from test")
	require.NoError(t, closer.Close())

	matches, err := filepath.Glob(file + ".*")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}
