package logging_test

import (
	"bytes"
	"testing"

	"github.com/hbjs97/envperm/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, logging.LevelForVerbosity(0))
	assert.Equal(t, zerolog.InfoLevel, logging.LevelForVerbosity(1))
	assert.Equal(t, zerolog.DebugLevel, logging.LevelForVerbosity(2))
	assert.Equal(t, zerolog.TraceLevel, logging.LevelForVerbosity(3))
	assert.Equal(t, zerolog.TraceLevel, logging.LevelForVerbosity(7))
}

func TestParseLevel_EmptyIsWarn(t *testing.T) {
	lvl, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)
}

func TestParseLevel_Named(t *testing.T) {
	lvl, err := logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup_WritesComponentField(t *testing.T) {
	buf := new(bytes.Buffer)
	logging.Setup(buf, zerolog.InfoLevel)
	t.Cleanup(logging.Disable)

	logger := logging.GetLogger("profile")
	logger.Info().Msg("resolved")

	assert.Contains(t, buf.String(), "resolved")
	assert.Contains(t, buf.String(), "profile")
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logging.Setup(buf, zerolog.WarnLevel)
	t.Cleanup(logging.Disable)

	logger := logging.GetLogger("profile")
	logger.Info().Msg("hidden")

	assert.NotContains(t, buf.String(), "hidden")
}

func TestGetLogger_SilentBeforeSetup(t *testing.T) {
	logging.Disable()
	logger := logging.GetLogger("profile")
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
