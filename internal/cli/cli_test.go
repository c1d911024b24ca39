package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional spec path", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, done, err := Parse([]string{"specs/"}, &buf)
		require.NoError(t, err)
		require.False(t, done)
		assert.Equal(t, "specs/", cfg.SpecPath)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("spec flag wins over positional", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, _, err := Parse([]string{"--spec", "from-flag.hcl", "positional.hcl"}, &buf)
		require.NoError(t, err)
		assert.Equal(t, "from-flag.hcl", cfg.SpecPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, _, err := Parse([]string{"-s", "short.hcl"}, &buf)
		require.NoError(t, err)
		assert.Equal(t, "short.hcl", cfg.SpecPath)
	})

	t.Run("execution flags map onto the config", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, _, err := Parse([]string{
			"--sequential", "--stop-on-fail", "--stop-on-skip",
			"--workers", "8", "--log-format", "json", "--log-level", "debug",
			"suite.hcl",
		}, &buf)
		require.NoError(t, err)
		assert.True(t, cfg.Sequential)
		assert.False(t, cfg.Random)
		assert.True(t, cfg.StopOnFail)
		assert.True(t, cfg.StopOnSkip)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, done, err := Parse(nil, &buf)
		require.NoError(t, err)
		assert.True(t, done)
		assert.Nil(t, cfg)
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, done, err := Parse([]string{"--help"}, &buf)
		require.NoError(t, err)
		assert.True(t, done)
		assert.Nil(t, cfg)
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := Parse([]string{"--bogus"}, &buf)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log format", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := Parse([]string{"--log-format", "xml", "suite.hcl"}, &buf)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "log-format")
	})

	t.Run("invalid log level", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := Parse([]string{"--log-level", "loud", "suite.hcl"}, &buf)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "log-level")
	})

	t.Run("sequential and random are mutually exclusive", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := Parse([]string{"--sequential", "--random", "suite.hcl"}, &buf)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "mutually exclusive")
	})
}
