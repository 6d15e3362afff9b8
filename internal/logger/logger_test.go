package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asyncdemo/async/internal/config"
)

// restoreLogrus puts the standard logger back the way it was when t ends.
func restoreLogrus(t *testing.T) {
	t.Helper()

	std := logrus.StandardLogger()
	out, level, formatter := std.Out, std.GetLevel(), std.Formatter

	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
	})
}

func TestInitStderr(t *testing.T) {
	restoreLogrus(t)

	cfg := config.Default()
	cfg.LogLevel = "warn"

	closer, err := Init(cfg)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.Same(t, os.Stderr, logrus.StandardLogger().Out)
}

func TestInitInvalidLevel(t *testing.T) {
	restoreLogrus(t)

	cfg := config.Default()
	cfg.LogLevel = "loud"

	closer, err := Init(cfg)
	assert.Nil(t, closer)
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestInitFile(t *testing.T) {
	restoreLogrus(t)

	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFilePath = filepath.Join(t.TempDir(), "asyncdemo.log")

	closer, err := Init(cfg)
	require.NoError(t, err)

	logrus.WithField("scenario", "user").Debug("Scenario started")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(cfg.LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Scenario started")
	assert.Contains(t, string(b), "scenario=user")
}

func TestInitFileFallback(t *testing.T) {
	restoreLogrus(t)

	cfg := config.Default()
	cfg.LogFilePath = filepath.Join(t.TempDir(), "missing", "asyncdemo.log")

	closer, err := Init(cfg)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	assert.Same(t, os.Stdout, logrus.StandardLogger().Out)
}
