package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/asyncdemo/async/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init configures the standard logrus logger from cfg.
//
// Logs go to cfg.LogFilePath when set, or to stderr otherwise. If the file
// cannot be opened, Init falls back to stdout and logs a warning.
// The returned Closer releases the log file, if any.
func Init(cfg *config.Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFilePath == "" {
		logrus.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	logFile, err := os.OpenFile(cfg.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		logrus.SetOutput(os.Stdout)
		logrus.WithFields(logrus.Fields{
			"function": "Init",
			"path":     cfg.LogFilePath,
		}).WithError(err).Warn("Failed to open log file, using standard output")
		return nopCloser{}, nil
	}

	logrus.SetOutput(logFile)
	return logFile, nil
}
