package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Kavirubc/playlist-relay/internal/config"
	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. Logs never go to stdout.
func newLogger(cfg *config.LogConfig, out io.Writer, verbose, quiet bool) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = logrus.DebugLevel
	} else if quiet {
		level = logrus.ErrorLevel
	}
	logger.SetLevel(level)

	closeFn := func() {}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(io.MultiWriter(out, f))
		closeFn = func() { _ = f.Close() }
	}

	return logger, closeFn, nil
}
