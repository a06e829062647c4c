package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

func LogLevel() (logrus.Level, error) {
	levelStr, ok := os.LookupEnv("MINES_LOG_LEVEL")
	if !ok {
		if Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return level, fmt.Errorf("unable to parse MINES_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func LogFile() (string, bool) {
	return os.LookupEnv("MINES_LOG_FILE")
}

// NewLogger logs to stderr, or only to a rotated JSON file when
// MINES_LOG_FILE is set so the board on stdout stays readable.
func NewLogger() (*logrus.Logger, error) {
	level, err := LogLevel()
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	path, ok := LogFile()
	if !ok {
		return logger, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	logger.AddHook(hook)
	logger.SetOutput(io.Discard)

	return logger, nil
}
