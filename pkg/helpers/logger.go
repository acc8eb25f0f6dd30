package helpers

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger
func NewLogger(appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}

// NopLogger discards everything; used where a logger is optional.
func NopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discard{})
	return l
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// LogError Convenience methods to keep a unified logging interface
func LogError(logger logrus.FieldLogger, msg string, err error, fields logrus.Fields) {
	if logger == nil {
		return
	}
	if fields == nil {
		fields = logrus.Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	logger.WithFields(fields).Error(msg)
}

func LogInfo(logger logrus.FieldLogger, msg string, fields logrus.Fields) {
	if logger == nil {
		return
	}
	if fields == nil {
		fields = logrus.Fields{}
	}
	logger.WithFields(fields).Info(msg)
}
