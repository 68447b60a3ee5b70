package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

// GetLogger returns the process-wide logger.
func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	logg.SetLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// ParseLevel maps LOG_LEVEL to a logrus level, defaulting to info.
func ParseLevel(raw string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// LogError logs err with the component and operation it happened in.
func LogError(logger *logrus.Logger, module string, funcName string, data logrus.Fields, err error) {
	fields := logrus.Fields{
		"module":   module,
		"funcName": funcName,
	}
	for k, v := range data {
		fields[k] = v
	}
	logger.WithFields(fields).Error(err.Error())
}
