package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the service logger and makes it the logrus standard
// logger, so package-level logrus calls share its format and level.
func SetupLogging(level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	formatter := &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}

	logger := &logrus.Logger{
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Out:       os.Stdout,
		Level:     parsed,
	}

	logrus.SetFormatter(formatter)
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(parsed)

	return logger
}
