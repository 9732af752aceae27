package common

import (
	"os"

	"github.com/sirupsen/logrus"

	"pixgram/internal/config"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// init keeps Log usable from tests, where InitLogger is never called
// from a main function.
func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	Log = logger.WithField("service", "pixgram")
}

func InitLogger(cfg *config.LoggingConfig, environment string) {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	if cfg.Format == "json" || environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	Log = logger.WithFields(logrus.Fields{
		"service":        "pixgram",
		"is_development": environment != "production",
	})
}
