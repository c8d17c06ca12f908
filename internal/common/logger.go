package common

import (
	"os"

	"github.com/sirupsen/logrus"

	"socialnet/internal/config"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// Tests and other non-main entry points still need a usable logger.
func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	Log = logger.WithField("service", "socialnet")
}

// InitLogger reconfigures the global logger from config. Call once at startup.
func InitLogger(cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log = logger.WithField("service", "socialnet")
}
