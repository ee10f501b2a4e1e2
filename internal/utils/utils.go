package utils

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
)

var Log = logrus.New()

func SetLogLevel(level string) {
	if err := ApplyLogLevel(Log, level); err != nil {
		log.Fatal("Bad error level string")
	}
}

// ApplyLogLevel sets the level of l. We are not using logrus' trace and
// panic levels.
func ApplyLogLevel(l *logrus.Logger, level string) error {
	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(log.DebugLevel)
	case "info":
		l.SetLevel(log.InfoLevel)
	case "warning", "warn":
		l.SetLevel(log.WarnLevel)
	case "error":
		l.SetLevel(log.ErrorLevel)
	case "fatal":
		l.SetLevel(log.FatalLevel)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}
