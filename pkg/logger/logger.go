package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is usable before InitLogger is called; InitLogger only reconfigures it.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()

	// Output to stdout instead of the default stderr
	l.Out = os.Stdout

	// Set JSON formatter for structured logging
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// InitLogger applies the configured level to Log and to logrus' standard
// logger. Unknown levels fall back to info.
func InitLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(lvl)
}

// SetOutput redirects Log and logrus' standard logger, e.g. away from a
// terminal UI that owns stdout.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
	logrus.SetOutput(w)
}
