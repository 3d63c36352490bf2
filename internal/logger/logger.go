// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init, with logrus defaults.
var Log = logrus.New()

// Init configures Log from the environment and sends it to stdout:
//
//	LOG_LEVEL  logrus level name, default "info"
//	LOG_FORMAT "json" for JSON lines, anything else for text with timestamps
//
// Call it once from main.
func Init() {
	Configure(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Configure applies a level and format to Log and redirects it to w.
// An empty or unknown level falls back to info.
func Configure(w io.Writer, level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	Log.SetOutput(w)
}
