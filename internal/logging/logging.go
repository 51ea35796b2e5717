// Package logging provides a single shared logger for the rest of the
// module, following the same op/go-logging setup FrankyGo's engine
// packages pull their loggers from.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var log = newLogger()

const loggerModule = "chesscore"

func newLogger() *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} ▶ %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, loggerModule)
	logging.SetBackend(leveled)
	return logging.MustGetLogger(loggerModule)
}

// GetLog returns the module-wide logger.
func GetLog() *logging.Logger {
	return log
}

// SetLevel adjusts the minimum severity the logger emits, used by the
// UCI driver's "setoption name LogLevel" debug knob.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, loggerModule)
}

// ParseLevel parses a go-logging level name ("debug", "info", "warning",
// "error", "critical", case-insensitively) for callers that only have
// the option's string value, such as the UCI "setoption" handler.
func ParseLevel(name string) (logging.Level, error) {
	return logging.LogLevel(name)
}
