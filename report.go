package main

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// Reporter receives progress messages from the generator.
type Reporter interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
}

type charmReporter struct {
	logger *charmlog.Logger
}

// NewReporter returns a Reporter that writes to w. Debug messages are
// dropped unless debug is set.
func NewReporter(w io.Writer, debug bool) Reporter {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}
	return &charmReporter{
		logger: charmlog.NewWithOptions(w, charmlog.Options{
			Level:  level,
			Prefix: "genenums",
		}),
	}
}

func (r *charmReporter) Debug(msg string, keyvals ...any) {
	r.logger.Debug(msg, keyvals...)
}

func (r *charmReporter) Info(msg string, keyvals ...any) {
	r.logger.Info(msg, keyvals...)
}

func (r *charmReporter) Warn(msg string, keyvals ...any) {
	r.logger.Warn(msg, keyvals...)
}

type nopReporter struct{}

func (nopReporter) Debug(string, ...any) {}
func (nopReporter) Info(string, ...any)  {}
func (nopReporter) Warn(string, ...any)  {}
