// Package logging provides structured console logging and lightweight
// timing helpers.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with a verbose switch. The zero value is a valid
// no-op logger.
type Logger struct {
	zlog    zerolog.Logger
	active  bool
	verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	if writer == nil {
		return Discard()
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"}
	return Logger{
		zlog:    zerolog.New(out).Level(level).With().Timestamp().Logger(),
		active:  true,
		verbose: verbose,
	}
}

// Discard returns a logger that drops everything. The interactive shell uses
// it so log lines cannot tear the rendered screen.
func Discard() Logger {
	return Logger{zlog: zerolog.Nop()}
}

func (l Logger) Infof(format string, args ...any) {
	if !l.active {
		return
	}
	l.zlog.Info().Msgf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.active {
		return
	}
	l.zlog.Debug().Msgf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	if !l.active {
		return
	}
	l.zlog.Error().Msgf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
