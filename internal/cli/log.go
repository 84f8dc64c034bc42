// Package cli implements the lehmer command-line interface.
//
// The commands convert between permutations and Lehmer codes, manage named
// orderings in the configured store, render cycle diagrams and run the HTTP
// API. The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - encode, decode: Convert between permutations and codes
//   - factorial, enumerate, browse: Explore the permutations of a length
//   - render: Draw the cycle structure of a permutation as SVG or DOT
//   - store: Save, load, list and delete named orderings
//   - serve: Run the HTTP API
//   - cache: Manage the result cache
//
// # Logging
//
// Diagnostics go to stderr, results to stdout, so output can be piped.
// The level comes from log.level in the config file; --verbose (-v) forces
// debug, which adds one "encoded" or "decoded" record per codec call showing
// whether the big-integer path ran and whether the cache answered.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          appName,
		Level:           level,
	})
}

// resolveLevel picks the effective level: --verbose wins over the config.
func resolveLevel(verbose bool, configured log.Level) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return configured
}

// stopwatch logs a summary record once a long-running command finishes.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

// startStopwatch uses the logger attached to ctx.
func startStopwatch(ctx context.Context) stopwatch {
	return stopwatch{logger: loggerFromContext(ctx), start: time.Now()}
}

// done logs msg at info level with an "elapsed" field appended to keyvals.
func (s stopwatch) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Info(msg, keyvals...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger,
// as happens for commands executed without the root PersistentPreRunE.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
