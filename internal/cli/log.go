// Package cli implements the factorkeys command-line interface.
//
// This package provides commands for inspecting nets of conditionals stored
// as TOML, relabeling their keys with a permutation, and exporting their
// structure. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inspect: Print a net, its keys and the result of structural validation
//   - permute: Apply a relabeling to every conditional and write the result
//   - dot: Export the net as Graphviz DOT or SVG
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/factorkeys/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/factorkeys/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Reindexed 12 conditionals (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// reindexLogHooks reports reindexing passes through the CLI logger.
type reindexLogHooks struct {
	logger *log.Logger
}

func (h *reindexLogHooks) OnReindexStart(_ context.Context, mode, policy string, conditionals int) {
	h.logger.Debug("reindex start", "mode", mode, "policy", policy, "conditionals", conditionals)
}

func (h *reindexLogHooks) OnReindexComplete(_ context.Context, mode, policy string, touched int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("reindex rejected", "mode", mode, "policy", policy, "err", err)
		return
	}
	h.logger.Debug("reindex complete", "mode", mode, "policy", policy, "touched", touched, "duration", duration)
}

// RegisterHooks routes observability events to the CLI logger. Call it once
// from main before executing the root command.
func (c *CLI) RegisterHooks() {
	observability.SetReindexHooks(&reindexLogHooks{logger: c.Logger})
}
