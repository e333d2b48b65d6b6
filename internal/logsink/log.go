// Package logsink implements the log sink: free-form, human-readable lines
// on three channels (info, error, per-task-action), never load-bearing for
// scheduling correctness itself. It is a thin zerolog wrapper that keeps the
// original C trio's names (log_info/log_error/log_task from
// original_source/src/util.c) as method names.
package logsink

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Sink is the engine's log sink. The zero value is not usable; use New.
type Sink struct {
	logger zerolog.Logger
}

// New builds a Sink writing human-readable console lines to w (os.Stdout in
// production, a buffer in tests).
func New(w io.Writer) *Sink {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return &Sink{logger: zerolog.New(cw).With().Timestamp().Logger()}
}

// NewDiscard builds a Sink that drops every line — useful for tests that
// don't want log noise but still want a non-nil sink.
func NewDiscard() *Sink {
	return &Sink{logger: zerolog.New(io.Discard)}
}

// Default returns a Sink writing to os.Stdout.
func Default() *Sink { return New(os.Stdout) }

// NewWithLevel builds a Sink like New, filtered to the named zerolog level
// ("debug", "info", "warn", "error", ...). An unrecognized name falls back
// to info, rather than failing the whole run over a CLI typo.
func NewWithLevel(w io.Writer, level string) *Sink {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	s := New(w)
	s.logger = s.logger.Level(lvl)
	return s
}

// Info logs an informational event.
func (s *Sink) Info(msg string) {
	s.logger.Info().Str("channel", "info").Msg(msg)
}

// Error logs an error event. This never aborts the run on its own — it's a
// record, not a propagated failure; callers decide whether to also return
// an error.
func (s *Sink) Error(msg string) {
	s.logger.Error().Str("channel", "error").Msg(msg)
}

// Task logs a per-task action, e.g. "dispatched", "preempted", "completed".
func (s *Sink) Task(id int, action string) {
	s.logger.Info().Str("channel", "task").Int("id", id).Msg(action)
}

// RunID tags every subsequent log line with a run identifier, so logs from
// concurrent demo/run invocations against the same stdout can be told apart.
func (s *Sink) RunID(id string) *Sink {
	return &Sink{logger: s.logger.With().Str("run_id", id).Logger()}
}
