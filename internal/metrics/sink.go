// Package metrics implements the metrics sink: a structured, line-oriented
// CSV row writer the scheduler engine emits to once per tick.
package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Row is one (tick, task) metrics record.
type Row struct {
	Tick            int
	TaskID          int
	CurrentPriority int
	RemainingTime   int
	WaitingTime     int
	QueueLen        int
	CPUUsage        float64
	IsRunning       bool
}

var header = []string{
	"tick", "task_id", "current_priority", "remaining_time",
	"waiting_time", "queue_len", "cpu_usage", "is_running",
}

// Sink is the write side of the metrics CSV contract. Opened on first use
// within a run and closed on exit, matching the single-file-handle-for-the-
// whole-run shape of original_source/src/metrics.c.
type Sink struct {
	w      *csv.Writer
	closer io.Closer
}

// Open creates (or truncates) the CSV file at path, writes the header, and
// returns a Sink ready for WriteRow.
func Open(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("metrics: open %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	w.UseCRLF = false // external readers expect LF line endings, not CRLF
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("metrics: write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("metrics: flush header: %w", err)
	}
	return &Sink{w: w, closer: f}, nil
}

// WriteRow appends one metrics row and flushes, so an external reader can
// tail the file live (original_source/src/metrics.c fflush()es every tick).
func (s *Sink) WriteRow(r Row) error {
	record := []string{
		itoa(r.Tick),
		itoa(r.TaskID),
		itoa(r.CurrentPriority),
		itoa(r.RemainingTime),
		itoa(r.WaitingTime),
		itoa(r.QueueLen),
		fmt.Sprintf("%.2f", r.CPUUsage),
		boolDigit(r.IsRunning),
	}
	if err := s.w.Write(record); err != nil {
		return fmt.Errorf("metrics: write row: %w", err)
	}
	s.w.Flush()
	return s.w.Error()
}

// Close flushes and releases the underlying file.
func (s *Sink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.closer.Close()
		return err
	}
	return s.closer.Close()
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
