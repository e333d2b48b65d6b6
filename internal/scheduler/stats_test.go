package scheduler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsReportsUncompletedTaskAsSentinel(t *testing.T) {
	var e Engine
	e.Init(1)
	_, err := e.Add(1, 0, 0, 5)
	require.NoError(t, err)

	rows := e.Stats()
	require.Len(t, rows, 1)
	require.Equal(t, -1, rows[0].Completion)
	require.Equal(t, 0, rows[0].Turnaround)
}

func TestPrintStatsRendersOneRowPerTask(t *testing.T) {
	e := New(Config{Capacity: 1, Quantum: 2})
	_, err := e.Add(1, 0, 0, 2)
	require.NoError(t, err)
	require.NoError(t, e.Run())

	var buf bytes.Buffer
	require.NoError(t, e.PrintStats(&buf))

	out := buf.String()
	require.Contains(t, out, "ID")
	require.Contains(t, out, "Compl")
	require.Equal(t, 2, strings.Count(out, "\n"), "header plus one row per task")
}
