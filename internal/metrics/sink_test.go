package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	sink, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "tick,task_id,current_priority,remaining_time,waiting_time,queue_len,cpu_usage,is_running\n", string(data))
}

func TestWriteRowFormatsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	sink, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, sink.WriteRow(Row{
		Tick: 3, TaskID: 1, CurrentPriority: 5, RemainingTime: 2,
		WaitingTime: 1, QueueLen: 0, CPUUsage: 1, IsRunning: true,
	}))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "tick,task_id,current_priority,remaining_time,waiting_time,queue_len,cpu_usage,is_running\n3,1,5,2,1,0,1.00,1\n", string(data))
}

func TestWriteRowUsesLFLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	sink, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, sink.WriteRow(Row{Tick: 0, TaskID: 1}))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "\r\n")
}

func TestOpenFailsOnUnwritablePath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nested", "does", "not", "exist", "metrics.csv"))
	require.Error(t, err)
}
