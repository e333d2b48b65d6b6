package advisor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoneSourceNeverOverrides(t *testing.T) {
	var src NoneSource
	overrides, err := src.Poll(0)
	require.NoError(t, err)
	require.Empty(t, overrides)
}

func TestMemorySourceFiltersByTick(t *testing.T) {
	src := NewMemorySource(
		Override{Tick: 1, TaskID: 1, NewPriority: 5},
		Override{Tick: 2, TaskID: 2, NewPriority: 1},
	)

	got, err := src.Poll(2)
	require.NoError(t, err)
	require.Equal(t, []Override{{Tick: 2, TaskID: 2, NewPriority: 1}}, got)

	got, err = src.Poll(99)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFileSourceMissingFileYieldsNoOverrides(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	got, err := src.Poll(0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFileSourceParsesMatchingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.csv")
	contents := "tick,task_id,new_priority\n1,1,5\n2,2,1\n2,3,9\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	src := NewFileSource(path)
	got, err := src.Poll(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []Override{
		{Tick: 2, TaskID: 2, NewPriority: 1},
		{Tick: 2, TaskID: 3, NewPriority: 9},
	}, got)
}

func TestFileSourceSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.csv")
	contents := "tick,task_id,new_priority\n2,not-a-number,5\n2,2,1\nincomplete\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	src := NewFileSource(path)
	got, err := src.Poll(2)
	require.NoError(t, err)
	require.Equal(t, []Override{{Tick: 2, TaskID: 2, NewPriority: 1}}, got)
}

func TestFileSourceRereadsOnEveryPoll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.csv")
	require.NoError(t, os.WriteFile(path, []byte("tick,task_id,new_priority\n3,1,2\n"), 0o644))

	src := NewFileSource(path)
	got, err := src.Poll(3)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, os.WriteFile(path, []byte("tick,task_id,new_priority\n3,1,7\n"), 0o644))
	got, err = src.Poll(3)
	require.NoError(t, err)
	require.Equal(t, []Override{{Tick: 3, TaskID: 1, NewPriority: 7}}, got, "must observe a rewrite between polls")
}
