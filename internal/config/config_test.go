package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tasks:
  - id: 1
    priority: 5
    arrival: 0
    burst: 3
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultQuantum, s.Quantum)
	require.Equal(t, DefaultAdviceWaitBudget, s.AdviceWaitBudget)
	require.Equal(t, DefaultPollIncrement, s.PollIncrement)
	require.Equal(t, 1, s.Capacity)
	require.Equal(t, "metrics.csv", s.MetricsPath)
}

func TestLoadHonorsExplicitValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
capacity: 5
quantum: 3
advice_wait_budget: 50
poll_increment: 5
metrics_path: out.csv
advisor_path: advice.csv
tasks:
  - id: 1
    priority: 5
    arrival: 0
    burst: 3
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, s.Capacity)
	require.Equal(t, 3, s.Quantum)
	require.Equal(t, 50, s.AdviceWaitBudget)
	require.Equal(t, 5, s.PollIncrement)
	require.Equal(t, "out.csv", s.MetricsPath)
	require.Equal(t, "advice.csv", s.AdvisorPath)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsCapacitySmallerThanTaskCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
capacity: 1
tasks:
  - id: 1
    priority: 5
    arrival: 0
    burst: 3
  - id: 2
    priority: 5
    arrival: 0
    burst: 3
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveBurst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tasks:
  - id: 1
    priority: 5
    arrival: 0
    burst: 0
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateAllowsDuplicateIDs(t *testing.T) {
	s := &Scenario{
		Capacity: 2,
		Tasks: []TaskSpec{
			{ID: 1, Priority: 5, Arrival: 0, Burst: 1},
			{ID: 1, Priority: 5, Arrival: 0, Burst: 1},
		},
	}
	require.NoError(t, s.Validate())
}
