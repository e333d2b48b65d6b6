// Package config loads a scheduler scenario — the task set plus the engine
// constants governing it — from a YAML file, so a run can be described
// declaratively instead of wired up in Go.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultQuantum is the default cycles-per-dispatch constant.
const DefaultQuantum = 2

// DefaultAdviceWaitBudget is the default advisor poll budget, in the same
// units PollIncrement is consumed in.
const DefaultAdviceWaitBudget = 100

// DefaultPollIncrement is the unit the engine consumes from the advice wait
// budget on each unsuccessful poll.
const DefaultPollIncrement = 10

// TaskSpec describes one task to register with the engine.
type TaskSpec struct {
	ID       int `yaml:"id"`
	Priority int `yaml:"priority"`
	Arrival  int `yaml:"arrival"`
	Burst    int `yaml:"burst"`
}

// Scenario is a full, declarative run configuration.
type Scenario struct {
	Capacity         int        `yaml:"capacity"`
	Quantum          int        `yaml:"quantum"`
	AdviceWaitBudget int        `yaml:"advice_wait_budget"`
	PollIncrement    int        `yaml:"poll_increment"`
	MetricsPath      string     `yaml:"metrics_path"`
	AdvisorPath      string     `yaml:"advisor_path"`
	Tasks            []TaskSpec `yaml:"tasks"`
}

// applyDefaults fills in zero-valued fields with the package's constants.
func (s *Scenario) applyDefaults() {
	if s.Quantum <= 0 {
		s.Quantum = DefaultQuantum
	}
	if s.AdviceWaitBudget <= 0 {
		s.AdviceWaitBudget = DefaultAdviceWaitBudget
	}
	if s.PollIncrement <= 0 {
		s.PollIncrement = DefaultPollIncrement
	}
	if s.Capacity <= 0 {
		s.Capacity = len(s.Tasks)
	}
	if s.MetricsPath == "" {
		s.MetricsPath = "metrics.csv"
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario is internally consistent. It does not check
// task uniqueness — duplicate ids are a caller concern, not a config error.
func (s *Scenario) Validate() error {
	if s.Capacity < len(s.Tasks) {
		return fmt.Errorf("config: capacity %d is smaller than task count %d", s.Capacity, len(s.Tasks))
	}
	for _, t := range s.Tasks {
		if t.Burst <= 0 {
			return fmt.Errorf("config: task %d has non-positive burst %d", t.ID, t.Burst)
		}
	}
	return nil
}
