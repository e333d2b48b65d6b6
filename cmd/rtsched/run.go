package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mithila4167/adaptive-scheduler-rtos/internal/advisor"
	"github.com/mithila4167/adaptive-scheduler-rtos/internal/config"
	"github.com/mithila4167/adaptive-scheduler-rtos/internal/logsink"
	"github.com/mithila4167/adaptive-scheduler-rtos/internal/scheduler"
)

func newRunCmd() *cobra.Command {
	var (
		scenarioPath string
		quantum      int
		adviceBudget int
		capacity     int
		metricsPath  string
		advisorPath  string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a scenario and run it to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.Load(scenarioPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quantum") {
				scenario.Quantum = quantum
			}
			if cmd.Flags().Changed("advice-wait-budget") {
				scenario.AdviceWaitBudget = adviceBudget
			}
			if cmd.Flags().Changed("capacity") {
				scenario.Capacity = capacity
			}
			if cmd.Flags().Changed("metrics") {
				scenario.MetricsPath = metricsPath
			}
			if cmd.Flags().Changed("advisor") {
				scenario.AdvisorPath = advisorPath
			}

			runID := uuid.NewString()
			log := logsink.NewWithLevel(os.Stdout, logLevel).RunID(runID)

			var advisorSrc advisor.Source = advisor.NoneSource{}
			if scenario.AdvisorPath != "" {
				advisorSrc = advisor.NewFileSource(scenario.AdvisorPath)
			}

			eng := scheduler.New(scheduler.Config{
				Capacity:         scenario.Capacity,
				Quantum:          scenario.Quantum,
				AdviceWaitBudget: scenario.AdviceWaitBudget,
				PollIncrement:    scenario.PollIncrement,
				MetricsPath:      scenario.MetricsPath,
				Advisor:          advisorSrc,
				Log:              log,
			})
			defer eng.Teardown()

			for _, t := range scenario.Tasks {
				if _, err := eng.Add(t.ID, t.Priority, t.Arrival, t.Burst); err != nil {
					return fmt.Errorf("run: %w", err)
				}
			}
			if err := eng.Run(); err != nil {
				return fmt.Errorf("run: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "run %s complete\n", runID)
			return eng.PrintStats(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a scenario YAML file (required)")
	cmd.Flags().IntVar(&quantum, "quantum", 0, "override scenario quantum")
	cmd.Flags().IntVar(&adviceBudget, "advice-wait-budget", 0, "override scenario advice wait budget")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "override scenario task table capacity")
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "override scenario metrics CSV path")
	cmd.Flags().StringVar(&advisorPath, "advisor", "", "override scenario advisor CSV path")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.MarkFlagRequired("scenario")

	return cmd
}
