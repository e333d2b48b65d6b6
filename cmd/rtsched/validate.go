package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithila4167/adaptive-scheduler-rtos/internal/config"
)

func newValidateCmd() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse a scenario file and report errors without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.Load(scenarioPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scenario OK: %d task(s), capacity %d, quantum %d\n",
				len(scenario.Tasks), scenario.Capacity, scenario.Quantum)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a scenario YAML file (required)")
	cmd.MarkFlagRequired("scenario")

	return cmd
}
