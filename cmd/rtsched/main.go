// Command rtsched drives the adaptive scheduler simulator: run a scenario
// file to completion, validate one without running it, or watch the
// illustrative IPC/timer producer-consumer demo tick by tick.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "rtsched",
		Short: "Deterministic priority-preemptive task scheduler simulator",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newDemoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
