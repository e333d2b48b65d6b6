package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mithila4167/adaptive-scheduler-rtos/internal/ipcdemo"
	"github.com/mithila4167/adaptive-scheduler-rtos/internal/logsink"
)

const (
	producerID = 0
	consumerID = 1
)

func newDemoCmd() *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the illustrative producer/consumer IPC and timer demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd, ticks)
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 30, "number of ticks to run the demo for")
	return cmd
}

// runDemo re-creates original_source/src/main.c's producer/consumer loop:
// a producer sends values 1..10 every 3 ticks once its timer expires, and a
// consumer drains the mailbox on the same cadence, offset so it starts
// after the first message is sent.
func runDemo(cmd *cobra.Command, ticks int) {
	log := logsink.NewWithLevel(os.Stdout, "info")
	mailbox := ipcdemo.NewMailbox(16)
	timers := ipcdemo.NewTimers()

	timers.Set(producerID, 0)
	timers.Set(consumerID, 3)

	nextValue := 1
	for tick := 0; tick < ticks; tick++ {
		timers.Tick()

		if timers.Expired(producerID) && nextValue <= 10 {
			if err := mailbox.Send(nextValue); err != nil {
				log.Error(fmt.Sprintf("producer: %v", err))
			} else {
				log.Task(producerID, "producer: sent message")
				nextValue++
			}
			timers.Set(producerID, 3)
		}

		if timers.Expired(consumerID) {
			if msg, ok := mailbox.Receive(); ok {
				log.Task(consumerID, fmt.Sprintf("consumer: received message %d", msg))
				timers.Set(consumerID, 3)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "demo complete: %d tick(s), %d message(s) still queued\n", ticks, mailbox.Len())
}
