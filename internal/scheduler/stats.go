package scheduler

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// StatRow is one task's final turnaround/waiting summary.
type StatRow struct {
	ID         int
	Arrival    int
	Burst      int
	Completion int // -1 if the task never completed
	Turnaround int
	Wait       int
}

// Stats derives turnaround and wait times for every task from the task
// table. A task with no Completion set (should not happen once Run has
// returned, since Run only exits when every task is finished) reports -1
// for Completion and leaves Turnaround/Wait at 0 rather than panicking.
func (e *Engine) Stats() []StatRow {
	rows := make([]StatRow, 0, e.table.Len())
	for _, t := range e.table.All() {
		row := StatRow{ID: t.ID, Arrival: t.Arrival, Burst: t.Burst, Completion: -1}
		if t.Completion != nil {
			row.Completion = *t.Completion
			row.Turnaround = row.Completion - t.Arrival
			row.Wait = row.Turnaround - t.Burst
		}
		rows = append(rows, row)
	}
	return rows
}

// PrintStats renders the summary table to w, one row per task.
func (e *Engine) PrintStats(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tArr\tBurst\tCompl\tTurn\tWait")
	for _, r := range e.Stats() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\n", r.ID, r.Arrival, r.Burst, r.Completion, r.Turnaround, r.Wait)
	}
	return tw.Flush()
}
