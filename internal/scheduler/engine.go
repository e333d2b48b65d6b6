// Package scheduler implements the scheduling core: the Task Table, the
// Ready Queue, the advisor integration, and the per-tick Engine Loop that
// drives them.
package scheduler

import (
	"fmt"

	"github.com/mithila4167/adaptive-scheduler-rtos/internal/advisor"
	"github.com/mithila4167/adaptive-scheduler-rtos/internal/logsink"
	"github.com/mithila4167/adaptive-scheduler-rtos/internal/metrics"
)

// noCurrent marks "no running task" — the Go analogue of the original C
// scheduler's `current = -1` sentinel.
const noCurrent = -1

// Config configures an Engine. Zero-valued Quantum/AdviceWaitBudget/
// PollIncrement fall back to sensible defaults so a caller only needs to
// set the fields it cares about.
type Config struct {
	Capacity         int
	Quantum          int
	AdviceWaitBudget int
	PollIncrement    int
	MetricsPath      string // empty disables the metrics sink
	Advisor          advisor.Source
	Log              *logsink.Sink
}

// Engine is the single long-lived scheduler object. Its lifecycle is
// Init -> Run -> PrintStats -> Teardown; Init may be called again afterward
// to start a fresh run against the same Engine value.
type Engine struct {
	table TaskTable
	queue *ReadyQueue

	quantum          int
	adviceWaitBudget int
	pollIncrement    int

	metricsPath string
	advisorSrc  advisor.Source
	log         *logsink.Sink

	simTime               int
	current               int
	currentQuantum        int
	lastAppliedAdviceTick int
}

// New builds and initializes an Engine per cfg.
func New(cfg Config) *Engine {
	e := &Engine{}
	e.Init(cfg.Capacity)

	e.quantum = cfg.Quantum
	if e.quantum <= 0 {
		e.quantum = 2
	}
	e.adviceWaitBudget = cfg.AdviceWaitBudget
	if e.adviceWaitBudget == 0 {
		e.adviceWaitBudget = 100
	}
	e.pollIncrement = cfg.PollIncrement
	if e.pollIncrement <= 0 {
		e.pollIncrement = 10
	}
	e.metricsPath = cfg.MetricsPath

	e.advisorSrc = cfg.Advisor
	if e.advisorSrc == nil {
		e.advisorSrc = advisor.NoneSource{}
	}
	e.log = cfg.Log
	if e.log == nil {
		e.log = logsink.NewDiscard()
	}
	return e
}

// Init (re)initializes the task table with the given capacity, discarding
// any prior state.
func (e *Engine) Init(capacity int) {
	e.table.Init(capacity)
	e.queue = NewReadyQueue(&e.table)
	e.simTime = 0
	e.current = noCurrent
	e.currentQuantum = 0
	e.lastAppliedAdviceTick = -1
}

// Add registers a task. See TaskTable.Add for failure modes.
func (e *Engine) Add(id, priority, arrival, burst int) (int, error) {
	return e.table.Add(id, priority, arrival, burst)
}

// Run executes the simulation to completion: admit -> advise -> select ->
// execute -> emit -> advance, once per tick, until every task is finished.
// A metrics path that was explicitly configured but can't be opened is a
// caller configuration error and aborts the run; a run with no metrics path
// at all simply runs without a sink.
func (e *Engine) Run() error {
	var sink *metrics.Sink
	if e.metricsPath != "" {
		s, err := metrics.Open(e.metricsPath)
		if err != nil {
			return fmt.Errorf("scheduler: open metrics sink: %w", err)
		}
		sink = s
		defer sink.Close()
	}

	if e.table.Len() == 0 {
		return nil
	}

	for !e.table.AllFinished() {
		e.admitArrivals()
		e.consultAdvisor()
		e.reselect()
		ran := e.current
		e.executeCycle()
		e.emit(sink, ran)
		e.simTime++
	}
	return nil
}

// admitArrivals is step 1: enqueue every task that has arrived and was not
// yet admitted. ReadyQueue.Push places each task in its priority band; within
// a band it keeps push order, which is the order this loop visits tasks in, so
// simultaneous arrivals at equal priority are ordered by task-table index,
// i.e. registration order.
func (e *Engine) admitArrivals() {
	for i := 0; i < e.table.Len(); i++ {
		t := e.table.At(i)
		if !t.Enqueued && t.Arrival <= e.simTime && t.Remaining > 0 {
			t.Enqueued = true
			e.queue.Push(i)
		}
	}
}

// consultAdvisor is step 2: poll the advisor source in bounded increments
// until an applicable record lands or the wait budget is exhausted. A
// negative budget disables advisor polling entirely for the tick; a zero
// budget in Config is replaced by the default in New and does not disable it.
func (e *Engine) consultAdvisor() {
	for consumed := 0; consumed < e.adviceWaitBudget; consumed += e.pollIncrement {
		overrides, err := e.advisorSrc.Poll(e.simTime)
		if err != nil {
			e.log.Error(fmt.Sprintf("advisor poll error at tick %d: %v", e.simTime, err))
			return
		}
		if e.applyOverrides(overrides) {
			return
		}
	}
}

// applyOverrides mutates task priorities for every override matching the
// current tick that hasn't already been absorbed, and advances
// lastAppliedAdviceTick to the highest tick it applied. Unknown task ids
// and stale/future ticks are silently dropped rather than surfaced as
// errors, since a bad advisor record should never be able to halt a run.
func (e *Engine) applyOverrides(overrides []advisor.Override) bool {
	applied := false
	for _, ov := range overrides {
		if ov.Tick != e.simTime || ov.Tick <= e.lastAppliedAdviceTick {
			continue
		}
		idx := e.table.FindByID(ov.TaskID)
		if idx < 0 {
			continue
		}
		e.table.At(idx).Priority = ov.NewPriority
		e.log.Task(ov.TaskID, fmt.Sprintf("priority overridden to %d", ov.NewPriority))
		applied = true
		if ov.Tick > e.lastAppliedAdviceTick {
			e.lastAppliedAdviceTick = ov.Tick
		}
	}
	return applied
}

// reselect is step 3: decide whether a new task should be dispatched this
// tick. Evaluation order matters: needsReselect short-circuits on
// current == noCurrent before ever consulting the queue for "better than
// what", since there's nothing to compare against when nothing is running.
func (e *Engine) reselect() {
	needsReselect := e.current == noCurrent ||
		e.queue.PeekBetterThan(e.current) ||
		e.currentQuantum >= e.quantum
	if !needsReselect {
		return
	}

	if e.current != noCurrent && e.table.At(e.current).Remaining > 0 {
		e.queue.Push(e.current)
	}

	if idx, ok := e.queue.PopFront(); ok {
		e.current = idx
		e.log.Task(e.table.At(idx).ID, "dispatched")
	} else {
		e.current = noCurrent
	}
	e.currentQuantum = 0
}

// executeCycle is step 4: run one cycle of the current task, or record an
// idle tick.
func (e *Engine) executeCycle() {
	if e.current == noCurrent {
		return
	}

	t := e.table.At(e.current)
	t.Remaining--
	e.currentQuantum++

	for i := 0; i < e.table.Len(); i++ {
		if i == e.current {
			continue
		}
		other := e.table.At(i)
		if other.Enqueued && other.Remaining > 0 {
			other.Waiting++
		}
	}

	if t.Remaining <= 0 {
		completion := e.simTime + 1
		t.Completion = &completion
		e.log.Task(t.ID, "completed")
		e.current = noCurrent
		e.currentQuantum = 0
	}
}

// emit is step 5: one metrics row per task, in task-table order, reflecting
// state after executeCycle. ran is the index of the task that executed this
// tick (noCurrent on an idle tick), so a task finishing this tick still
// reports cpu_usage=1.00/is_running=1 for the tick it finished on, even
// though executeCycle has already cleared `current`.
func (e *Engine) emit(sink *metrics.Sink, ran int) {
	if sink == nil {
		return
	}
	runningID := -1
	if ran != noCurrent {
		runningID = e.table.At(ran).ID
	}
	cpuUsage := 0.0
	if runningID >= 0 {
		cpuUsage = 1.0
	}
	queueLen := e.queue.Len()

	for i := 0; i < e.table.Len(); i++ {
		t := e.table.At(i)
		row := metrics.Row{
			Tick:            e.simTime,
			TaskID:          t.ID,
			CurrentPriority: t.Priority,
			RemainingTime:   t.Remaining,
			WaitingTime:     t.Waiting,
			QueueLen:        queueLen,
			CPUUsage:        cpuUsage,
			IsRunning:       t.ID == runningID,
		}
		if err := sink.WriteRow(row); err != nil {
			e.log.Error(fmt.Sprintf("metrics write failed at tick %d: %v", e.simTime, err))
		}
	}
}

// Teardown releases the task table and ready queue. The Engine must be
// re-initialized with Init before further use.
func (e *Engine) Teardown() {
	e.table.Teardown()
	e.queue = nil
}
