package scheduler

import "fmt"

// Task is one record in the Task Table. Records are created up front by
// TaskTable.Add and mutated only by the Engine and the advisor adapter.
type Task struct {
	ID       int
	Priority int // lower value = higher priority; mutable by the advisor
	Arrival  int
	Burst    int // immutable once set

	Remaining int
	// Completion is nil until the task's final cycle ends.
	Completion *int
	Enqueued   bool
	Waiting    int
}

// Finished reports whether the task has no remaining cycles.
func (t *Task) Finished() bool {
	return t.Remaining <= 0
}

// TaskTable is the contiguous, bounded-capacity registry of task records.
// Capacity is fixed at Init and Add fails once it is reached, mirroring the
// fixed-size calloc'd array in original_source/src/scheduler.c — a pool of a
// fixed resource acquired up front and released on Teardown.
type TaskTable struct {
	tasks    []Task
	capacity int
}

// Init discards any prior state and allocates room for up to capacity tasks.
func (tt *TaskTable) Init(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	tt.capacity = capacity
	tt.tasks = make([]Task, 0, capacity)
}

// Add registers a new task and returns its table index. It fails if the
// table is at capacity or burst is non-positive; on failure the table is
// left unmodified.
func (tt *TaskTable) Add(id, priority, arrival, burst int) (int, error) {
	if len(tt.tasks) >= tt.capacity {
		return -1, fmt.Errorf("scheduler: task table at capacity (%d)", tt.capacity)
	}
	if burst <= 0 {
		return -1, fmt.Errorf("scheduler: task %d has non-positive burst_time %d", id, burst)
	}
	tt.tasks = append(tt.tasks, Task{
		ID:        id,
		Priority:  priority,
		Arrival:   arrival,
		Burst:     burst,
		Remaining: burst,
	})
	return len(tt.tasks) - 1, nil
}

// Len reports the number of registered tasks.
func (tt *TaskTable) Len() int { return len(tt.tasks) }

// At returns a pointer to the task at index i, for in-place mutation by the
// engine and advisor.
func (tt *TaskTable) At(i int) *Task { return &tt.tasks[i] }

// All iterates tasks in table (insertion) order, so callers that emit one
// row per task per tick get a stable, repeatable ordering across ticks.
func (tt *TaskTable) All() []Task { return tt.tasks }

// FindByID returns the table index of the first task with the given id, or
// -1 if none matches. The table does not enforce unique ids, so a caller
// that registers duplicates gets the first match back, consistently.
func (tt *TaskTable) FindByID(id int) int {
	for i := range tt.tasks {
		if tt.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// AllFinished reports whether every task has Remaining <= 0.
func (tt *TaskTable) AllFinished() bool {
	for i := range tt.tasks {
		if tt.tasks[i].Remaining > 0 {
			return false
		}
	}
	return true
}

// Teardown releases all resources; the table must be re-initialized with
// Init before further use.
func (tt *TaskTable) Teardown() {
	tt.tasks = nil
	tt.capacity = 0
}
