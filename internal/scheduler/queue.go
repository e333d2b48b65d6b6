package scheduler

// ReadyQueue holds the ordered sequence of task-table indices that are
// admitted and eligible to run. Ordering key is priority ascending; within a
// priority band, order is stable FIFO — a task that arrives (or is requeued
// after a quantum expiry or preemption) joins the back of its own band
// rather than being resorted against it by id. For a single simultaneous
// admission batch this produces the same order as sorting by (priority, id)
// ascending when tasks were registered in id order, since tasks are admitted
// in task-table order. It is what makes
// quantum rotation between equal-priority tasks fair: resorting a requeued
// task by id would let the lower-id task win every tie forever and starve
// its sibling.
//
// A sorted backing array is used instead of a heap: task count is small and
// priorities mutate live via the advisor, which would invalidate heap order
// on every mutation. Insertion-on-push places each entry by the priorities
// in effect when it is pushed, at the cost of O(n) insertion, which is fine
// at this scale. Entries already queued are not reordered when the advisor
// changes a priority; a task moves only when it is popped and pushed again.
type ReadyQueue struct {
	table   *TaskTable
	indices []int
}

// NewReadyQueue creates a queue backed by the given task table.
func NewReadyQueue(table *TaskTable) *ReadyQueue {
	return &ReadyQueue{table: table}
}

// less reports whether task index a sorts strictly ahead of (has higher
// priority than) index b. Equal priority is never "less" — ties are broken
// by arrival position in Push, not by this comparator.
func (rq *ReadyQueue) less(a, b int) bool {
	return rq.table.At(a).Priority < rq.table.At(b).Priority
}

// Push inserts index after every existing entry with priority <= its own,
// and before the first entry with strictly worse priority. Equal-priority
// entries keep their existing relative order (stable FIFO within a band).
func (rq *ReadyQueue) Push(index int) {
	pos := len(rq.indices)
	for i, existing := range rq.indices {
		if rq.less(index, existing) {
			pos = i
			break
		}
	}
	rq.indices = append(rq.indices, 0)
	copy(rq.indices[pos+1:], rq.indices[pos:])
	rq.indices[pos] = index
}

// PopFront removes and returns the smallest element, or (-1, false) if empty.
func (rq *ReadyQueue) PopFront() (int, bool) {
	if len(rq.indices) == 0 {
		return -1, false
	}
	idx := rq.indices[0]
	rq.indices = rq.indices[1:]
	return idx, true
}

// Len reports the number of queued indices.
func (rq *ReadyQueue) Len() int { return len(rq.indices) }

// PeekBetterThan reports whether the queue's front has strictly better
// (lower-numbered) priority than currentIndex. Equal priority never
// preempts — only a quantum expiry rotates among equal-priority tasks. A
// negative currentIndex (nothing running) is outranked by any non-empty queue.
func (rq *ReadyQueue) PeekBetterThan(currentIndex int) bool {
	if len(rq.indices) == 0 {
		return false
	}
	if currentIndex < 0 {
		return true
	}
	return rq.less(rq.indices[0], currentIndex)
}
