// Package ipcdemo rebuilds the illustrative producer/consumer walkthrough
// from original_source/src/ipc.c and src/timers.c as a standalone, bounded,
// synchronized demo. It never touches the scheduling engine in
// internal/scheduler — it exists only for `cmd/rtsched demo`.
package ipcdemo

import (
	"errors"
	"sync"
)

// ErrMailboxFull is returned by Send when the mailbox is at capacity.
var ErrMailboxFull = errors.New("ipcdemo: mailbox full")

// Mailbox is a bounded FIFO message queue. original_source/src/ipc.c grew an
// unbounded, unsynchronized linked list with an explicit
// "TODO: handle synchronization in the future" on every operation; this
// closes that TODO with a capacity-bounded slice guarded by a mutex instead
// of an ever-growing list.
type Mailbox struct {
	mu       sync.Mutex
	buf      []int
	capacity int
}

// NewMailbox builds a mailbox that holds at most capacity messages.
func NewMailbox(capacity int) *Mailbox {
	if capacity <= 0 {
		capacity = 1
	}
	return &Mailbox{buf: make([]int, 0, capacity), capacity: capacity}
}

// Send enqueues msg, or returns ErrMailboxFull if the mailbox is at capacity.
func (m *Mailbox) Send(msg int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.buf) >= m.capacity {
		return ErrMailboxFull
	}
	m.buf = append(m.buf, msg)
	return nil
}

// Receive dequeues the oldest message. ok is false if the mailbox is empty —
// the Go replacement for the original's -1 sentinel, which couldn't
// distinguish "empty" from a legitimately negative message value.
func (m *Mailbox) Receive() (msg int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.buf) == 0 {
		return 0, false
	}
	msg = m.buf[0]
	m.buf = m.buf[1:]
	return msg, true
}

// Len reports the number of queued messages.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buf)
}
