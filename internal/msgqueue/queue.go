// Package msgqueue carries results from background actions to the owning
// context.
//
// Producers push tagged messages; the consumer polls without blocking and
// drains in bounded time slices so it never stalls the interface. Messages
// from one producer arrive in the order they were sent; there is no ordering
// across producers.
package msgqueue

import (
	"sync"
	"time"
)

// DefaultCapacity is the buffer size used by callers that do not care.
const DefaultCapacity = 1024

// Message is a single tagged result.
type Message struct {
	Tag     string
	Run     string // run ID of the producing action, empty for commands
	Payload any
}

// Queue is a buffered, one-directional message queue.
type Queue struct {
	ch        chan Message
	done      chan struct{}
	closeOnce sync.Once
	now       func() time.Time
}

// New creates a queue holding up to capacity pending messages.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		ch:   make(chan Message, capacity),
		done: make(chan struct{}),
		now:  time.Now,
	}
}

// Put sends a message, blocking while the queue is full.
// Returns false once the queue is closed.
func (q *Queue) Put(m Message) bool {
	if q.isClosed() {
		return false
	}
	select {
	case q.ch <- m:
		return true
	case <-q.done:
		return false
	}
}

// TryPut sends a message without blocking.
// Returns false if the queue is full or closed.
func (q *Queue) TryPut(m Message) bool {
	if q.isClosed() {
		return false
	}
	select {
	case q.ch <- m:
		return true
	default:
		return false
	}
}

// Poll returns the next message without blocking.
func (q *Queue) Poll() (Message, bool) {
	select {
	case m := <-q.ch:
		return m, true
	default:
		return Message{}, false
	}
}

// Drain hands messages to fn until the queue is empty or budget has elapsed.
// The budget is checked between messages, so fn itself is never interrupted.
// Returns the number of messages processed.
func (q *Queue) Drain(budget time.Duration, fn func(Message)) int {
	start := q.now()
	n := 0
	for q.now().Sub(start) < budget {
		m, ok := q.Poll()
		if !ok {
			return n
		}
		fn(m)
		n++
	}
	return n
}

// Len returns the number of pending messages.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Close stops accepting messages and releases blocked producers.
// Pending messages can still be drained.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}

// Done is closed when the queue is closed.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

func (q *Queue) isClosed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}
