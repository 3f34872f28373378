package relay

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// commandQueue is an unbounded multi-producer/single-consumer FIFO. Producers
// never block; the single consumer blocks only while the queue is empty.
//
// Unbounded is a deliberate trade: the sync engine's hot path must never
// stall on the relay, so memory grows instead. Crossing warnLimit logs a
// warning so unbounded growth does not go unnoticed.
//
// The producer side is reference counted. Every Handle clone holds one
// reference; once the count reaches zero the queue is closed, the consumer
// drains what remains and then observes exhaustion.
type commandQueue struct {
	mu      sync.Mutex
	buf     []command
	closed  bool
	senders int

	// wake has capacity 1: a pending token means "recheck the buffer".
	wake chan struct{}

	depth  atomic.Int64
	warned bool

	name      string
	warnLimit int
	log       zerolog.Logger
}

func newCommandQueue(name string, warnLimit int, log zerolog.Logger) *commandQueue {
	return &commandQueue{
		wake:      make(chan struct{}, 1),
		senders:   1, // the provider's canonical handle
		name:      name,
		warnLimit: warnLimit,
		log:       log,
	}
}

// push appends a command. Returns false when the queue is already closed, in
// which case the command is discarded.
func (q *commandQueue) push(cmd command) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.buf = append(q.buf, cmd)
	q.depth.Add(1)
	if !q.warned && len(q.buf) >= q.warnLimit {
		q.warned = true
		q.log.Warn().
			Str("queue", q.name).
			Int("len", len(q.buf)).
			Msg("command queue depth exceeded warning limit")
	}
	q.mu.Unlock()

	q.signal()
	return true
}

// pop blocks until a command is available or the queue is closed and empty.
// Only the relay's run loop calls this.
func (q *commandQueue) pop() (command, bool) {
	for {
		q.mu.Lock()
		if len(q.buf) > 0 {
			cmd := q.buf[0]
			q.buf = q.buf[1:]
			q.depth.Add(-1)
			q.mu.Unlock()
			return cmd, true
		}
		if q.closed {
			q.mu.Unlock()
			return nil, false
		}
		q.mu.Unlock()

		// A stale token just causes one extra buffer check.
		<-q.wake
	}
}

// Len reports the current queue depth. Diagnostics only; the value may be
// stale by the time the caller looks at it.
func (q *commandQueue) Len() int {
	return int(q.depth.Load())
}

// addSender acquires a producer reference. Returns false when the queue is
// already closed; a clone made at that point holds no reference.
func (q *commandQueue) addSender() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.senders++
	return true
}

func (q *commandQueue) releaseSender() {
	q.mu.Lock()
	q.senders--
	shouldClose := q.senders == 0 && !q.closed
	if shouldClose {
		q.closed = true
	}
	q.mu.Unlock()

	if shouldClose {
		q.signal()
	}
}

func (q *commandQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
