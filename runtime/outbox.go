package runtime

import (
	"chat-relay/domain"
	"sync"
	"sync/atomic"
)

const DefaultOutboxCapacity = 100

// Outbox is the bounded delivery queue between the coordinator and one connection.
// The coordinator pushes, the connection's write pump drains C().
// A push never blocks: when the queue is full the oldest undelivered message is dropped.
// The *Outbox pointer doubles as the session handle stored in the registry.
type Outbox struct {
	mu      sync.Mutex
	owner   domain.UserID
	ch      chan []byte
	closed  bool
	dropped atomic.Uint64
}

func NewOutbox(owner domain.UserID, capacity int) *Outbox {
	if capacity <= 0 {
		capacity = DefaultOutboxCapacity
	}
	return &Outbox{owner: owner, ch: make(chan []byte, capacity)}
}

// Push enqueues msg. accepted is false once the outbox is closed;
// evicted is true when an older message was dropped to make room.
func (o *Outbox) Push(msg []byte) (accepted, evicted bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return false, false
	}
	for {
		select {
		case o.ch <- msg:
			return true, evicted
		default:
		}
		// Full: drop the oldest. The consumer may have drained it meanwhile,
		// in which case the next send succeeds.
		select {
		case <-o.ch:
			evicted = true
			o.dropped.Add(1)
		default:
		}
	}
}

// C is drained by the connection. It is closed after Close, once empty.
func (o *Outbox) C() <-chan []byte {
	return o.ch
}

// Close stops accepting messages. Already queued messages stay readable.
func (o *Outbox) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	close(o.ch)
}

func (o *Outbox) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

func (o *Outbox) Owner() domain.UserID { return o.owner }
func (o *Outbox) Len() int             { return len(o.ch) }
func (o *Outbox) Cap() int             { return cap(o.ch) }

// Dropped counts messages lost to the lag-drop policy.
func (o *Outbox) Dropped() uint64 {
	return o.dropped.Load()
}
