package realtime

import (
	"sync"

	"github.com/binharademo/trelloclone/internal/domain"
)

// Conn is the bus side of one client connection. Events addressed to the
// connection are queued on a bounded channel; when it is full the event is
// dropped for this connection only.
type Conn struct {
	id   ConnID
	send chan domain.BoardEvent

	mu     sync.Mutex
	closed bool
}

func newConn(id ConnID, buffer int) *Conn {
	return &Conn{id: id, send: make(chan domain.BoardEvent, buffer)}
}

// ID returns the connection id.
func (c *Conn) ID() ConnID { return c.id }

// Events returns the channel of events delivered to this connection. It is
// closed when the connection is disconnected from the bus.
func (c *Conn) Events() <-chan domain.BoardEvent { return c.send }

// offer queues evt without blocking. It reports false when the connection
// is closed or its queue is full.
func (c *Conn) offer(evt domain.BoardEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- evt:
		return true
	default:
		return false
	}
}

// close closes the outbound channel exactly once.
func (c *Conn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
