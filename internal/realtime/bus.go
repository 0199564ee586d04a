// Package realtime fans board events out to live client connections.
//
// The Bus owns the membership Registry and the set of attached connections.
// Publish resolves the subscribers of the event's board at call time and
// offers the event to each one without blocking; a slow or closed subscriber
// loses the event and nobody else is affected. When a Relay is attached,
// locally published events are also forwarded to other instances, which
// hand them back to their own bus through Deliver.
package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

// ErrUnknownConnection is returned when joining with a connection that is
// not attached to the bus.
var ErrUnknownConnection = errors.New("unknown connection")

// Relay forwards locally published events to other instances.
type Relay interface {
	Forward(ctx context.Context, evt domain.BoardEvent) error
}

// Config tunes the bus.
type Config struct {
	// BufferSize is the per-connection outbound queue length.
	BufferSize int
	// ForwardTimeout bounds one relay forward.
	ForwardTimeout time.Duration
}

// Bus delivers board events to subscribed connections.
type Bus struct {
	log      *slog.Logger
	metrics  *Metrics
	cfg      Config
	registry *Registry

	mu    sync.RWMutex
	conns map[ConnID]*Conn
	relay Relay

	forwards sync.WaitGroup
}

// NewBus creates a Bus. metrics may be nil.
func NewBus(log *slog.Logger, metrics *Metrics, cfg Config) *Bus {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 32
	}
	if cfg.ForwardTimeout <= 0 {
		cfg.ForwardTimeout = 5 * time.Second
	}
	return &Bus{
		log:      log.With("component", "realtime_bus"),
		metrics:  metrics,
		cfg:      cfg,
		registry: NewRegistry(),
		conns:    make(map[ConnID]*Conn),
	}
}

// SetRelay attaches a relay for cross-instance fan-out.
func (b *Bus) SetRelay(r Relay) {
	b.mu.Lock()
	b.relay = r
	b.mu.Unlock()
}

// Registry exposes the membership registry for inspection.
func (b *Bus) Registry() *Registry { return b.registry }

// Connect attaches a new connection to the bus.
func (b *Bus) Connect() *Conn {
	c := newConn(ConnID(uuid.NewString()), b.cfg.BufferSize)

	b.mu.Lock()
	b.conns[c.id] = c
	b.mu.Unlock()

	if b.metrics != nil {
		b.metrics.connections.Inc()
	}
	return c
}

// Disconnect detaches c, removes it from every board and closes its event
// channel. Calling it more than once is safe.
func (b *Bus) Disconnect(c *Conn) {
	b.mu.Lock()
	_, attached := b.conns[c.id]
	delete(b.conns, c.id)
	b.mu.Unlock()

	b.registry.LeaveAll(c.id)
	c.close()

	if attached && b.metrics != nil {
		b.metrics.connections.Dec()
	}
}

// JoinBoard subscribes an attached connection to board's group.
func (b *Bus) JoinBoard(id ConnID, board uuid.UUID) error {
	// Disconnect takes b.mu before LeaveAll, so a join that passed the
	// check is always cleaned up.
	b.mu.RLock()
	_, ok := b.conns[id]
	if ok {
		b.registry.Join(id, board)
	}
	b.mu.RUnlock()
	if !ok {
		return ErrUnknownConnection
	}

	b.log.Debug("joined board", slog.String("conn_id", string(id)), slog.String("group", domain.GroupName(board)))
	return nil
}

// LeaveBoard unsubscribes a connection from board's group. It never fails.
func (b *Bus) LeaveBoard(id ConnID, board uuid.UUID) {
	b.registry.Leave(id, board)
	b.log.Debug("left board", slog.String("conn_id", string(id)), slog.String("group", domain.GroupName(board)))
}

// Publish delivers evt to the current subscribers of its board and forwards
// it to the relay, if any. It never blocks on a subscriber and never fails:
// the state change behind the event is already committed.
func (b *Bus) Publish(ctx context.Context, evt domain.BoardEvent) {
	if b.metrics != nil {
		b.metrics.published.WithLabelValues(evt.Kind().String()).Inc()
	}

	b.Deliver(evt)

	b.mu.RLock()
	relay := b.relay
	b.mu.RUnlock()
	if relay == nil {
		return
	}

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.ForwardTimeout)
	b.forwards.Add(1)
	go func() {
		defer b.forwards.Done()
		defer cancel()

		if err := relay.Forward(fctx, evt); err != nil {
			if b.metrics != nil {
				b.metrics.relayErrors.Inc()
			}
			b.log.WarnContext(fctx, "relay forward failed",
				slog.String("kind", evt.Kind().String()),
				slog.String("board_id", evt.Board().String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Deliver offers evt to the local subscribers of its board only. The relay
// uses it for events that originated on another instance.
func (b *Bus) Deliver(evt domain.BoardEvent) int {
	subscribers := b.registry.SubscribersOf(evt.Board())
	if len(subscribers) == 0 {
		return 0
	}

	targets := make([]*Conn, 0, len(subscribers))
	b.mu.RLock()
	for _, id := range subscribers {
		if c, ok := b.conns[id]; ok {
			targets = append(targets, c)
		}
	}
	b.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if c.offer(evt) {
			delivered++
			b.observe(resultDelivered)
			continue
		}
		b.observe(resultDropped)
		b.log.Warn("event dropped for slow connection",
			slog.String("conn_id", string(c.id)),
			slog.String("kind", evt.Kind().String()),
			slog.String("board_id", evt.Board().String()),
		)
	}
	return delivered
}

// Wait blocks until in-flight relay forwards finish.
func (b *Bus) Wait() {
	b.forwards.Wait()
}

func (b *Bus) observe(result string) {
	if b.metrics != nil {
		b.metrics.deliveries.WithLabelValues(result).Inc()
	}
}
