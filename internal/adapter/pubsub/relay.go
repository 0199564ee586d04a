// Package pubsub relays board events between server instances over Redis
// Pub/Sub so that subscribers connected to any instance see every event.
//
// Redis Pub/Sub is at-most-once: an instance that is down or slow when a
// message is published never sees it. Clients re-sync on reconnect.
package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/binharademo/trelloclone/internal/config"
	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/internal/realtime"
)

// deliverer is the local side events are handed to.
type deliverer interface {
	Deliver(evt domain.BoardEvent) int
}

// message is what travels on the Redis channel.
type message struct {
	Origin string          `json:"origin"`
	Event  json.RawMessage `json:"event"`
}

// Relay publishes local events to a Redis channel and delivers events from
// other instances to the local bus.
type Relay struct {
	rdb     redis.UniversalClient
	channel string
	origin  string
	log     *slog.Logger

	readyOnce sync.Once
	ready     chan struct{}
}

// NewClient creates a Redis client from config and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewRelay creates a Relay on channel. Each Relay gets a random origin id so
// it can skip its own messages.
func NewRelay(log *slog.Logger, rdb redis.UniversalClient, channel string) *Relay {
	origin := uuid.NewString()
	return &Relay{
		rdb:     rdb,
		channel: channel,
		origin:  origin,
		log:     log.With("component", "redis_relay", "origin", origin),
		ready:   make(chan struct{}),
	}
}

// Ready is closed once Run has an active subscription.
func (r *Relay) Ready() <-chan struct{} { return r.ready }

// Forward publishes evt for the other instances.
func (r *Relay) Forward(ctx context.Context, evt domain.BoardEvent) error {
	encoded, err := realtime.EncodeEvent(evt)
	if err != nil {
		return err
	}

	data, err := json.Marshal(message{Origin: r.origin, Event: encoded})
	if err != nil {
		return fmt.Errorf("marshal relay message: %w", err)
	}

	if err := r.rdb.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", r.channel, err)
	}
	return nil
}

// Run subscribes to the channel and delivers foreign events to bus until ctx
// is cancelled. It returns nil on cancellation.
func (r *Relay) Run(ctx context.Context, bus deliverer) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	// Receive blocks until the subscription is confirmed.
	if _, err := sub.Receive(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}
	r.readyOnce.Do(func() { close(r.ready) })
	r.log.InfoContext(ctx, "relay subscribed", slog.String("channel", r.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(ctx, bus, msg.Payload)
		}
	}
}

func (r *Relay) handle(ctx context.Context, bus deliverer, payload string) {
	var m message
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		r.log.WarnContext(ctx, "skip malformed relay message", slog.String("error", err.Error()))
		return
	}
	if m.Origin == r.origin {
		return
	}

	evt, err := realtime.DecodeEvent(m.Event)
	if err != nil {
		r.log.WarnContext(ctx, "skip undecodable relay event", slog.String("error", err.Error()))
		return
	}

	n := bus.Deliver(evt)
	r.log.DebugContext(ctx, "relayed event delivered",
		slog.String("kind", evt.Kind().String()),
		slog.String("board_id", evt.Board().String()),
		slog.Int("subscribers", n),
	)
}
