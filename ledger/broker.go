package ledger

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/templetrust/sevaledger/models"
	"github.com/templetrust/sevaledger/utils"
)

// Collections carried on the change feed.
const (
	CollectionDonations     = "donations"
	CollectionExpenses      = "expenses"
	CollectionNotifications = "notifications"
)

const redisChannel = "ledger:changes"

// Change is one mutation of a ledger collection, fanned out to live
// subscribers in this process and, when Redis is attached, to every other
// instance. Origin identifies the publishing broker so an instance skips
// its own messages coming back off the wire.
type Change struct {
	Origin       string               `json:"origin"`
	Collection   string               `json:"collection"`
	Donation     *models.Donation     `json:"donation,omitempty"`
	Expense      *models.Expense      `json:"expense,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// Subscription is one live reader of the change feed. Close it when the
// reader goes away; the channel is closed on unsubscribe.
type Subscription struct {
	ID string
	C  <-chan Change

	broker *Broker
	once   sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.unsubscribe(s.ID)
	})
}

// Broker is the publish-subscribe channel for ledger changes. It always
// fans out in-process; attaching a Redis client extends the fan-out
// across processes.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]chan Change
	closed bool

	origin string
	rdb    *redis.Client
	cancel context.CancelFunc
}

func NewBroker() *Broker {
	return &Broker{
		subs:   make(map[string]chan Change),
		origin: uuid.New().String(),
	}
}

// Subscribe registers a live reader. The returned channel is buffered;
// a reader that falls far behind misses intermediate changes rather than
// blocking writers.
func (b *Broker) Subscribe() *Subscription {
	ch := make(chan Change, 16)
	id := uuid.New().String()
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[id] = ch
	}
	b.mu.Unlock()
	return &Subscription{ID: id, C: ch, broker: b}
}

func (b *Broker) unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers a change to all subscribers and, when attached, to the
// Redis channel for other instances.
func (b *Broker) Publish(change Change) {
	change.Origin = b.origin
	b.fanout(change)
	if b.rdb != nil {
		payload, err := json.Marshal(change)
		if err != nil {
			utils.LogError("Failed to encode ledger change for redis: %v", err)
			return
		}
		if err := b.rdb.Publish(context.Background(), redisChannel, payload).Err(); err != nil {
			utils.LogError("Failed to publish ledger change to redis: %v", err)
		}
	}
}

func (b *Broker) fanout(change Change) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- change:
		default:
			// slow subscriber, drop rather than block the write path
		}
	}
}

// AttachRedis bridges the broker onto a shared Redis channel so writes
// made by any instance reach subscribers on all of them.
func (b *Broker) AttachRedis(client *redis.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	b.rdb = client
	b.cancel = cancel
	go b.consume(ctx)
}

func (b *Broker) consume(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, redisChannel)
	defer sub.Close()
	for msg := range sub.Channel() {
		var change Change
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			utils.LogError("Failed to decode ledger change from redis: %v", err)
			continue
		}
		if change.Origin == b.origin {
			continue
		}
		b.fanout(change)
	}
}

// Close tears down the Redis bridge and closes every subscription.
func (b *Broker) Close() {
	if b.cancel != nil {
		b.cancel()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
