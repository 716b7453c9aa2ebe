package store

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event types published by the store.
const (
	EventRateChanged       = "rate.changed"
	EventWalletChanged     = "wallet.changed"
	EventOrderCreated      = "order.created"
	EventOrderCancelled    = "order.cancelled"
	EventWithdrawalUpdated = "withdrawal.updated"
)

// Event is a state-change notification. Views used to re-render
// implicitly on mutation; subscribers now pull the latest snapshot when
// one of these arrives.
type Event struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload,omitempty"`
}

type Task func()

// Notifier fans events out to subscribers through a fixed worker pool
// so a slow subscriber never blocks a store mutation.
type Notifier struct {
	pool chan Task

	mu     sync.RWMutex
	subs   map[int]func(Event)
	nextID int
	closed bool
}

func NewNotifier(size int) *Notifier {
	n := &Notifier{
		pool: make(chan Task, size),
		subs: make(map[int]func(Event)),
	}
	for i := 0; i < size; i++ {
		go n.worker()
	}
	return n
}

func (n *Notifier) worker() {
	for task := range n.pool {
		task()
	}
}

func (n *Notifier) Subscribe(fn func(Event)) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	n.subs[n.nextID] = fn
	return n.nextID
}

func (n *Notifier) Unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, id)
}

// Publish enqueues delivery of evt to every subscriber. Delivery is
// dropped, not blocked on, when the pool backlog is full.
func (n *Notifier) Publish(evt Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}
	for _, fn := range n.subs {
		fn := fn
		select {
		case n.pool <- func() { fn(evt) }:
		default:
			zap.L().Warn("event delivery dropped", zap.String("type", evt.Type))
		}
	}
}

func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.closed {
		n.closed = true
		close(n.pool)
	}
}
