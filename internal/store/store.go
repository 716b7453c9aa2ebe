package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rubyconworld/rbq-platform/internal/domain"
)

// Store is the single source of truth for the exchange rate, price
// history, user roster, transaction ledger, sell-order book and the
// admin withdrawal-record table. All state lives in memory, is seeded
// at construction and is lost when the process exits. Mutations are
// serialized behind one RWMutex; reads return copies.
type Store struct {
	mu sync.RWMutex

	rate         float64
	priceHistory []domain.PriceEntry
	users        []domain.User
	transactions []domain.Transaction
	sellOrders   []domain.SellOrder
	withdrawals  []domain.WithdrawalRecord

	notifier *Notifier
	now      func() time.Time
}

type Option func(*Store)

// WithClock overrides the store clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithNotifier overrides the default notifier.
func WithNotifier(n *Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func New(opts ...Option) *Store {
	s := &Store{
		rate:         seedRate,
		priceHistory: seedPriceHistory(),
		users:        seedUsers(),
		transactions: seedTransactions(),
		sellOrders:   seedSellOrders(),
		withdrawals:  seedWithdrawalRecords(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewNotifier(8)
	}
	return s
}

// Subscribe registers fn for state-change events.
func (s *Store) Subscribe(fn func(Event)) int {
	return s.notifier.Subscribe(fn)
}

func (s *Store) Unsubscribe(id int) {
	s.notifier.Unsubscribe(id)
}

// Close stops event delivery.
func (s *Store) Close() {
	s.notifier.Close()
}

func (s *Store) publish(eventType string, payload any) {
	s.notifier.Publish(Event{Type: eventType, At: s.now(), Payload: payload})
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func (s *Store) findUser(userID string) *domain.User {
	for i := range s.users {
		if s.users[i].ID == userID {
			return &s.users[i]
		}
	}
	return nil
}
