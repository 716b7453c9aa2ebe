package authclient

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Auth state change events, named as the auth service names them.
const (
	SignedIn  = "SIGNED_IN"
	SignedOut = "SIGNED_OUT"
)

type StateChangeFunc func(event string, user *User)

type UserGetter interface {
	GetUser(ctx context.Context, token string) (*User, error)
}

// Watcher keeps tracked session tokens in sync with the auth service.
// It polls the service on an interval and fires registered callbacks
// when a session appears or stops resolving, which is the server-side
// equivalent of the dashboard's session-change subscription.
type Watcher struct {
	client   UserGetter
	interval time.Duration

	mu      sync.Mutex
	tracked map[string]*User
	subs    map[int]StateChangeFunc
	nextID  int
}

func NewWatcher(client UserGetter, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{
		client:   client,
		interval: interval,
		tracked:  make(map[string]*User),
		subs:     make(map[int]StateChangeFunc),
	}
}

// OnAuthStateChange registers fn for session transitions. The returned
// id unsubscribes.
func (w *Watcher) OnAuthStateChange(fn StateChangeFunc) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	w.subs[w.nextID] = fn
	return w.nextID
}

func (w *Watcher) Unsubscribe(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.subs, id)
}

// Track starts watching a session token and immediately reports the
// signed-in principal.
func (w *Watcher) Track(token string, user *User) {
	w.mu.Lock()
	w.tracked[token] = user
	w.mu.Unlock()
	w.notify(SignedIn, user)
}

// Forget drops a token without firing an event, used after an explicit
// sign-out already reported SIGNED_OUT.
func (w *Watcher) Forget(token string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.tracked, token)
}

func (w *Watcher) notify(event string, user *User) {
	w.mu.Lock()
	subs := make([]StateChangeFunc, 0, len(w.subs))
	for _, fn := range w.subs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn(event, user)
	}
}

// Start runs the polling loop until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	zap.L().Info("session watcher started", zap.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("session watcher stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *Watcher) refresh(ctx context.Context) {
	w.mu.Lock()
	tokens := make([]string, 0, len(w.tracked))
	for token := range w.tracked {
		tokens = append(tokens, token)
	}
	w.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, token := range tokens {
		token := token
		g.Go(func() error {
			user, err := w.client.GetUser(ctx, token)
			if err != nil {
				w.mu.Lock()
				previous := w.tracked[token]
				delete(w.tracked, token)
				w.mu.Unlock()

				zap.L().Info("session expired", zap.Error(err))
				w.notify(SignedOut, previous)
				return nil
			}

			w.mu.Lock()
			w.tracked[token] = user
			w.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}
