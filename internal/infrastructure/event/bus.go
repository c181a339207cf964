package event

import (
	"sync"
	"time"
)

// LogoutEvent is broadcast when a user's session ends, so dependent state
// (the cart, open websocket tabs) can be cleared in the same process.
type LogoutEvent struct {
	UserID string
	At     time.Time
}

// Bus is a minimal in-process fan-out. Handlers run synchronously on the
// publisher's goroutine; keep them short.
type Bus struct {
	mu         sync.RWMutex
	logoutSubs []func(LogoutEvent)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SubscribeLogout(fn func(LogoutEvent)) {
	b.mu.Lock()
	b.logoutSubs = append(b.logoutSubs, fn)
	b.mu.Unlock()
}

func (b *Bus) PublishLogout(e LogoutEvent) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.RLock()
	subs := append(([]func(LogoutEvent))(nil), b.logoutSubs...)
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}
