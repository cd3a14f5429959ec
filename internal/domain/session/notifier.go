// internal/domain/session/notifier.go
package session

import "sync"

// CartChanged is broadcast after every persisted cart mutation
type CartChanged struct {
	SessionID     string
	ItemCount     int
	TotalQuantity int
}

// SessionChanged is broadcast when the session identity changes
// (login, logout, completed checkout)
type SessionChanged struct {
	SessionID string
	LoggedIn  bool
}

// Subscriber receives store change notifications. Delivery is synchronous
// and in broadcast order; subscribers must not block.
type Subscriber interface {
	OnCartChanged(event CartChanged)
	OnSessionChanged(event SessionChanged)
}

// Notifier fans store events out to subscribers
type Notifier struct {
	mu          sync.RWMutex
	subscribers []Subscriber
}

// Subscribe registers a subscriber for all future events
func (n *Notifier) Subscribe(s Subscriber) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, s)
}

func (n *Notifier) publishCartChanged(event CartChanged) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, s := range n.subscribers {
		s.OnCartChanged(event)
	}
}

func (n *Notifier) publishSessionChanged(event SessionChanged) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, s := range n.subscribers {
		s.OnSessionChanged(event)
	}
}
