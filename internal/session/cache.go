package session

import (
	"sync"
	"time"
)

// Session is a signed-in console identity.
type Session struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type EventKind string

const (
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
)

// Event is delivered to subscribers whenever a session starts or ends.
type Event struct {
	Kind    EventKind `json:"kind"`
	Session Session   `json:"session"`
}

type Listener func(Event)

// Cache holds the live sessions of this process and notifies subscribers of
// every change. Listeners run synchronously outside the lock and must not block.
type Cache struct {
	mu        sync.RWMutex
	sessions  map[string]Session
	listeners map[uint64]Listener
	nextID    uint64
	closed    bool
	now       func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		sessions:  make(map[string]Session),
		listeners: make(map[uint64]Listener),
		now:       time.Now,
	}
}

// Populate records a session. Subscribers hear about it only the first time.
func (c *Cache) Populate(s Session) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	_, known := c.sessions[s.ID]
	c.sessions[s.ID] = s
	listeners := c.snapshotLocked()
	c.mu.Unlock()

	if !known {
		notify(listeners, Event{Kind: EventSignedIn, Session: s})
	}
}

// Get returns a live session. Expired sessions are evicted on read.
func (c *Cache) Get(id string) (Session, bool) {
	c.mu.RLock()
	s, ok := c.sessions[id]
	c.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if !s.ExpiresAt.IsZero() && c.now().After(s.ExpiresAt) {
		c.Clear(id)
		return Session{}, false
	}
	return s, true
}

// Clear removes a session and tells subscribers it ended.
func (c *Cache) Clear(id string) {
	c.mu.Lock()
	s, ok := c.sessions[id]
	if ok {
		delete(c.sessions, id)
	}
	listeners := c.snapshotLocked()
	c.mu.Unlock()

	if ok {
		notify(listeners, Event{Kind: EventSignedOut, Session: s})
	}
}

// ClearAccount signs out every session held by accountID and returns how many
// were removed.
func (c *Cache) ClearAccount(accountID string) int {
	c.mu.Lock()
	var removed []Session
	for id, s := range c.sessions {
		if s.AccountID == accountID {
			removed = append(removed, s)
			delete(c.sessions, id)
		}
	}
	listeners := c.snapshotLocked()
	c.mu.Unlock()

	for _, s := range removed {
		notify(listeners, Event{Kind: EventSignedOut, Session: s})
	}
	return len(removed)
}

// Subscribe registers fn for future events. The returned func removes it and
// is safe to call more than once.
func (c *Cache) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}

// Close signs every cached session out, drops all subscribers and makes the
// cache inert.
func (c *Cache) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	sessions := make([]Session, 0, len(c.sessions))
	for _, s := range c.sessions {
		sessions = append(sessions, s)
	}
	listeners := c.snapshotLocked()
	c.sessions = make(map[string]Session)
	c.listeners = make(map[uint64]Listener)
	c.mu.Unlock()

	for _, s := range sessions {
		notify(listeners, Event{Kind: EventSignedOut, Session: s})
	}
}

func (c *Cache) snapshotLocked() []Listener {
	out := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		out = append(out, l)
	}
	return out
}

func notify(listeners []Listener, e Event) {
	for _, l := range listeners {
		l(e)
	}
}
