package notify

import (
	"sync"
	"time"

	"job-portal/internal/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultTTL = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

const (
	EventShown     = "notification.shown"
	EventDismissed = "notification.dismissed"
)

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	ShownAt   time.Time `json:"shownAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Event struct {
	Type         string       `json:"type"`
	Notification Notification `json:"notification"`
}

type Publisher interface {
	Publish(v any) error
}

type Option func(*Center)

func WithClock(c clock.Clock) Option {
	return func(n *Center) { n.clock = c }
}

func WithPublisher(p Publisher) Option {
	return func(n *Center) { n.publisher = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(n *Center) { n.logger = l }
}

// WithScheduler replaces time.AfterFunc for scheduling auto-dismissal.
func WithScheduler(s func(d time.Duration, f func())) Option {
	return func(n *Center) { n.schedule = s }
}

// Center holds transient notifications. Each one is dismissed automatically
// after the TTL; dismissing it earlier turns the pending expiry into a no-op.
type Center struct {
	mu     sync.Mutex
	active []Notification

	ttl       time.Duration
	clock     clock.Clock
	publisher Publisher
	logger    *zap.Logger
	schedule  func(d time.Duration, f func())
}

func NewCenter(ttl time.Duration, opts ...Option) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Center{
		ttl:   ttl,
		clock: clock.System(),
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

func (c *Center) Show(message string, kind Kind) Notification {
	if kind == "" {
		kind = KindInfo
	}
	now := c.clock.Now()
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		ShownAt:   now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.active = append(c.active, n)
	c.mu.Unlock()

	c.publish(EventShown, n)
	c.schedule(c.ttl, func() { c.Dismiss(n.ID) })
	return n
}

// Dismiss removes the notification and reports whether it was still active.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	idx := -1
	for i := range c.active {
		if c.active[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	n := c.active[idx]
	c.active = append(c.active[:idx], c.active[idx+1:]...)
	c.mu.Unlock()

	c.publish(EventDismissed, n)
	return true
}

func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

func (c *Center) publish(eventType string, n Notification) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(Event{Type: eventType, Notification: n}); err != nil {
		c.logger.Warn("notification publish failed", zap.String("type", eventType), zap.Error(err))
	}
}
