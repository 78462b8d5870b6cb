package notify

import (
	"sync"
	"testing"
	"time"

	"job-portal/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (s *manualScheduler) schedule(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, f)
}

func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	fns := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

type recordingPublisher struct {
	events []Event
}

func (p *recordingPublisher) Publish(v any) error {
	p.events = append(p.events, v.(Event))
	return nil
}

func TestCenter_ShowAndAutoDismiss(t *testing.T) {
	sched := &manualScheduler{}
	pub := &recordingPublisher{}
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	c := NewCenter(0, WithScheduler(sched.schedule), WithPublisher(pub), WithClock(clock.NewFakeClock(now)))

	n := c.Show("Registration successful! Welcome to JobPortal.", KindSuccess)
	assert.Equal(t, now.Add(DefaultTTL), n.ExpiresAt)
	require.Len(t, c.Active(), 1)
	assert.Equal(t, []time.Duration{DefaultTTL}, sched.delays)

	sched.fireAll()
	assert.Empty(t, c.Active())

	require.Len(t, pub.events, 2)
	assert.Equal(t, EventShown, pub.events[0].Type)
	assert.Equal(t, EventDismissed, pub.events[1].Type)
	assert.Equal(t, n.ID, pub.events[1].Notification.ID)
}

func TestCenter_EarlyDismissMakesExpiryNoop(t *testing.T) {
	sched := &manualScheduler{}
	pub := &recordingPublisher{}
	c := NewCenter(time.Second, WithScheduler(sched.schedule), WithPublisher(pub))

	first := c.Show("one", KindInfo)
	second := c.Show("two", "")
	assert.Equal(t, KindInfo, second.Kind)

	assert.True(t, c.Dismiss(first.ID))
	assert.False(t, c.Dismiss(first.ID))

	sched.fireAll()
	assert.Empty(t, c.Active())

	dismissed := 0
	for _, e := range pub.events {
		if e.Type == EventDismissed {
			dismissed++
		}
	}
	assert.Equal(t, 2, dismissed)
}

func TestCenter_RealTimer(t *testing.T) {
	c := NewCenter(10 * time.Millisecond)
	c.Show("bye", KindInfo)
	assert.Eventually(t, func() bool { return len(c.Active()) == 0 }, time.Second, 5*time.Millisecond)
}
