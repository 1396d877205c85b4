package pipeline

import (
	"sync"
	"time"
)

// Clock delivers elapsed time since a subscription began. Calling cancel
// removes the subscription; once cancel has returned the channel receives
// no further ticks.
type Clock interface {
	Subscribe() (ticks <-chan time.Duration, cancel func())
}

// FrameClock is a display-refresh clock driven by the host loop: the game
// calls Pulse once per update and every live subscription receives its
// elapsed time. A slow subscriber sees only the most recent tick.
type FrameClock struct {
	mu   sync.Mutex
	now  time.Time
	subs map[*subscription]struct{}
}

type subscription struct {
	start time.Time
	ch    chan time.Duration
}

func NewFrameClock() *FrameClock {
	return &FrameClock{subs: make(map[*subscription]struct{})}
}

// Subscribe starts a subscription anchored at the most recent pulse.
func (c *FrameClock) Subscribe() (<-chan time.Duration, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &subscription{start: c.now, ch: make(chan time.Duration, 1)}
	c.subs[s] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, s)
			c.mu.Unlock()
		})
	}
	return s.ch, cancel
}

// Pulse advances the clock to now and notifies subscribers.
func (c *FrameClock) Pulse(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
	for s := range c.subs {
		if s.start.IsZero() {
			s.start = now
		}
		elapsed := now.Sub(s.start)
		// Replace an unread tick rather than block the host loop.
		select {
		case <-s.ch:
		default:
		}
		s.ch <- elapsed
	}
}

// Subscribers reports the number of live subscriptions.
func (c *FrameClock) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
