package service

import (
	"sync"
	"time"
)

// Limit is a set of fixed-window ceilings. A zero value means the window is
// not enforced.
type Limit struct {
	PerMinute int
	PerHour   int
	PerDay    int
}

// DefaultLimit applies to every route without an override.
var DefaultLimit = Limit{PerHour: 50, PerDay: 200}

// window counts requests inside one fixed time bucket.
type window struct {
	start time.Time
	count int
}

func (w *window) tick(now time.Time, size time.Duration) {
	bucket := now.Truncate(size)
	if !bucket.Equal(w.start) {
		w.start = bucket
		w.count = 0
	}
	w.count++
}

// counter tracks the three windows for one (client, route) pair.
type counter struct {
	minute   window
	hour     window
	day      window
	lastSeen time.Time
}

// RateLimiter enforces per-minute, per-hour and per-day request ceilings per
// (client address, route) pair. Counters are process-local and reset on
// fixed window boundaries, each window tracked independently.
type RateLimiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
	ttl      time.Duration
}

// NewRateLimiter creates a limiter. Entries idle longer than a day are
// evicted opportunistically.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		counters: make(map[string]*counter),
		now:      time.Now,
		ttl:      24 * time.Hour,
	}
}

// NewRateLimiterWithClock is NewRateLimiter with an injectable clock.
func NewRateLimiterWithClock(now func() time.Time) *RateLimiter {
	l := NewRateLimiter()
	l.now = now
	return l
}

// Allow records one request for the client on the route and reports whether
// it fits under every configured ceiling. When denied, retryAfter is the
// time until the earliest breached window resets.
func (l *RateLimiter) Allow(clientIP, route string, lim Limit) (ok bool, retryAfter time.Duration) {
	now := l.now()
	key := clientIP + "|" + route

	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.counters[key]
	if c == nil {
		c = &counter{}
		l.counters[key] = c
	}
	c.lastSeen = now
	l.evict(now)

	c.minute.tick(now, time.Minute)
	c.hour.tick(now, time.Hour)
	c.day.tick(now, 24*time.Hour)

	retryAfter = l.breach(c, now, lim)
	if retryAfter > 0 {
		// The denied request must not count against the client.
		c.minute.count--
		c.hour.count--
		c.day.count--
		return false, retryAfter
	}
	return true, 0
}

// breach returns the time until the earliest breached window resets, or zero
// when every ceiling holds.
func (l *RateLimiter) breach(c *counter, now time.Time, lim Limit) time.Duration {
	var min time.Duration
	check := func(w window, size time.Duration, ceiling int) {
		if ceiling <= 0 || w.count <= ceiling {
			return
		}
		wait := w.start.Add(size).Sub(now)
		if min == 0 || wait < min {
			min = wait
		}
	}
	check(c.minute, time.Minute, lim.PerMinute)
	check(c.hour, time.Hour, lim.PerHour)
	check(c.day, 24*time.Hour, lim.PerDay)
	return min
}

func (l *RateLimiter) evict(now time.Time) {
	for k, c := range l.counters {
		if now.Sub(c.lastSeen) > l.ttl {
			delete(l.counters, k)
		}
	}
}
