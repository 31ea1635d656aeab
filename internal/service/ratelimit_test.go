package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move through window boundaries deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter() (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	return NewRateLimiterWithClock(clock.now), clock
}

func TestSixthRequestInMinuteDenied(t *testing.T) {
	limiter, _ := newTestLimiter()
	lim := Limit{PerMinute: 5}

	for i := 1; i <= 5; i++ {
		ok, _ := limiter.Allow("1.2.3.4", "login", lim)
		require.True(t, ok, "request %d should pass", i)
	}

	ok, retry := limiter.Allow("1.2.3.4", "login", lim)
	assert.False(t, ok, "6th request in the same minute must be denied")
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Minute)
}

func TestMinuteWindowResetsOnBoundary(t *testing.T) {
	limiter, clock := newTestLimiter()
	lim := Limit{PerMinute: 5}

	for i := 0; i < 5; i++ {
		limiter.Allow("1.2.3.4", "login", lim)
	}
	ok, _ := limiter.Allow("1.2.3.4", "login", lim)
	require.False(t, ok)

	clock.advance(time.Minute)
	ok, _ = limiter.Allow("1.2.3.4", "login", lim)
	assert.True(t, ok, "counter must reset on the minute boundary")
}

func TestHourCeilingIndependentOfMinutes(t *testing.T) {
	limiter, clock := newTestLimiter()
	lim := Limit{PerMinute: 30, PerHour: 50}

	allowed := 0
	for i := 0; i < 60; i++ {
		ok, _ := limiter.Allow("1.2.3.4", "reads", lim)
		if ok {
			allowed++
		}
		// Spread requests so the minute ceiling never trips.
		clock.advance(3 * time.Second)
	}
	assert.Equal(t, 50, allowed, "hourly ceiling applies across minute windows")
}

func TestRouteOverrideReplacesDefaultCeilings(t *testing.T) {
	limiter, clock := newTestLimiter()
	// A minute-only override carries no hourly or daily ceiling, so a
	// client pacing itself under the minute limit is never cut off.
	lim := Limit{PerMinute: 5}

	allowed := 0
	for i := 0; i < 300; i++ {
		ok, _ := limiter.Allow("1.2.3.4", "login", lim)
		if ok {
			allowed++
		}
		clock.advance(12 * time.Second)
	}
	assert.Equal(t, 300, allowed, "paced requests must never hit a default ceiling")
}

func TestDailyDefaultCeiling(t *testing.T) {
	limiter, clock := newTestLimiter()

	allowed := 0
	for i := 0; i < 250; i++ {
		ok, _ := limiter.Allow("1.2.3.4", "reads", DefaultLimit)
		if ok {
			allowed++
		}
		clock.advance(90 * time.Second) // stays under 50/hour
	}
	assert.Equal(t, 200, allowed)
}

func TestClientsAndRoutesCountedIndependently(t *testing.T) {
	limiter, _ := newTestLimiter()
	lim := Limit{PerMinute: 1}

	ok, _ := limiter.Allow("1.1.1.1", "login", lim)
	require.True(t, ok)
	ok, _ = limiter.Allow("1.1.1.1", "login", lim)
	require.False(t, ok)

	ok, _ = limiter.Allow("2.2.2.2", "login", lim)
	assert.True(t, ok, "other clients are unaffected")
	ok, _ = limiter.Allow("1.1.1.1", "coaches", lim)
	assert.True(t, ok, "other routes are unaffected")
}

func TestDeniedRequestsDoNotConsumeQuota(t *testing.T) {
	limiter, clock := newTestLimiter()
	lim := Limit{PerMinute: 5, PerHour: 10}

	// Burn the minute quota, then hammer well past it.
	for i := 0; i < 30; i++ {
		limiter.Allow("1.2.3.4", "login", lim)
	}

	// Only 5 of those should have counted toward the hour.
	clock.advance(time.Minute)
	allowed := 0
	for i := 0; i < 5; i++ {
		if ok, _ := limiter.Allow("1.2.3.4", "login", lim); ok {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed)
}

func TestIdleCountersEvicted(t *testing.T) {
	limiter, clock := newTestLimiter()

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("10.0.0.%d", i), "reads", DefaultLimit)
	}
	require.Len(t, limiter.counters, 10)

	clock.advance(25 * time.Hour)
	limiter.Allow("fresh", "reads", DefaultLimit)
	assert.Len(t, limiter.counters, 1)
}
