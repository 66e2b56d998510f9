package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidArgs(t *testing.T) {
	assert.Nil(t, New(0, 1, time.Minute))
	assert.Nil(t, New(1, 0, time.Minute))

	var l *MapLimiter
	assert.True(t, l.Allow("anything", time.Now()))
	assert.Equal(t, 0, l.Len())
}

func TestMapLimiter_PerKeyBudget(t *testing.T) {
	l := New(1, 2, time.Minute)
	require.NotNil(t, l)
	now := time.Unix(1_700_000_000, 0)

	assert.True(t, l.Allow("0xAbC", now))
	assert.True(t, l.Allow("0xabc", now))
	assert.False(t, l.Allow("0xABC", now), "case variants share one bucket")

	assert.True(t, l.Allow("0xdef", now), "other keys are independent")

	assert.True(t, l.Allow("0xabc", now.Add(time.Second)), "bucket refills over time")
	assert.Equal(t, 2, l.Len())
}

func TestMapLimiter_EmptyKeyAlwaysAllowed(t *testing.T) {
	l := New(1, 1, time.Minute)
	now := time.Now()
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("  ", now))
	}
	assert.Equal(t, 0, l.Len())
}

func TestMapLimiter_EvictsIdleKeys(t *testing.T) {
	l := New(100, 100, time.Second)
	start := time.Unix(1_700_000_000, 0)

	l.Allow("stale", start)
	later := start.Add(time.Hour)
	for i := 0; i < 511; i++ {
		l.Allow("fresh", later)
	}

	assert.Equal(t, 1, l.Len())
}

func TestMapLimiter_ReserveRelease(t *testing.T) {
	l := New(1.0/60, 1, time.Hour)
	now := time.Unix(1_700_000_000, 0)

	release, ok := l.Reserve("0xabc", now)
	require.True(t, ok)
	release()
	release()

	release, ok = l.Reserve("0xABC", now)
	require.True(t, ok, "released token is available again")
	_ = release

	_, ok = l.Reserve("0xabc", now)
	assert.False(t, ok, "kept token is spent")

	_, ok = l.Reserve("0xabc", now)
	assert.False(t, ok, "refused reservations do not push the refill back")
	assert.True(t, l.Allow("0xabc", now.Add(61*time.Second)))
}

func TestMapLimiter_ReserveNil(t *testing.T) {
	var l *MapLimiter
	release, ok := l.Reserve("0xabc", time.Now())
	assert.True(t, ok)
	require.NotNil(t, release)
	release()
}
