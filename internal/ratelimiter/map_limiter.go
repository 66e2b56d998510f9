package ratelimiter

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MapLimiter keeps one token bucket per key and evicts idle buckets.
// Keys are compared case-insensitively so that checksummed and lowercase
// forms of the same address share a bucket.
type MapLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu    sync.Mutex
	byKey map[string]*entry
	hits  uint64
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a key-based limiter; returns nil if args are invalid.
// A nil limiter allows everything.
func New(rps float64, burst int, idleTTL time.Duration) *MapLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &MapLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		byKey:   make(map[string]*entry),
	}
}

// Allow reports whether one token can be consumed for the key at now.
func (l *MapLimiter) Allow(key string, now time.Time) bool {
	_, ok := l.Reserve(key, now)
	return ok
}

// Reserve consumes one token for the key at now if one is available. The
// returned release puts the token back; callers use it when the work the
// token paid for did not happen. release is never nil.
func (l *MapLimiter) Reserve(key string, now time.Time) (release func(), ok bool) {
	noop := func() {}
	if l == nil {
		return noop, true
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return noop, true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, found := l.byKey[key]
	if !found {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = e
	}
	e.lastSeen = now

	l.hits++
	if l.hits%512 == 0 {
		l.evict(now)
	}

	r := e.limiter.ReserveN(now, 1)
	if !r.OK() {
		return noop, false
	}
	if r.DelayFrom(now) > 0 {
		r.CancelAt(now)
		return noop, false
	}

	var once sync.Once
	return func() { once.Do(func() { r.CancelAt(now) }) }, true
}

// Limit returns the configured rate in events per second.
func (l *MapLimiter) Limit() float64 {
	if l == nil {
		return 0
	}
	return float64(l.limit)
}

// Len returns the number of tracked keys.
func (l *MapLimiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}

func (l *MapLimiter) evict(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for k, v := range l.byKey {
		if v.lastSeen.Before(cutoff) {
			delete(l.byKey, k)
		}
	}
}
