// Package ratelimit implements the per-user flood control placed in front
// of command handlers: a token bucket per user, plus TTL'd sets remembering
// who was already warned and which user/command pairs are cooling down.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// Verdict is the outcome of a Check call.
type Verdict int

const (
	// Allow lets the request through.
	Allow Verdict = iota
	// Warn means the user just hit the limit; the caller should tell them
	// once and drop the request.
	Warn
	// Ignore means the request is dropped silently: the user was already
	// warned, or repeated the same command inside its cooldown window.
	Ignore
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Warn:
		return "warn"
	case Ignore:
		return "ignore"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Limiter applies per-user rate limiting with warn-once semantics.
type Limiter struct {
	mu      sync.Mutex
	buckets map[int64]*rate.Limiter

	limit    rate.Limit
	burst    int
	warnTTL  time.Duration
	cooldown time.Duration

	warned    *ttlcache.Cache[int64, time.Time]
	cooldowns *ttlcache.Cache[string, struct{}]
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithRate sets the sustained events-per-second rate and burst size of each
// user's bucket.
func WithRate(perSecond float64, burst int) Option {
	return func(l *Limiter) {
		l.limit = rate.Limit(perSecond)
		l.burst = burst
	}
}

// WithWarnTTL sets how long a limited user stays in the warned set (and is
// silently ignored) before they may be warned again.
func WithWarnTTL(d time.Duration) Option {
	return func(l *Limiter) {
		l.warnTTL = d
	}
}

// WithCooldown sets the per-user-and-command cooldown window. Zero disables
// command cooldowns.
func WithCooldown(d time.Duration) Option {
	return func(l *Limiter) {
		l.cooldown = d
	}
}

// New builds a Limiter. The defaults match the bot's flood policy: one
// request per second with a burst of five, a one-minute warn window and a
// five-second command cooldown.
func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets:  make(map[int64]*rate.Limiter),
		limit:    rate.Limit(1),
		burst:    5,
		warnTTL:  time.Minute,
		cooldown: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.warned = ttlcache.New[int64, time.Time](
		ttlcache.WithTTL[int64, time.Time](l.warnTTL),
		ttlcache.WithCapacity[int64, time.Time](256),
	)
	go l.warned.Start()

	if l.cooldown > 0 {
		l.cooldowns = ttlcache.New[string, struct{}](
			ttlcache.WithTTL[string, struct{}](l.cooldown),
			ttlcache.WithCapacity[string, struct{}](512),
		)
		go l.cooldowns.Start()
	}
	return l
}

// Check records one request from userID for command and returns the
// verdict. Safe for concurrent use.
func (l *Limiter) Check(userID int64, command string) Verdict {
	if l.cooldowns != nil {
		key := fmt.Sprintf("%d:%s", userID, command)
		if l.cooldowns.Has(key) {
			return Ignore
		}
		defer func() {
			l.cooldowns.Set(key, struct{}{}, ttlcache.DefaultTTL)
		}()
	}

	if !l.bucket(userID).Allow() {
		if l.warned.Has(userID) {
			return Ignore
		}
		l.warned.Set(userID, time.Now(), ttlcache.DefaultTTL)
		return Warn
	}
	return Allow
}

// Stop shuts down the TTL janitors. The Limiter must not be used after.
func (l *Limiter) Stop() {
	l.warned.Stop()
	if l.cooldowns != nil {
		l.cooldowns.Stop()
	}
}

func (l *Limiter) bucket(userID int64) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[userID]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[userID] = b
	}
	return b
}
