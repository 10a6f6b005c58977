// Package ratelimit bounds login attempts per key (username or remote
// address). It exists to slow credential guessing; it is not a general
// request throttle.
package ratelimit

// Config holds the per-window attempt limits. A limit of zero disables the
// window.
type Config struct {
	PerMinute int
	PerHour   int
}

// Limiter reports whether another attempt is allowed for the key.
type Limiter interface {
	Allow(key string, cfg Config) (bool, error)
}

// Bound ties a limiter to a fixed config so callers only pass the key.
type Bound struct {
	limiter Limiter
	cfg     Config
}

func Bind(limiter Limiter, cfg Config) *Bound {
	return &Bound{limiter: limiter, cfg: cfg}
}

func (b *Bound) Allow(key string) (bool, error) {
	return b.limiter.Allow(key, b.cfg)
}
