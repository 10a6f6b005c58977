package ratelimit

import (
	"sync"
	"time"
)

// sweepInterval sets how often the limiter walks the whole map to drop keys
// whose attempts have all aged out.
const sweepInterval = 10 * time.Minute

// MemoryLimiter is the single-node sliding-window limiter, also used in
// tests. Same semantics as RedisLimiter without the external dependency.
type MemoryLimiter struct {
	mu        sync.Mutex
	attempts  map[string][]time.Time
	lastSweep time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		attempts:  make(map[string][]time.Time),
		lastSweep: time.Now(),
	}
}

func (l *MemoryLimiter) Allow(key string, cfg Config) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	kept := prune(l.attempts[key], now)

	if cfg.PerHour > 0 && len(kept) >= cfg.PerHour {
		l.attempts[key] = kept
		return false, nil
	}

	if cfg.PerMinute > 0 {
		inMinute := 0
		for _, at := range kept {
			if now.Sub(at) < time.Minute {
				inMinute++
			}
		}
		if inMinute >= cfg.PerMinute {
			l.attempts[key] = kept
			return false, nil
		}
	}

	l.attempts[key] = append(kept, now)
	return true, nil
}

// sweep drops keys whose attempts have all left the hour window so the map
// does not grow with every distinct key ever seen. Caller holds the lock.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	l.lastSweep = now

	for key, attempts := range l.attempts {
		if kept := prune(attempts, now); len(kept) == 0 {
			delete(l.attempts, key)
		} else {
			l.attempts[key] = kept
		}
	}
}

func prune(attempts []time.Time, now time.Time) []time.Time {
	kept := attempts[:0]
	for _, at := range attempts {
		if now.Sub(at) < time.Hour {
			kept = append(kept, at)
		}
	}
	return kept
}
