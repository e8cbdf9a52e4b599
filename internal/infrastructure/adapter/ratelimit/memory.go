package ratelimit

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window counter per key held in process memory
type MemoryLimiter struct {
	mu           sync.Mutex
	windows      map[string]*window
	limit        int
	period       time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewMemoryLimiter creates a per-process fixed-window limiter allowing limit hits per period.
// Call StartJanitor to evict expired windows.
func NewMemoryLimiter(limit int, period time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *MemoryLimiter {
	return &MemoryLimiter{
		windows:      make(map[string]*window),
		limit:        limit,
		period:       period,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ coreport.RateLimiter = (*MemoryLimiter)(nil)

// Allow counts one request for key. A rejected request does not consume budget.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (coreport.RateDecision, error) {
	now := l.timeProvider.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}

	if w.count >= l.limit {
		return coreport.RateDecision{Allowed: false, Limit: l.limit, Remaining: 0, ResetAt: w.resetAt}, nil
	}

	w.count++
	return coreport.RateDecision{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - w.count,
		ResetAt:   w.resetAt,
	}, nil
}

// StartJanitor evicts expired windows every interval until Stop is called
func (l *MemoryLimiter) StartJanitor(interval time.Duration) {
	if interval <= 0 || l.stop != nil {
		return
	}
	l.stop = make(chan struct{})
	ticker := l.timeProvider.NewTicker(coreport.Duration(interval))

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := l.evictExpired(); n > 0 {
					l.logger.Debug("Evicted expired rate limit windows", map[string]any{"count": n})
				}
			case <-l.stop:
				return
			}
		}
	}()
}

// Stop ends the janitor and waits for it to exit
func (l *MemoryLimiter) Stop() {
	if l.stop == nil {
		return
	}
	close(l.stop)
	l.wg.Wait()
	l.stop = nil
}

func (l *MemoryLimiter) evictExpired() int {
	now := l.timeProvider.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
			evicted++
		}
	}
	return evicted
}

func (l *MemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
