package ratelimit

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	cleanupInterval = 5 * time.Minute
	idleTTL         = 30 * time.Minute
)

type ipLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	last    time.Time
}

func (l *ipLimiter) touch(now time.Time) {
	l.mu.Lock()
	l.last = now
	l.mu.Unlock()
}

func (l *ipLimiter) idleSince(now time.Time) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return now.Sub(l.last)
}

// Limiter - token bucket на каждый IP адрес клиента
type Limiter struct {
	rps   rate.Limit
	burst int

	limiters sync.Map // map[string]*ipLimiter
}

func New(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		rps:   rate.Limit(rps),
		burst: burst,
	}
}

func (l *Limiter) get(ip string) *ipLimiter {
	if v, ok := l.limiters.Load(ip); ok {
		return v.(*ipLimiter)
	}

	v, _ := l.limiters.LoadOrStore(ip, &ipLimiter{
		limiter: rate.NewLimiter(l.rps, l.burst),
		last:    time.Now(),
	})
	return v.(*ipLimiter)
}

func (l *Limiter) Allow(ip string) bool {
	lim := l.get(ip)
	lim.touch(time.Now())
	return lim.limiter.Allow()
}

// Cleanup удаляет лимитеры, которыми давно не пользовались. Блокируется до отмены ctx.
func (l *Limiter) Cleanup(ctx context.Context) {
	t := time.NewTicker(cleanupInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			l.evict(now, idleTTL)
		}
	}
}

func (l *Limiter) evict(now time.Time, ttl time.Duration) {
	l.limiters.Range(func(key, val any) bool {
		if val.(*ipLimiter).idleSince(now) > ttl {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(remoteIP(r)) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// remoteIP - адрес без порта; X-Forwarded-For разбирает chi middleware.RealIP
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
