package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleClientTTL is how long a client's limiter survives without requests.
const idleClientTTL = 10 * time.Minute

// RateLimiter throttles POST /auth/login per client host so password
// guessing is slow. Each host gets its own rate.Limiter with a burst equal
// to the per-minute allowance.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
	stop    chan struct{}
	done    sync.WaitGroup
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a limiter that forgets idle clients every
// cleanupInterval. Stop it on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	return newRateLimiter(cleanupInterval, time.Now)
}

func newRateLimiter(cleanupInterval time.Duration, now func() time.Time) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		now:     now,
		stop:    make(chan struct{}),
	}
	rl.done.Add(1)
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the cleanup goroutine and waits for it.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	rl.done.Wait()
}

// Limit admits perMinute requests per client host. Rejections are a 429 with
// Retry-After and the usual {"message": ...} body.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(perMinute))
	retryAfter := strconv.Itoa(int(60/perMinute) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			if !rl.limiter(hostOf(r), every, perMinute, now).AllowN(now, 1) {
				w.Header().Set("Retry-After", retryAfter)
				writeMessage(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(host string, every rate.Limit, burst int, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[host]
	if !ok {
		c = &client{lim: rate.NewLimiter(every, burst)}
		rl.clients[host] = c
	}
	c.lastSeen = now
	return c.lim
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	defer rl.done.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.forgetIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) forgetIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for host, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleClientTTL {
			delete(rl.clients, host)
		}
	}
}

func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// hostOf drops the port so reconnects from one machine share a limiter.
func hostOf(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
