package server

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// IPRateLimiter keeps a token bucket per client IP. Idle visitors are
// evicted by a background sweep until Close is called.
type IPRateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor

	done      chan struct{}
	closeOnce sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter allows perSecond requests per IP with an equal burst.
func NewIPRateLimiter(perSecond float64) *IPRateLimiter {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	rl := &IPRateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
		visitors: make(map[string]*visitor),
		done:     make(chan struct{}),
	}
	go rl.janitor(time.Minute)
	return rl
}

// Allow reports whether ip may issue one more request now.
func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()

	return v.limiter.Allow()
}

// Sweep drops visitors idle for longer than the idle TTL and returns how many went.
func (rl *IPRateLimiter) Sweep() int {
	cutoff := rl.now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	n := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			n++
		}
	}
	return n
}

// Close stops the background sweep.
func (rl *IPRateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.done) })
}

func (rl *IPRateLimiter) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.Sweep()
		}
	}
}

// Handler is the fiber middleware enforcing the limit.
func (rl *IPRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests",
				"ray_id":  RayID(c),
			})
		}
		return c.Next()
	}
}
