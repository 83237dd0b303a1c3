package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client represents a rate-limited client with request count and last seen timestamp.
type client struct {
	lastSeen time.Time
	count    int
}

// window is the accounting period of RateLimiter. Tests shorten it.
var window = time.Minute

// ipLimiter holds the per-IP counters. Entries idle for longer than a window are
// swept at most once per window, so the map tracks only recently seen clients.
type ipLimiter struct {
	mu        sync.Mutex
	perWindow int
	clients   map[string]*client
	lastSweep time.Time
}

func newIPLimiter(perWindow int) *ipLimiter {
	return &ipLimiter{
		perWindow: perWindow,
		clients:   make(map[string]*client),
		lastSweep: time.Now(),
	}
}

// allow records a request from ip at now and reports whether it fits the budget.
func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > window {
		l.sweep(now)
	}

	cl, ok := l.clients[ip]
	if !ok || now.Sub(cl.lastSeen) > window {
		cl = &client{lastSeen: now, count: 1}
		l.clients[ip] = cl
	} else {
		cl.count++
		cl.lastSeen = now
	}
	return cl.count <= l.perWindow
}

// sweep drops clients idle for more than a window. Caller holds mu.
func (l *ipLimiter) sweep(now time.Time) {
	for ip, cl := range l.clients {
		if now.Sub(cl.lastSeen) > window {
			delete(l.clients, ip)
		}
	}
	l.lastSweep = now
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimiter limits the number of inbound requests per client IP.
//
// Behavior:
//   - Allows up to perWindow requests per window (one minute).
//   - Identifies clients by their IP address.
//   - If limit exceeded, returns HTTP 429 Too Many Requests.
//   - perWindow < 1 disables limiting.
//
// State is in memory and per process.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"error": "rate limit exceeded"}
func RateLimiter(perWindow int) gin.HandlerFunc {
	if perWindow < 1 {
		return func(c *gin.Context) { c.Next() }
	}
	return rateLimit(newIPLimiter(perWindow))
}

func rateLimit(l *ipLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
