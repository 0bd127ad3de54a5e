package middleware

import (
	"net/http"
	"sync"
	"time"

	"comanda/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Sliding-window per-IP rate limiting. Entries for IPs that never return are
// purged periodically to keep the maps bounded.

const purgeInterval = 5 * time.Minute

type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type rateLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	limit   int
	window  time.Duration
	message string
}

func newRateLimiter(limit int, window time.Duration, message string) *rateLimiter {
	r := &rateLimiter{
		entries: make(map[string]*rateEntry),
		limit:   limit,
		window:  window,
		message: message,
	}
	go r.purgeLoop()
	return r
}

func (r *rateLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		r.mu.Lock()
		entry, exists := r.entries[ip]
		if !exists {
			entry = &rateEntry{}
			r.entries[ip] = entry
		}
		r.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			// Reset sliding window
			entry.count = 0
			entry.windowEnd = now.Add(r.window)
		}

		entry.count++
		if entry.count > r.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(r.message))
			return
		}
		c.Next()
	}
}

func (r *rateLimiter) purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		r.mu.Lock()
		for ip, entry := range r.entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(r.entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		remaining := len(r.entries)
		r.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("entries_purged", purged).
				Int("entries_remaining", remaining).
				Msg("rate limiter map purged")
		}
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newRateLimiter(20, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newRateLimiter(limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
