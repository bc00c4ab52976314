package httpapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/infrastructure/storage"
)

const (
	sessionCookie = "ff_session"
	sessionCtxKey = "session"

	cookieMaxAge = 24 * 60 * 60
)

// SessionMiddleware resolves the caller's session from the ff_session
// cookie (or a Bearer token for API clients) and starts an anonymous
// one when there is none. The cart lives in this session.
func SessionMiddleware(sessions *storage.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)

		var sess *entity.Session
		if token != "" {
			if found, ok := sessions.Get(token); ok {
				sess = found
			}
		}
		if sess == nil {
			sess = sessions.Create()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sess.Token, cookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func sessionFrom(c *gin.Context) *entity.Session {
	if v, ok := c.Get(sessionCtxKey); ok {
		if sess, ok := v.(*entity.Session); ok {
			return sess
		}
	}
	return nil
}

// RequireUser rejects requests without a logged-in customer.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := sessionFrom(c); !sess.IsUser() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests without a logged-in admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := sessionFrom(c); !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RateLimiter is a per-IP sliding window limiter for the endpoints
// worth protecting from hammering (login, planner).
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	kept := rl.requests[key][:0]
	for _, t := range rl.requests[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= rl.limit {
		rl.requests[key] = kept
		return false
	}
	rl.requests[key] = append(kept, now)
	return true
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-rl.window)
		rl.mu.Lock()
		for key, times := range rl.requests {
			kept := times[:0]
			for _, t := range times {
				if t.After(cutoff) {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(rl.requests, key)
			} else {
				rl.requests[key] = kept
			}
		}
		rl.mu.Unlock()
	}
}
