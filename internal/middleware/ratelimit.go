package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/errcode"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/response"
)

const rateLimitMaxKeys = 65536

type rateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
}

// RateLimit allows one request per client per route within the window.
// A zero window disables limiting.
func RateLimit(window time.Duration) gin.HandlerFunc {
	limiter := &rateLimiter{
		window: window,
		last:   make(map[string]time.Time),
	}
	return limiter.handle
}

func (l *rateLimiter) handle(c *gin.Context) {
	if l.window <= 0 {
		c.Next()
		return
	}
	ip := c.ClientIP()
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	key := strings.Join([]string{ip, path}, "|")

	now := time.Now()
	l.mu.Lock()
	last, exists := l.last[key]
	if exists && now.Sub(last) < l.window {
		l.mu.Unlock()
		logutil.GetLogger(c.Request.Context()).Warn("rate limit hit",
			zap.String("ip", ip),
			zap.String("path", path))
		response.Error(c, http.StatusTooManyRequests, errcode.ErrTooMany, "too many requests")
		c.Abort()
		return
	}
	if len(l.last) >= rateLimitMaxKeys {
		l.last = make(map[string]time.Time)
	}
	l.last[key] = now
	l.mu.Unlock()
	c.Next()
}
