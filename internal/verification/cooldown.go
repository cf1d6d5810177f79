package verification

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cooldownCacheSize = 4096

// Cooldown throttles resend requests per email address. A nil Cooldown
// allows everything.
type Cooldown struct {
	cache *expirable.LRU[string, time.Time]
}

func NewCooldown(window time.Duration) *Cooldown {
	if window <= 0 {
		return nil
	}
	return &Cooldown{cache: expirable.NewLRU[string, time.Time](cooldownCacheSize, nil, window)}
}

// Allow reports whether a resend for the address may proceed and records the
// attempt when it does.
func (c *Cooldown) Allow(email string) bool {
	if c == nil {
		return true
	}
	key := strings.TrimSpace(strings.ToLower(email))
	if _, ok := c.cache.Get(key); ok {
		return false
	}
	c.cache.Add(key, time.Now())
	return true
}
