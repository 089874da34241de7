package config

import (
    "strconv"
    "time"
)

// RateLimitConfig defines the token-bucket limiter applied to the auth
// endpoints.  Capacity is the burst size, RefillTokens are added every
// RefillInterval, and TTL bounds how long idle bucket state lives in Redis.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    Prefix         string
}

// LoadRateLimitConfig reads environment variables to build a RateLimitConfig.
// Defaults allow a burst of 20 requests per client IP, refilling one token
// per second.
func LoadRateLimitConfig() RateLimitConfig {
    return RateLimitConfig{
        Enabled:        getenv("RATELIMIT_ENABLED", "true") == "true",
        Capacity:       atoiDefault(getenv("RATELIMIT_CAPACITY", "20"), 20),
        RefillTokens:   atoiDefault(getenv("RATELIMIT_REFILL_TOKENS", "1"), 1),
        RefillInterval: parseDur(getenv("RATELIMIT_REFILL_INTERVAL", "1s")),
        TTL:            parseDur(getenv("RATELIMIT_TTL", "10m")),
        Prefix:         getenv("RATELIMIT_PREFIX", "hr:ratelimit"),
    }
}

// atoi converts s to an int, returning zero on failure.  Kept for the cache
// config which treats zero as "unlimited".
func atoi(s string) int {
    i, _ := strconv.Atoi(s)
    return i
}
