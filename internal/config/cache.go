package config

import "time"

// CacheConfig defines settings for the response cache middleware wrapped
// around the performance report.  When Enabled is false or no Redis client is
// configured, caching is disabled.  TTL defines the lifetime of cache
// entries; Prefix namespaces the keys; MaxBodyBytes caps how large a response
// body may be before it is skipped.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults cache responses for 30 seconds, which keeps the dashboard snappy
// without letting the telemetry summary go badly stale.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        TTL:          parseDur(getenv("CACHE_TTL", "30s")),
        Prefix:       getenv("CACHE_PREFIX", "hr:cache"),
        MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
    }
}
