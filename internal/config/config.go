package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time is used for interval and TTL settings
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.  The JWT secrets are kept separate so access and refresh
// tokens can never be swapped for one another.
type Config struct {
    Env              string        // application environment (e.g. "development", "production")
    Port             string        // HTTP port to listen on
    DBUser           string        // database username
    DBPass           string        // database password (optional)
    DBHost           string        // database host address
    DBPort           string        // database port number
    DBName           string        // database name
    DBMaxOpenConns   int           // connection pool: max open connections
    DBMaxIdleConns   int           // connection pool: max idle connections
    DBConnLifetime   time.Duration // connection pool: max connection age
    JWTAccessSecret  string        // secret used to sign access tokens
    JWTRefreshSecret string        // secret used to sign refresh tokens
    AccessTTLMin     int           // access token time-to-live in minutes
    RefreshTTLDays   int           // refresh token time-to-live in days
    BcryptCost       int           // bcrypt cost for password hashing
    AdminEmail       string        // bootstrap administrator email
    AdminPassword    string        // bootstrap administrator password
    CodeTTL          time.Duration // staff code lifetime (default 24h)
    ReaperInterval   time.Duration // how often the code reaper sweeps (default 2m)
    ReaperBatch      int           // max codes deleted per sweep (default 10)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Reaper and code
// lifetime settings are optional and fall back to the documented defaults.
func Load() Config {
    return Config{
        Env:              must("APP_ENV"),                              // environment (development/production)
        Port:             must("APP_PORT"),                             // port to bind the HTTP server
        DBUser:           must("DB_USER"),                              // database user
        DBPass:           os.Getenv("DB_PASS"),                         // database password (empty allowed)
        DBHost:           must("DB_HOST"),                              // database host
        DBPort:           must("DB_PORT"),                              // database port
        DBName:           must("DB_NAME"),                              // database name
        DBMaxOpenConns:   atoiDefault(getenv("DB_MAX_OPEN_CONNS", "25"), 25),
        DBMaxIdleConns:   atoiDefault(getenv("DB_MAX_IDLE_CONNS", "25"), 25),
        DBConnLifetime:   parseDur(getenv("DB_CONN_LIFETIME", "30m")), // recycle pooled connections
        JWTAccessSecret:  must("JWT_ACCESS_SECRET"),                    // signing secret for access tokens
        JWTRefreshSecret: must("JWT_REFRESH_SECRET"),                   // signing secret for refresh tokens
        AccessTTLMin:     mustInt("ACCESS_TOKEN_TTL_MIN"),              // TTL for access tokens in minutes
        RefreshTTLDays:   mustInt("REFRESH_TOKEN_TTL_DAYS"),            // TTL for refresh tokens in days
        BcryptCost:       mustInt("BCRYPT_COST"),                       // bcrypt cost factor
        AdminEmail:       must("ADMIN_EMAIL"),                          // seeded admin account email
        AdminPassword:    must("ADMIN_PASSWORD"),                       // seeded admin account password
        CodeTTL:          parseDur(getenv("CODE_TTL", "24h")),          // staff code lifetime
        ReaperInterval:   parseDur(getenv("REAPER_INTERVAL", "2m")),    // sweep interval
        ReaperBatch:      atoiDefault(getenv("REAPER_BATCH", "10"), 10), // sweep batch cap
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// atoiDefault converts s to an integer, returning def when the value is
// missing, malformed or not positive.
func atoiDefault(s string, def int) int {
    n, err := strconv.Atoi(s)
    if err != nil || n <= 0 {
        return def
    }
    return n
}
