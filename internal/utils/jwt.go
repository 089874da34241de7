package utils // package utils provides helper functions for token creation and code generation

import (
    "errors" // sentinel errors for token verification outcomes
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens are short-lived and sent in the
// Authorization header when calling protected endpoints.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// RefreshToken represents a long-lived token used to obtain new access
// tokens.  Unlike the access token it carries no role claim and is signed
// with its own secret.  The issued string is stored verbatim on the user
// row so a refresh attempt can be matched against exactly one active
// session.
type RefreshToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // UTC expiration time
}

// ErrTokenExpired is returned by the parse helpers when a token's exp claim
// lies in the past.  ErrTokenInvalid covers every other verification
// failure (bad signature, malformed payload, wrong algorithm).
var (
    ErrTokenExpired = errors.New("token expired")
    ErrTokenInvalid = errors.New("invalid token")
)

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's role, and a TTL in minutes.  The
// JWT carries the claims the dashboard middleware relies on: id, role,
// expiration (exp) and issued at (iat).
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "id":   userID,
        "role": role,
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// NewRefreshToken builds and signs an HS256 refresh JWT containing only the
// user ID.  The ttlDays parameter controls how many days the refresh token
// is valid.
func NewRefreshToken(secret string, userID uint64, ttlDays int) (RefreshToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
    claims := jwt.MapClaims{
        "id":  userID,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return RefreshToken{}, err
    }
    return RefreshToken{Token: signed, Exp: exp}, nil
}

// ParseUserToken verifies an HS256 JWT with the given secret and returns the
// user ID and role claims.  The role is empty for refresh tokens, which do
// not carry one.  Expired tokens yield ErrTokenExpired; every other failure
// yields ErrTokenInvalid so callers never leak parser internals to clients.
func ParseUserToken(secret, raw string) (userID uint64, role string, err error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Only HMAC signatures are ever issued; reject anything else.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return 0, "", ErrTokenExpired
        }
        return 0, "", ErrTokenInvalid
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok || !tok.Valid {
        return 0, "", ErrTokenInvalid
    }
    // Numeric JSON claims decode as float64.
    idVal, ok := claims["id"].(float64)
    if !ok || idVal <= 0 {
        return 0, "", ErrTokenInvalid
    }
    if r, ok := claims["role"].(string); ok {
        role = r
    }
    return uint64(idVal), role, nil
}
