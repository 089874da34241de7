package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/sendistephen/dfcu-bank-hr-management-system/internal/utils"
)

// Context keys under which JWTAuth stores the authenticated caller's
// identity.  Handlers read them back with c.Get().
const (
    CtxUserID = "user_id"
    CtxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's id and role claims into the request context.  The
// provided secret must match the one used when issuing access tokens.  This
// middleware wraps every protected route so handlers can rely on
// c.Get(CtxUserID) (uint64) and c.Get(CtxRole) (string) being present.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.  If
            // it doesn't, respond with 401 Unauthorized.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{
                    "success": false, "statusCode": http.StatusUnauthorized,
                    "message": "You are not authorized to access this resource",
                })
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            userID, role, err := utils.ParseUserToken(secret, raw)
            if err != nil || role == "" {
                // Expired, forged or role-less (refresh) tokens are all
                // rejected the same way; the client only learns the token
                // did not pass.
                return c.JSON(http.StatusUnauthorized, echo.Map{
                    "success": false, "statusCode": http.StatusUnauthorized,
                    "message": "Invalid token or token payload",
                })
            }

            c.Set(CtxUserID, userID)
            c.Set(CtxRole, role)
            return next(c)
        }
    }
}
