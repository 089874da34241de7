package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireRole returns a middleware function that enforces that the
// authenticated caller holds one of the specified roles.  The roles should
// correspond to the values stored in the JWT's "role" claim.  It assumes
// JWTAuth has already extracted the role into the context under CtxRole;
// a missing or disallowed role aborts the request with 403 Forbidden.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    // Build a set of allowed roles for constant-time lookups.
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            v := c.Get(CtxRole)
            role, ok := v.(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{
                    "success": false, "statusCode": http.StatusForbidden,
                    "message": "You are not authorized to perform this action",
                })
            }
            return next(c)
        }
    }
}
