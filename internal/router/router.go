package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing
	"github.com/redis/go-redis/v9"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/config"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/handler"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/middleware"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

// RegisterRoutes registers routes that do not require authentication: the
// health check used by load balancers and the API welcome message.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/api", handler.Welcome)
}

// RegisterAuth registers the admin session endpoints under /api/auth.  None
// of them carry an access token: login exchanges credentials and the other
// two operate on the refresh token in the request body.  The whole group
// sits behind the Redis token bucket to slow down credential stuffing.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rl echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.Use(rl)
	g.POST("/login", a.Login)
	g.POST("/refresh-token", a.Refresh)
	g.POST("/logout", a.Logout)
}

// RegisterStaff registers the staff-code and staff-directory endpoints under
// /api/staff.  Registration is unauthenticated (the staff code is the
// credential); code issuance is admin only; reads and updates require any
// authenticated caller and enforce owner-or-admin inside the handler.
func RegisterStaff(e *echo.Echo, s *handler.StaffHandler, jwtSecret string) {
	g := e.Group("/api/staff")
	g.POST("/register", s.Register)

	auth := middleware.JWTAuth(jwtSecret)
	g.POST("/create-code", s.CreateCode, auth, middleware.RequireRole(model.RoleAdmin))
	g.GET("", s.GetStaff, auth)
	g.PATCH("/update/:employeeNumber", s.UpdateStaff, auth)
}

// RegisterAdmin registers the dashboard endpoints under /api/admin.  Both
// require the ADMIN role; the performance report additionally sits behind
// the Redis response cache keyed by its date-range query.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, rdb *redis.Client, jwtSecret string) {
	g := e.Group("/api/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))
	g.GET("/codes", a.ListCodes)
	g.GET("/performance", a.GetPerformance,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
}
