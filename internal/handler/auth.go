package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // sentinel sql.ErrNoRows checks
	"errors"
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/config"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/httperr"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/utils"
)

// AuthHandler bundles dependencies for the admin auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type userPart struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login verifies admin credentials, issues an access and a refresh token,
// and stores the refresh token on the user row.  The password hash never
// leaves the handler.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return httperr.BadRequest("Email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return httperr.NotFound("User not found")
		}
		return httperr.Internal("query failed")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return httperr.Unauthorized("Invalid credentials")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTAccessSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return httperr.Internal("issue access failed")
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.JWTRefreshSecret, u.ID, h.Cfg.RefreshTTLDays)
	if err != nil {
		return httperr.Internal("issue refresh failed")
	}
	// Persisting the refresh token binds it to the single active session;
	// any previously issued token stops refreshing from here on.
	if err := h.Users.SetRefreshToken(ctx, u.ID, refresh.Token); err != nil {
		return httperr.Internal("save refresh failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      "Login successful",
		"user":         userPart{ID: u.ID, Email: u.Email, Role: u.Role},
		"accessToken":  access.Token,
		"refreshToken": refresh.Token,
	})
}

// Refresh mints a new access token for a valid refresh token.  The
// presented token must match the one stored on the user row exactly; a
// stale token fails even when its signature is still valid.  The refresh
// token itself is not rotated here.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)
	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		return httperr.Unauthorized("Refresh token not provided")
	}

	userID, _, err := utils.ParseUserToken(h.Cfg.JWTRefreshSecret, raw)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return httperr.Unauthorized("Token expired")
		}
		return httperr.Unauthorized("Invalid token")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return httperr.NotFound("Invalid refresh token")
		}
		return httperr.Internal("load user failed")
	}
	if u.RefreshToken == "" || u.RefreshToken != raw {
		return httperr.NotFound("Invalid refresh token")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTAccessSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return httperr.Internal("issue access failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Token refreshed",
		"accessToken": access.Token,
	})
}

// Logout blanks the stored refresh token that matches the presented one,
// invalidating all future refreshes for that session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)
	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		return httperr.Unauthorized("Refresh token not provided")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Users.ClearRefreshToken(ctx, raw)
	if err != nil {
		return httperr.Internal("logout failed")
	}
	if n == 0 {
		return httperr.NotFound("Invalid refresh token")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}
