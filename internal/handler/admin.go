package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/httperr"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

// AdminHandler serves the dashboard-only endpoints: the staff-code listing
// and the API performance report.  Both routes sit behind the ADMIN role
// middleware.
type AdminHandler struct {
	Codes StaffCodeStore
	Perf  PerformanceStore
}

func NewAdminHandler(codes StaffCodeStore, perf PerformanceStore) *AdminHandler {
	return &AdminHandler{Codes: codes, Perf: perf}
}

// ListCodes returns every staff code with its redemption state.
func (h *AdminHandler) ListCodes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	codes, err := h.Codes.ListAll(ctx)
	if err != nil {
		return httperr.Internal("list codes failed")
	}
	if codes == nil {
		codes = []model.StaffCode{}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "codes": codes})
}

// GetPerformance summarizes telemetry rows over an optional date range.
// Without parameters the window is the last seven days ending now.
func (h *AdminHandler) GetPerformance(c echo.Context) error {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -7)
	end := now

	if s := strings.TrimSpace(c.QueryParam("startDate")); s != "" {
		t, err := parseDateOfBirth(s) // same ISO 8601 forms as everywhere else
		if err != nil {
			return httperr.BadRequest("Invalid startDate")
		}
		start = t
	}
	if s := strings.TrimSpace(c.QueryParam("endDate")); s != "" {
		t, err := parseDateOfBirth(s)
		if err != nil {
			return httperr.BadRequest("Invalid endDate")
		}
		end = t
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	logs, err := h.Perf.ListRange(ctx, start, end)
	if err != nil {
		return httperr.Internal("load performance logs failed")
	}
	if logs == nil {
		logs = []model.ApiPerformance{}
	}

	successful := 0
	for _, l := range logs {
		if l.Success {
			successful++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":            true,
		"totalRequests":      len(logs),
		"successfulRequests": successful,
		"failedRequests":     len(logs) - successful,
		"performanceLogs":    logs,
	})
}
