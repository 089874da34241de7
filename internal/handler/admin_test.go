package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

func TestListCodes(t *testing.T) {
	codes := newFakeCodeStore()
	usedAt := time.Now().UTC()
	codes.seed(model.StaffCode{Code: "1111111111", ExpiresAt: usedAt.Add(time.Hour)})
	codes.seed(model.StaffCode{Code: "2222222222", Used: true, UsedAt: &usedAt, ExpiresAt: usedAt.Add(time.Hour)})
	h := NewAdminHandler(codes, &fakePerfStore{})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/codes", "")
	require.NoError(t, h.ListCodes(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Codes   []model.StaffCode `json:"codes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Codes, 2)

	byCode := map[string]model.StaffCode{}
	for _, code := range resp.Codes {
		byCode[code.Code] = code
	}
	assert.False(t, byCode["1111111111"].Used)
	assert.Nil(t, byCode["1111111111"].UsedAt)
	assert.True(t, byCode["2222222222"].Used)
	assert.NotNil(t, byCode["2222222222"].UsedAt)
}

func TestGetPerformanceSummary(t *testing.T) {
	now := time.Now().UTC()
	perf := &fakePerfStore{rows: []model.ApiPerformance{
		{Endpoint: "/api/staff", Method: "GET", Success: true, StatusCode: 200, CreatedAt: now.Add(-time.Hour)},
		{Endpoint: "/api/staff/register", Method: "POST", Success: false, StatusCode: 400, CreatedAt: now.Add(-2 * time.Hour)},
		{Endpoint: "/api/auth/login", Method: "POST", Success: true, StatusCode: 200, CreatedAt: now.Add(-30 * 24 * time.Hour)}, // outside default window
	}}
	h := NewAdminHandler(newFakeCodeStore(), perf)

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/performance", "")
	require.NoError(t, h.GetPerformance(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalRequests      int                    `json:"totalRequests"`
		SuccessfulRequests int                    `json:"successfulRequests"`
		FailedRequests     int                    `json:"failedRequests"`
		PerformanceLogs    []model.ApiPerformance `json:"performanceLogs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// The default window is the last seven days; the month-old row is out.
	assert.Equal(t, 2, resp.TotalRequests)
	assert.Equal(t, 1, resp.SuccessfulRequests)
	assert.Equal(t, 1, resp.FailedRequests)
	assert.Len(t, resp.PerformanceLogs, 2)
}

func TestGetPerformanceExplicitRange(t *testing.T) {
	now := time.Now().UTC()
	perf := &fakePerfStore{rows: []model.ApiPerformance{
		{Endpoint: "/api/staff", Method: "GET", Success: true, StatusCode: 200, CreatedAt: now.Add(-30 * 24 * time.Hour)},
	}}
	h := NewAdminHandler(newFakeCodeStore(), perf)

	start := now.Add(-40 * 24 * time.Hour).Format("2006-01-02")
	end := now.Format("2006-01-02")
	c, rec := newTestContext(t, http.MethodGet,
		"/api/admin/performance?startDate="+start+"&endDate="+end, "")
	require.NoError(t, h.GetPerformance(c))

	var resp struct {
		TotalRequests int `json:"totalRequests"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalRequests)
}

func TestGetPerformanceBadDate(t *testing.T) {
	h := NewAdminHandler(newFakeCodeStore(), &fakePerfStore{})

	c, _ := newTestContext(t, http.MethodGet, "/api/admin/performance?startDate=notadate", "")
	err := h.GetPerformance(c)
	require.Error(t, err)
}
