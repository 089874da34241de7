package model

import "time"

// ApiPerformance is a write-once telemetry row recorded for every completed
// HTTP request.  Rows are read back by the admin dashboard and never
// mutated; no retention policy prunes them.
type ApiPerformance struct {
    ID           uint64    `json:"id"`
    Endpoint     string    `json:"endpoint"`
    Method       string    `json:"method"`
    Success      bool      `json:"success"`
    StatusCode   int       `json:"statusCode"`
    ResponseTime int64     `json:"responseTime"` // milliseconds
    CreatedAt    time.Time `json:"createdAt"`
}
