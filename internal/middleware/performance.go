package middleware

import (
    "context"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

// PerformanceRecorder appends one telemetry row per completed request.
// Satisfied by repository.PerformanceRepo.
type PerformanceRecorder interface {
    Record(ctx context.Context, p model.ApiPerformance) error
}

// PerformanceTracker returns a middleware that measures every request and
// writes an ApiPerformance row once the response is finished.  The write is
// fire-and-forget: it runs on its own goroutine with its own timeout, and a
// failed write is logged but never blocks or fails the request being
// measured.
func PerformanceTracker(rec PerformanceRecorder) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()

            if err := next(c); err != nil {
                // Render the error now so the recorded status code is the
                // one the client actually received.
                c.Error(err)
            }

            elapsed := time.Since(start)
            status := c.Response().Status
            row := model.ApiPerformance{
                Endpoint:     c.Request().RequestURI,
                Method:       c.Request().Method,
                Success:      status >= http.StatusOK && status < http.StatusBadRequest,
                StatusCode:   status,
                ResponseTime: elapsed.Milliseconds(),
            }

            go func() {
                ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
                defer cancel()
                if err := rec.Record(ctx, row); err != nil {
                    log.Printf("performance: failed to record %s %s: %v", row.Method, row.Endpoint, err)
                }
            }()
            return nil
        }
    }
}
