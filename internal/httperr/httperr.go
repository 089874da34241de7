// Package httperr defines the typed errors raised by handlers and the
// central Echo error handler that renders them.  Every component returns an
// *Error carrying an HTTP status code; the boundary is the single place a
// failure becomes a client-visible JSON body.
package httperr

import (
    "errors"
    "log"
    "net/http"
    "runtime/debug"

    "github.com/labstack/echo/v4"
)

// Error is an application error with an explicit HTTP status code.
type Error struct {
    StatusCode int    `json:"statusCode"`
    Message    string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// New builds an *Error with an arbitrary status code.
func New(status int, msg string) *Error { return &Error{StatusCode: status, Message: msg} }

// BadRequest flags malformed or missing input (400).
func BadRequest(msg string) *Error { return New(http.StatusBadRequest, msg) }

// Unauthorized flags missing or failed authentication (401).
func Unauthorized(msg string) *Error { return New(http.StatusUnauthorized, msg) }

// Forbidden flags an authenticated caller acting outside its rights (403).
func Forbidden(msg string) *Error { return New(http.StatusForbidden, msg) }

// NotFound flags an absent resource (404).
func NotFound(msg string) *Error { return New(http.StatusNotFound, msg) }

// Internal is the catch-all for unclassified failures (500).
func Internal(msg string) *Error { return New(http.StatusInternalServerError, msg) }

// envelope is the JSON error body.  The stack field is populated only in
// the development environment.
type envelope struct {
    Success    bool   `json:"success"`
    StatusCode int    `json:"statusCode"`
    Message    string `json:"message"`
    Stack      string `json:"stack,omitempty"`
}

// NewHTTPErrorHandler returns an Echo error handler rendering the error
// envelope.  Typed *Error values keep their status and message; Echo's own
// HTTP errors are passed through; anything else becomes a 500 with a
// generic message so internals never leak to clients.
func NewHTTPErrorHandler(env string) echo.HTTPErrorHandler {
    dev := env == "development"
    return func(err error, c echo.Context) {
        if c.Response().Committed {
            return
        }
        status := http.StatusInternalServerError
        msg := "Internal Server Error"

        var appErr *Error
        var echoErr *echo.HTTPError
        switch {
        case errors.As(err, &appErr):
            status = appErr.StatusCode
            msg = appErr.Message
        case errors.As(err, &echoErr):
            status = echoErr.Code
            if s, ok := echoErr.Message.(string); ok {
                msg = s
            }
        default:
            log.Printf("unhandled error: %v", err)
        }

        body := envelope{Success: false, StatusCode: status, Message: msg}
        if dev {
            log.Printf("error stack: %v\n%s", err, debug.Stack())
            body.Stack = string(debug.Stack())
        }
        if c.Request().Method == http.MethodHead {
            _ = c.NoContent(status)
            return
        }
        _ = c.JSON(status, body)
    }
}
