package middleware

import (
	"hotelPricing/business/pricing"
	"hotelPricing/pkg/logger"
	"net/http"
	"time"

	jsonres "hotelPricing/pkg/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-ID"

// TraceID reuses the caller's X-Trace-ID or mints one, and puts it on the
// request context so every log line of the request carries it.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			tid := req.Header.Get(HeaderTraceID)
			if tid == "" {
				tid = uuid.NewString()
			}

			c.SetRequest(req.WithContext(pricing.ContextWithTraceID(req.Context(), tid)))
			c.Response().Header().Set(HeaderTraceID, tid)

			return next(c)
		}
	}
}

// RequestLogger logs one line per request.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("http_request",
				"trace_id", pricing.TraceIDFromContext(c.Request().Context()),
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

// ErrorHandler renders errors that reach echo in the common error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	} else {
		logger.Error("unhandled error", "path", c.Path(), "error", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, jsonres.Error(errorCode(code), message, nil))
	}
	if writeErr != nil {
		logger.Error("failed to write error response", "error", writeErr)
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusGatewayTimeout, http.StatusServiceUnavailable:
		return "TIMEOUT"
	default:
		return "INTERNAL_ERROR"
	}
}
