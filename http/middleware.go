package http

import (
	"fmt"

	"github.com/google/uuid"
)

// RecoverMiddleware turns a handler panic into an error response instead of
// letting it travel up through Dispatch.
func RecoverMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(res *Response) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("http: recovered: %v", rec)
				}
			}()

			return next(res)
		}
	}
}

// RequestIdMiddleware tags every response with a fresh X-Request-Id header.
func RequestIdMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(res *Response) error {
			res.WithHeader("X-Request-Id", uuid.NewString())
			return next(res)
		}
	}
}

// LogMiddleware reports the handler outcome on the otel log bridge.
func LogMiddleware(route string) Middleware {
	return func(next Handler) Handler {
		return func(res *Response) error {
			err := next(res)
			if err != nil {
				logger.Warn("route handler error", "route", route, "error", err)
			} else {
				logger.Debug("route handled", "route", route, "status", res.Status)
			}

			return err
		}
	}
}
