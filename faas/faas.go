// Package faas exposes a router as the single callable entry point a
// function-execution platform invokes per request. The platform's bridge
// hands over a parsed request descriptor and expects a raw response event;
// routing semantics are identical to the long-lived server adapter.
package faas

import (
	"context"

	"github.com/freekieb7/pebble/http"
)

// Request is the raw event the platform bridge delivers.
type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Response is the raw event handed back to the bridge for serialization.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

type HandlerFunc func(ctx context.Context, req Request) Response

// Entrypoint seals the router and returns the invocation function the deploy
// tool wires to its HTTP trigger.
func Entrypoint(router *http.Router) HandlerFunc {
	router.Seal()

	return func(ctx context.Context, req Request) Response {
		res := router.Dispatch(req.Method, req.Path)

		body, err := res.Marshal()
		if err != nil {
			return Response{
				StatusCode: http.StatusInternalServerError,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       `{"error": "Internal server error"}`,
			}
		}

		return Response{
			StatusCode: res.Status,
			Headers:    res.Headers,
			Body:       string(body),
		}
	}
}
