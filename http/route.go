package http

import "errors"

var (
	ErrDuplicateRoute = errors.New("http: route already registered")
	ErrRouterSealed   = errors.New("http: router is sealed")
)

// Handler produces a response for a matched route. A returned error (or a
// panic) is converted by the router into a 500 response and never reaches
// the adapter.
type Handler func(res *Response) error

type Middleware func(next Handler) Handler

type Route struct {
	Method  string
	Path    string
	Handler Handler
}

// NotFoundHandler is the default fallback for unmatched (method, path) pairs.
var NotFoundHandler Handler = func(res *Response) error {
	res.WithStatus(StatusNotFound).WithJson(map[string]string{"error": "Not found!"})
	return nil
}
