package http

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type routeKey struct {
	method string
	path   string
}

// Router maps (method, exact path) to a handler. It lives in two phases:
// setup, where Register is allowed, and serving, entered by Seal or the
// first Dispatch, after which the table is read-only. Concurrent Dispatch
// needs no locking; registration is single-threaded setup work.
type Router struct {
	routes   []Route
	index    map[routeKey]int
	notFound Handler
	sealed   atomic.Bool
}

func NewRouter() *Router {
	return &Router{
		routes: make([]Route, 0),
		index:  make(map[routeKey]int),
	}
}

func (router *Router) GET(path string, handler Handler, middleware ...Middleware) error {
	return router.Register(http.MethodGet, path, handler, middleware...)
}

func (router *Router) HEAD(path string, handler Handler, middleware ...Middleware) error {
	return router.Register(http.MethodHead, path, handler, middleware...)
}

func (router *Router) POST(path string, handler Handler, middleware ...Middleware) error {
	return router.Register(http.MethodPost, path, handler, middleware...)
}

func (router *Router) PUT(path string, handler Handler, middleware ...Middleware) error {
	return router.Register(http.MethodPut, path, handler, middleware...)
}

func (router *Router) PATCH(path string, handler Handler, middleware ...Middleware) error {
	return router.Register(http.MethodPatch, path, handler, middleware...)
}

func (router *Router) DELETE(path string, handler Handler, middleware ...Middleware) error {
	return router.Register(http.MethodDelete, path, handler, middleware...)
}

func (router *Router) OPTIONS(path string, handler Handler, middleware ...Middleware) error {
	return router.Register(http.MethodOptions, path, handler, middleware...)
}

// Register adds a route. Middleware wraps the handler at registration time,
// innermost last. Duplicate (method, path) pairs fail with ErrDuplicateRoute
// and leave the table untouched.
func (router *Router) Register(method string, path string, handler Handler, middleware ...Middleware) error {
	if router.sealed.Load() {
		return fmt.Errorf("%w: %s %s", ErrRouterSealed, method, path)
	}

	key := routeKey{method: method, path: path}
	if _, found := router.index[key]; found {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, path)
	}

	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}

	router.routes = append(router.routes, Route{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
	router.index[key] = len(router.routes) - 1

	return nil
}

// NotFound replaces the fallback handler. Setup phase only.
func (router *Router) NotFound(handler Handler) error {
	if router.sealed.Load() {
		return ErrRouterSealed
	}

	router.notFound = handler
	return nil
}

// Seal moves the router into the serving phase. The transition is one-way.
func (router *Router) Seal() {
	router.sealed.Store(true)
}

func (router *Router) Sealed() bool {
	return router.sealed.Load()
}

// Routes returns the table in registration order.
func (router *Router) Routes() []Route {
	routes := make([]Route, len(router.routes))
	copy(routes, router.routes)
	return routes
}

// Dispatch matches (method, path) by exact string equality and invokes the
// matched handler, or the not-found fallback. It always returns a well-formed
// response: handler errors and panics collapse to a generic 500.
func (router *Router) Dispatch(method string, path string) *Response {
	router.sealed.Store(true)

	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)
	dispatchCnt.Add(context.Background(), 1, attrs)

	handler := router.notFound
	if handler == nil {
		handler = NotFoundHandler
	}

	if i, found := router.index[routeKey{method: method, path: path}]; found {
		handler = router.routes[i].Handler
	} else {
		notFoundCnt.Add(context.Background(), 1, attrs)
	}

	res := NewResponse()
	if err := invoke(handler, res); err != nil {
		logger.Error("handler failed", "method", method, "path", path, "error", err)
		failureCnt.Add(context.Background(), 1, attrs)

		return NewResponse().
			WithStatus(StatusInternalServerError).
			WithJson(map[string]string{"error": "Internal server error"})
	}

	return res
}

func invoke(handler Handler, res *Response) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("http: handler panic: %v", rec)
		}
	}()

	return handler(res)
}
