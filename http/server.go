package http

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultShutdownTimeout = 5 * time.Second

// Adapter bridges a wire-level HTTP server to the router contract: it feeds
// the parsed (method, path) into Dispatch and serializes the response back
// onto the wire. The router itself never touches the socket.
func Adapter(router *Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := router.Dispatch(r.Method, r.URL.Path)

		body, err := res.Marshal()
		if err != nil {
			logger.Error("response marshal failed", "method", r.Method, "path", r.URL.Path, "error", err)
			http.Error(w, `{"error": "Internal server error"}`, StatusInternalServerError)
			return
		}

		for name, value := range res.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(res.Status)
		w.Write(body)
	})
}

// Server runs a router behind a long-lived net/http listener. The deployed
// function form and this local form are equivalent adapters over the same
// Dispatch contract.
type Server struct {
	Name            string
	Router          *Router
	ShutdownTimeout time.Duration
}

func NewServer(name string) *Server {
	return &Server{
		Name:            name,
		Router:          NewRouter(),
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// ListenAndServe serves until the context is canceled, then drains the
// listener within ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: otelhttp.NewHandler(Adapter(s.Router), s.Name),
	}

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.ListenAndServe()
	}()

	logger.Info("listening and serving", "name", s.Name, "addr", addr)

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
