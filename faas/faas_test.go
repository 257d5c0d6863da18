package faas

import (
	"context"
	"testing"

	"github.com/freekieb7/pebble/http"
	"github.com/freekieb7/pebble/test"
)

func newTestRouter(t *testing.T) *http.Router {
	t.Helper()

	router := http.NewRouter()
	test.AssertNoError(t, router.GET("/", func(res *http.Response) error {
		res.WithJson(map[string]string{"message": "Hello from root!"})
		return nil
	}))
	test.AssertNoError(t, router.GET("/hello", func(res *http.Response) error {
		res.WithJson(map[string]string{"message": "Hello from path!"})
		return nil
	}))

	return router
}

func TestEntrypointDispatch(t *testing.T) {
	handle := Entrypoint(newTestRouter(t))

	res := handle(context.Background(), Request{Method: "GET", Path: "/"})

	test.AssertEqual(t, http.StatusOK, res.StatusCode)
	test.AssertEqual(t, `{"message":"Hello from root!"}`, res.Body)
	test.AssertEqual(t, "application/json", res.Headers["Content-Type"])
}

func TestEntrypointNotFound(t *testing.T) {
	handle := Entrypoint(newTestRouter(t))

	res := handle(context.Background(), Request{Method: "GET", Path: "/dev"})

	test.AssertEqual(t, http.StatusNotFound, res.StatusCode)
	test.AssertEqual(t, `{"error":"Not found!"}`, res.Body)
}

func TestEntrypointSealsRouter(t *testing.T) {
	router := newTestRouter(t)
	Entrypoint(router)

	test.AssertTrue(t, router.Sealed())
}

func TestEntrypointHandlerFailure(t *testing.T) {
	router := http.NewRouter()
	test.AssertNoError(t, router.GET("/panic", func(res *http.Response) error {
		panic("boom")
	}))

	handle := Entrypoint(router)
	res := handle(context.Background(), Request{Method: "GET", Path: "/panic"})

	test.AssertEqual(t, http.StatusInternalServerError, res.StatusCode)
	test.AssertEqual(t, `{"error":"Internal server error"}`, res.Body)
}
