package http

import (
	"testing"

	"github.com/freekieb7/pebble/test"
)

func TestNewResponseDefaults(t *testing.T) {
	res := NewResponse()

	test.AssertEqual(t, StatusOK, res.Status)
	if res.Body != nil {
		t.Errorf("Expected empty body, got %v", res.Body)
	}
}

func TestResponseWithJson(t *testing.T) {
	res := NewResponse().WithJson(map[string]string{"message": "Hello from root!"})

	body, err := res.Marshal()
	test.AssertNoError(t, err)
	test.AssertEqual(t, `{"message":"Hello from root!"}`, string(body))
	test.AssertEqual(t, "application/json", res.Headers["Content-Type"])
}

func TestResponseWithJsonPreEncoded(t *testing.T) {
	// A string payload passes through without re-encoding.
	res := NewResponse().WithJson(`{"already":"encoded"}`)

	body, err := res.Marshal()
	test.AssertNoError(t, err)
	test.AssertEqual(t, `{"already":"encoded"}`, string(body))
}

func TestResponseWithText(t *testing.T) {
	res := NewResponse().WithText("hello world")

	body, err := res.Marshal()
	test.AssertNoError(t, err)
	test.AssertEqual(t, "hello world", string(body))
	test.AssertEqual(t, "text/plain", res.Headers["Content-Type"])
}

func TestResponseWithStatusChained(t *testing.T) {
	res := NewResponse().
		WithStatus(StatusCreated).
		WithHeader("Location", "/things/42").
		WithJson(map[string]string{"id": "42"})

	test.AssertEqual(t, StatusCreated, res.Status)
	test.AssertEqual(t, "/things/42", res.Headers["Location"])
}

func TestResponseMarshalEmpty(t *testing.T) {
	body, err := NewResponse().Marshal()

	test.AssertNoError(t, err)
	test.AssertEqual(t, 0, len(body))
}

func TestResponseMarshalUnserializable(t *testing.T) {
	res := NewResponse().WithJson(func() {})

	if _, err := res.Marshal(); err == nil {
		t.Error("Expected marshal error for func body")
	}
}
