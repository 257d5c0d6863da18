package http

import "encoding/json"

// Response is built fresh per dispatch and owned by the caller that produced
// it. Body holds any JSON-serializable value; a string body is written as-is
// so pre-encoded payloads pass through untouched.
type Response struct {
	Status  int
	Headers map[string]string
	Body    any
}

func NewResponse() *Response {
	return &Response{
		Status:  StatusOK,
		Headers: make(map[string]string),
	}
}

func (res *Response) WithStatus(status int) *Response {
	res.Status = status
	return res
}

func (res *Response) WithHeader(name, value string) *Response {
	res.Headers[name] = value
	return res
}

func (res *Response) WithJson(payload any) *Response {
	res.Headers["Content-Type"] = "application/json"
	res.Body = payload
	return res
}

func (res *Response) WithText(payload string) *Response {
	res.Headers["Content-Type"] = "text/plain"
	res.Body = payload
	return res
}

// Marshal renders the body for the wire.
func (res *Response) Marshal() ([]byte, error) {
	if res.Body == nil {
		return nil, nil
	}

	if vStr, ok := res.Body.(string); ok {
		return []byte(vStr), nil
	}

	return json.Marshal(res.Body)
}
