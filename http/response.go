package http

import (
	"io"

	"github.com/verve-web/verve/http/status"
	"github.com/verve-web/verve/kv"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// why 7? I don't know. There's no theory behind this number nor researches.
// It can be adjusted to 10 as well, but why you would ever need to do this?
const preallocRespHeaders = 7

const defaultProto = "1.1"

// Attachment is a sized stream source for a response body. A non-positive Size
// means the size isn't known in advance; in that case no Content-Length is
// emitted and the body is delimited by closing the connection.
type Attachment struct {
	Content io.Reader
	Size    int
}

// Fields is the bare set of values a response consists of. Serialization
// consumes it directly; handlers should build it through Response instead.
type Fields struct {
	Proto      string
	Code       status.Code
	Headers    []kv.Pair
	Body       []byte
	Attachment Attachment
}

// Response is a fluent builder over Fields. It is consumed exactly once by
// serialization and must not be modified afterwards.
type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set
// to 200 OK, protocol version 1.1 and pre-allocated space for extra headers.
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Proto:   defaultProto,
			Code:    status.OK,
			Headers: make([]kv.Pair, 0, preallocRespHeaders),
		},
	}
}

// Proto overrides the protocol version put onto the status line, without the
// "HTTP/" prefix.
func (r *Response) Proto(proto string) *Response {
	r.fields.Proto = proto
	return r
}

// Code sets a response code.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Header appends extra header values to a key. Already existing entries aren't
// overridden, headers are written out in the order they were added.
func (r *Response) Header(key string, values ...string) *Response {
	for i := range values {
		r.fields.Headers = append(r.fields.Headers, kv.Pair{
			Key:   key,
			Value: values[i],
		})
	}

	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// JSON sets the response's body to the value's JSON encoding and attaches a
// corresponding Content-Type header.
func (r *Response) JSON(model any) *Response {
	b, err := json.Marshal(model)
	if err != nil {
		return r.Error(err)
	}

	return r.Header("Content-Type", "application/json").Bytes(b)
}

// Attachment sets a stream as the response's body. Pass a positive size if it
// is known in advance, so Content-Length framing stays intact.
func (r *Response) Attachment(content io.Reader, size int) *Response {
	r.fields.Attachment = Attachment{
		Content: content,
		Size:    size,
	}
	return r
}

// Error sets the response code based on the error. status.HTTPError carries its
// own code, anything else is treated as 500 Internal Server Error. The error
// message is used as the body.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	if httpErr, ok := err.(status.HTTPError); ok {
		return r.Code(httpErr.Code).String(httpErr.Message)
	}

	return r.Code(status.InternalServerError).String(status.ErrInternalServerError.Error())
}

// Reveal returns the underlying response fields. It is intended for
// serialization and shouldn't be needed in handlers.
func (r *Response) Reveal() Fields {
	return r.fields
}
