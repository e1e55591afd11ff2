package http

import (
	"net"

	"github.com/verve-web/verve/http/method"
	"github.com/verve-web/verve/kv"
)

// Request carries a single parsed request. It is created once per accepted
// connection and mutated only to attach route and query parameters during
// matching.
type Request struct {
	// RemoteAddr is the address of the peer the request arrived from. May be nil
	// when the request was constructed outside a real connection (e.g. in tests).
	RemoteAddr net.Addr
	Method     method.Method
	// Path is the route portion of the request target, without the query string.
	Path string
	// Proto is the protocol version as sent by the client, without the "HTTP/"
	// prefix. E.g. "1.1".
	Proto   string
	Headers *kv.Storage
	// Body holds the raw request body, read out in full according to
	// Content-Length. Nil when the request carried none.
	Body []byte
	// Params contains route parameters bound during matching, keyed by the
	// segment name without the leading colon (":id" binds under "id").
	Params *kv.Storage
	Query  *kv.Storage
}

// NewRequest returns a barebones request with initialized storages. Used by the
// parser and in tests; handlers never construct requests themselves.
func NewRequest() *Request {
	return &Request{
		Headers: kv.New(),
		Params:  kv.New(),
		Query:   kv.New(),
	}
}

// Respond returns a fresh response with the request's protocol version and
// status 200 OK preset.
func (r *Request) Respond() *Response {
	return NewResponse().Proto(r.Proto)
}
