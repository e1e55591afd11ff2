package http

// Handler processes a single request into a response. Implementations must be
// safe for invocation from multiple workers at once: any captured mutable
// state is the implementer's to synchronize.
type Handler interface {
	Handle(*Request) *Response
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(*Request) *Response

func (f HandlerFunc) Handle(request *Request) *Response {
	return f(request)
}
