package router

import (
	"github.com/verve-web/verve/http"
	"github.com/verve-web/verve/http/method"
	"github.com/verve-web/verve/http/status"
	"github.com/verve-web/verve/internal/obs"
)

// Route is a single registered (method, pattern, handler) entry.
type Route struct {
	Method  method.Method
	Path    string
	Handler http.Handler

	segments []segment
}

// Router is an ordered route table. Registration happens before the server
// starts; afterwards the table is read-only and safe to share across workers.
type Router struct {
	routes   []Route
	fallback http.Handler
	log      obs.Logger
}

func New() *Router {
	return &Router{
		fallback: http.HandlerFunc(notImplemented),
		log:      obs.Nop{},
	}
}

// notImplemented is the out-of-the-box fallback for unmatched requests.
func notImplemented(request *http.Request) *http.Response {
	return request.Respond().Code(status.NotImplemented)
}

// Log replaces the logger, which is used solely for reporting recovered
// handler panics.
func (r *Router) Log(log obs.Logger) *Router {
	r.log = log
	return r
}

// Route registers a handler for the method and path pattern. Entries are kept
// and later matched in registration order.
func (r *Router) Route(m method.Method, path string, handler http.Handler) *Router {
	r.routes = append(r.routes, Route{
		Method:   m,
		Path:     path,
		Handler:  handler,
		segments: parsePattern(path),
	})

	return r
}

func (r *Router) Get(path string, handler http.Handler) *Router {
	return r.Route(method.GET, path, handler)
}

func (r *Router) Put(path string, handler http.Handler) *Router {
	return r.Route(method.PUT, path, handler)
}

func (r *Router) Post(path string, handler http.Handler) *Router {
	return r.Route(method.POST, path, handler)
}

func (r *Router) Delete(path string, handler http.Handler) *Router {
	return r.Route(method.DELETE, path, handler)
}

// Default replaces the fallback handler invoked when no entry matched.
func (r *Router) Default(handler http.Handler) *Router {
	r.fallback = handler
	return r
}

// Dispatch runs the request against the table. Every matching entry executes
// in registration order and its response is passed to respond immediately;
// there is no short-circuit on the first match. An entry matches only when
// the method is equal and every path segment satisfies the pattern. If none
// matched, the fallback executes instead.
//
// The first respond error aborts dispatching and is returned as-is.
func (r *Router) Dispatch(request *http.Request, respond func(*http.Response) error) error {
	parts := splitPath(request.Path)
	matched := false

	for _, route := range r.routes {
		if route.Method != request.Method {
			continue
		}

		request.Params.Clear()
		if !match(route.segments, parts, request.Params) {
			continue
		}

		matched = true
		if err := respond(r.invoke(route.Handler, request)); err != nil {
			return err
		}
	}

	if !matched {
		request.Params.Clear()
		return respond(r.invoke(r.fallback, request))
	}

	return nil
}

// invoke shields the caller from handler panics. A panicking handler yields
// 500, so the connection still gets an answer and the worker survives.
func (r *Router) invoke(handler http.Handler, request *http.Request) (response *http.Response) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Logf(obs.Error, "recovered panic in handler for %s: %v", request.Path, v)
			response = request.Respond().Code(status.InternalServerError)
		}
	}()

	return handler.Handle(request)
}
