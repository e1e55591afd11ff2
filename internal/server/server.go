package server

import (
	"net"
	"strings"

	"github.com/verve-web/verve/config"
	"github.com/verve-web/verve/http"
	"github.com/verve-web/verve/internal/obs"
	"github.com/verve-web/verve/internal/wire"
	"github.com/verve-web/verve/router"
)

// Server orchestrates a single connection end-to-end: parse the request,
// split off the query string, dispatch through the route table and write
// each produced response back. One instance serves all connections; the
// per-connection state (the write buffer) is created inside ServeConn.
type Server struct {
	router        *router.Router
	parser        *wire.Parser
	log           obs.Logger
	writeBuffSize int
}

func New(r *router.Router, cfg *config.Config, log obs.Logger) *Server {
	return &Server{
		router:        r,
		parser:        wire.NewParser(log, cfg.NET.ReadBufferSize),
		log:           log,
		writeBuffSize: cfg.NET.WriteBufferSize,
	}
}

// ServeConn owns the connection: it is always closed on return. Failures stay
// scoped to the connection; nothing propagates to the accept loop.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	request, err := s.parser.Parse(conn)
	if err != nil {
		s.log.Logf(obs.Error, "%s: failed to parse request: %v", conn.RemoteAddr(), err)
		return
	}

	request.RemoteAddr = conn.RemoteAddr()

	if q := strings.IndexByte(request.Path, '?'); q != -1 {
		s.parser.ParseQuery(request.Path[q+1:], request.Query)
		request.Path = request.Path[:q]
	}

	s.log.Logf(obs.Info, "[%s]: %s %s", request.RemoteAddr, request.Method, request.Path)

	serializer := wire.NewSerializer(s.writeBuffSize)
	err = s.router.Dispatch(request, func(response *http.Response) error {
		return serializer.Write(response.Reveal(), conn)
	})
	if err != nil {
		s.log.Logf(obs.Error, "[%s]: failed to write response: %v", request.RemoteAddr, err)
	}
}
