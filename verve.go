package verve

import (
	"fmt"
	"net"

	"github.com/verve-web/verve/config"
	"github.com/verve-web/verve/http"
	"github.com/verve-web/verve/internal/address"
	"github.com/verve-web/verve/internal/obs"
	"github.com/verve-web/verve/internal/pool"
	"github.com/verve-web/verve/internal/server"
	"github.com/verve-web/verve/router"
	"github.com/verve-web/verve/transport"
)

// App wires the pieces together: bind address, route table, execution model.
// Registration methods must all be called before Serve; the table is
// read-only once the server runs.
type App struct {
	addr  address.Address
	cfg   *config.Config
	r     *router.Router
	log   obs.Logger
	tcp   *transport.TCP
	hooks hooks
}

// New returns a new App bound to "host:port" (a bare ":port" binds all
// interfaces). The address is validated eagerly, as there's nothing
// meaningful to do with a misspelled one later.
func New(addr string) *App {
	parsed, err := address.Parse(addr)
	if err != nil {
		panic(fmt.Errorf("verve: listen: bad addr: %v", err))
	}

	log := obs.NewStd(obs.Info)

	return &App{
		addr: parsed,
		cfg:  config.Default(),
		r:    router.New().Log(log),
		log:  log,
		tcp:  transport.NewTCP(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Workers sets an explicit worker pool size. Shortcut for tuning the config.
func (a *App) Workers(count int) *App {
	a.cfg.Workers.Count = count
	return a
}

// Quiet silences all server-side logging.
func (a *App) Quiet() *App {
	a.log = obs.Nop{}
	a.r.Log(a.log)
	return a
}

func (a *App) Get(path string, handler http.Handler) *App {
	a.r.Get(path, handler)
	return a
}

func (a *App) Put(path string, handler http.Handler) *App {
	a.r.Put(path, handler)
	return a
}

func (a *App) Post(path string, handler http.Handler) *App {
	a.r.Post(path, handler)
	return a
}

func (a *App) Delete(path string, handler http.Handler) *App {
	a.r.Delete(path, handler)
	return a
}

// Default replaces the fallback handler for unmatched requests. Out of the
// box unmatched requests are answered with 501 and no body.
func (a *App) Default(handler http.Handler) *App {
	a.r.Default(handler)
	return a
}

// Router exposes the underlying route table for registrations the shortcuts
// don't cover.
func (a *App) Router() *router.Router {
	return a.r
}

// NotifyOnStart calls the callback right before the accept loop starts. The
// bound address is already available at that point.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the accept loop has fully stopped.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the actually bound address. Valid once the OnStart hook fired.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve binds the listener and blocks processing connections until Stop is
// called or accepting fails. With Workers configured, connections fan out to
// a fixed-size pool; otherwise they are handled inline, one at a time.
func (a *App) Serve() error {
	if err := a.tcp.Bind(a.addr.String()); err != nil {
		return err
	}

	srv := server.New(a.r, a.cfg, a.log)
	handle := srv.ServeConn

	if size := a.cfg.Workers.PoolSize(); size > 0 {
		p := pool.New(size, srv.ServeConn)
		defer p.Close()
		handle = p.Submit

		a.log.Logf(obs.Info, "serving on %s with %d workers", a.addr, size)
	} else {
		a.log.Logf(obs.Info, "serving on %s", a.addr)
	}

	callIfNotNil(a.hooks.OnStart)
	err := a.tcp.Listen(a.cfg.NET.AcceptLoopInterruptPeriod, handle)
	_ = a.tcp.Close()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop makes Serve return. The call isn't blocking: the accept loop notices
// the stop within the configured interrupt period, and connections already
// being processed run to completion.
func (a *App) Stop() {
	a.tcp.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
