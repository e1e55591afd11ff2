package verve

import (
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/verve-web/verve/config"
	"github.com/verve-web/verve/http"
	"github.com/verve-web/verve/http/status"

	"github.com/stretchr/testify/require"
)

func startApp(t *testing.T, configure func(*App)) (addr string, stop func()) {
	t.Helper()

	cfg := config.Default()
	cfg.NET.AcceptLoopInterruptPeriod = 50 * time.Millisecond

	app := New("127.0.0.1:0").Tune(cfg).Quiet()
	configure(app)

	started := make(chan struct{})
	app.NotifyOnStart(func() {
		close(started)
	})

	served := make(chan error, 1)
	go func() {
		served <- app.Serve()
	}()
	<-started

	return app.Addr().String(), func() {
		app.Stop()
		require.NoError(t, <-served)
	}
}

func exchange(t *testing.T, addr, raw string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	// the server never keeps connections alive, so the response ends at EOF
	out, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(out)
}

func TestServe(t *testing.T) {
	addr, stop := startApp(t, func(app *App) {
		app.Get("/hello/:name", http.HandlerFunc(func(request *http.Request) *http.Response {
			return request.Respond().String("hello, " + request.Params.Value("name"))
		}))
		app.Default(http.HandlerFunc(func(request *http.Request) *http.Response {
			return request.Respond().Code(status.NotFound)
		}))
	})
	defer stop()

	t.Run("Routed", func(t *testing.T) {
		out := exchange(t, addr, "GET /hello/world HTTP/1.1\r\nHost: h\r\n\r\n")
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 12\r\n\r\nhello, world", out)
	})

	t.Run("CustomDefaultHandler", func(t *testing.T) {
		out := exchange(t, addr, "GET /nowhere HTTP/1.1\r\n\r\n")
		require.Equal(t, "HTTP/1.1 404 Not Found\r\n\r\n", out)
	})

	t.Run("MalformedRequestJustCloses", func(t *testing.T) {
		out := exchange(t, addr, "BREW /pot HTTP/1.1\r\n\r\n")
		require.Empty(t, out)
	})
}

func TestServePooled(t *testing.T) {
	addr, stop := startApp(t, func(app *App) {
		app.Workers(4)
		app.Get("/ping", http.HandlerFunc(func(request *http.Request) *http.Response {
			return request.Respond().String("pong")
		}))
	})
	defer stop()

	const clients = 16

	outs := make(chan string, clients)
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conn, err := net.Dial("tcp", addr)
			if err != nil {
				outs <- err.Error()
				return
			}
			defer conn.Close()

			if _, err = conn.Write([]byte("GET /ping HTTP/1.1\r\n\r\n")); err != nil {
				outs <- err.Error()
				return
			}

			raw, err := io.ReadAll(conn)
			if err != nil {
				outs <- err.Error()
				return
			}

			outs <- string(raw)
		}()
	}
	wg.Wait()
	close(outs)

	for out := range outs {
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 4\r\n\r\npong", out)
	}
}

func TestNewPanicsOnBadAddr(t *testing.T) {
	require.Panics(t, func() {
		New("no port at all")
	})
}
