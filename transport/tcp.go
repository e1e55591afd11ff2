package transport

import (
	"errors"
	"net"
	"os"
	"sync/atomic"
	"time"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

// TCP wraps a listener with a stoppable accept loop. The loop hands each
// accepted connection to a callback; the callback owns the connection from
// then on, including closing it.
type TCP struct {
	l    listener
	stop atomic.Bool
}

func NewTCP() *TCP {
	return new(TCP)
}

func (t *TCP) Bind(addr string) error {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return err
	}

	t.l, err = net.ListenTCP("tcp", tcpaddr)

	return err
}

// Addr returns the bound address. Valid only after Bind succeeded.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen accepts connections until Stop is called or Accept fails. The
// interrupt period bounds how long a pending Accept may delay noticing Stop.
// Accepting never pauses on its own: backpressure, if any, comes from the
// callback blocking.
func (t *TCP) Listen(interrupt time.Duration, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		if err := t.l.SetDeadline(time.Now().Add(interrupt)); err != nil {
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}

			return err
		}

		cb(conn)
	}

	return nil
}

// Stop makes Listen return after at most the interrupt period. Connections
// already handed out aren't affected.
func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() error {
	return t.l.Close()
}
