package dummy

import (
	"io"
	"net"
	"time"
)

var fakeAddr = &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 1337}

// Conn is an in-memory net.Conn replaying pre-recorded request bytes and
// collecting everything written back. Not safe for concurrent use.
type Conn struct {
	data   []byte
	Out    []byte
	closed bool
	// WriteErr, when set, is returned by every Write call.
	WriteErr error
}

func NewConn(data []byte) *Conn {
	return &Conn{data: data}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.data)
	c.data = c.data[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.WriteErr != nil {
		return 0, c.WriteErr
	}

	c.Out = append(c.Out, b...)

	return len(b), nil
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

func (c *Conn) Closed() bool {
	return c.closed
}

func (c *Conn) LocalAddr() net.Addr {
	return fakeAddr
}

func (c *Conn) RemoteAddr() net.Addr {
	return fakeAddr
}

func (c *Conn) SetDeadline(t time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(t time.Time) error {
	return nil
}
