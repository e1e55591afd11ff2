package pool

import (
	"net"
	"sync"
)

// Pool is a fixed-size worker pool processing accepted connections. Its size
// is set once at construction and never changes. The submission queue holds
// one connection per worker; when both workers and queue are saturated,
// Submit blocks the accept loop until a slot frees up.
type Pool struct {
	tasks chan net.Conn
	wg    sync.WaitGroup
}

// New starts size workers, each draining the shared queue with handle. The
// handle callback owns the connection, including closing it; it is expected
// not to panic, as workers don't restart.
func New(size int, handle func(net.Conn)) *Pool {
	p := &Pool{
		tasks: make(chan net.Conn, size),
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker(handle)
	}

	return p
}

func (p *Pool) worker(handle func(net.Conn)) {
	defer p.wg.Done()

	for conn := range p.tasks {
		handle(conn)
	}
}

// Submit hands a connection over to the pool, blocking when saturated.
func (p *Pool) Submit(conn net.Conn) {
	p.tasks <- conn
}

// Close lets the workers drain the queue and waits for them to exit. Submit
// must not be called afterwards.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
