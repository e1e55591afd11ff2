package pool

import (
	"net"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/verve-web/verve/transport/dummy"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	t.Run("ProcessesEverySubmission", func(t *testing.T) {
		var processed atomic.Int64
		p := New(4, func(conn net.Conn) {
			processed.Add(1)
		})

		for i := 0; i < 100; i++ {
			p.Submit(dummy.NewConn(nil))
		}
		p.Close()

		require.EqualValues(t, 100, processed.Load())
	})

	t.Run("ConcurrentWorkers", func(t *testing.T) {
		const workers = 3

		var (
			mu      sync.Mutex
			started = make(chan struct{}, workers)
			release = make(chan struct{})
			seen    []net.Conn
		)

		p := New(workers, func(conn net.Conn) {
			started <- struct{}{}
			<-release

			mu.Lock()
			seen = append(seen, conn)
			mu.Unlock()
		})

		for i := 0; i < workers; i++ {
			p.Submit(dummy.NewConn(nil))
		}

		// all workers must pick up a connection each, proving they run in parallel
		for i := 0; i < workers; i++ {
			<-started
		}

		close(release)
		p.Close()
		require.Len(t, seen, workers)
	})
}
