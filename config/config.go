package config

import (
	"runtime"
	"time"
)

type (
	NET struct {
		// ReadBufferSize is the size of the buffered reader wrapped around
		// each connection.
		ReadBufferSize int
		// WriteBufferSize is the initial capacity of the per-connection
		// response buffer.
		WriteBufferSize int
		// AcceptLoopInterruptPeriod controls how often the Accept() call is
		// interrupted in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
	}

	Workers struct {
		// Count sets the worker pool size explicitly. Zero leaves connections
		// to be processed inline on the accept loop, unless Auto is set.
		Count int
		// Auto derives the pool size from the host core count, evaluated once
		// at startup.
		Auto bool
		// CoreMultiplier scales the core count in Auto mode.
		CoreMultiplier int
	}
)

// Config holds settings used across the server: buffer sizing and the
// execution model. The pool size is resolved once at startup and stays
// immutable for the server's lifetime.
//
// Always modify defaults (returned via Default()) instead of initializing the
// struct manually, otherwise zero-valued buffer sizes will bite.
type Config struct {
	NET     NET
	Workers Workers
}

func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            2 * 1024,
			WriteBufferSize:           2 * 1024,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Workers: Workers{
			CoreMultiplier: 3,
		},
	}
}

// PoolSize resolves the effective worker count. Zero means sequential mode.
func (w Workers) PoolSize() int {
	if w.Count > 0 {
		return w.Count
	}

	if w.Auto {
		multiplier := w.CoreMultiplier
		if multiplier < 1 {
			multiplier = 1
		}

		return runtime.NumCPU() * multiplier
	}

	return 0
}
