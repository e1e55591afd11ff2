package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	t.Run("DefaultIsSequential", func(t *testing.T) {
		require.Zero(t, Default().Workers.PoolSize())
	})

	t.Run("Explicit", func(t *testing.T) {
		require.Equal(t, 8, Workers{Count: 8}.PoolSize())
	})

	t.Run("ExplicitBeatsAuto", func(t *testing.T) {
		require.Equal(t, 2, Workers{Count: 2, Auto: true, CoreMultiplier: 3}.PoolSize())
	})

	t.Run("Auto", func(t *testing.T) {
		require.Equal(t, runtime.NumCPU()*3, Workers{Auto: true, CoreMultiplier: 3}.PoolSize())
	})

	t.Run("AutoClampsMultiplier", func(t *testing.T) {
		require.Equal(t, runtime.NumCPU(), Workers{Auto: true}.PoolSize())
	})
}
