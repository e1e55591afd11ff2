package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		for _, m := range List {
			require.Equal(t, m, Parse(m.String()))
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		for _, token := range []string{"HEAD", "PATCH", "OPTIONS", "get", "GETT", ""} {
			require.Equal(t, Unknown, Parse(token), token)
		}
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "GET", GET.String())
	require.Equal(t, "UNKNOWN", Unknown.String())
}
