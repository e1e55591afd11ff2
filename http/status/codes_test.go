package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("Bijection", func(t *testing.T) {
		seen := make(map[Status]Code, len(List))

		for _, code := range List {
			text := Text(code)
			require.NotEqual(t, unknownStatus, text, "code %d has no reason phrase", code)

			owner, occupied := seen[text]
			require.False(t, occupied, "codes %d and %d share %q", owner, code, text)
			seen[text] = code
		}
	})

	t.Run("CanonicalPhrases", func(t *testing.T) {
		require.Equal(t, Status("OK"), Text(OK))
		require.Equal(t, Status("Not Found"), Text(NotFound))
		require.Equal(t, Status("I'm a teapot"), Text(Teapot))
		require.Equal(t, Status("Not Implemented"), Text(NotImplemented))
		require.Equal(t, Status("Network Authentication Required"), Text(NetworkAuthenticationRequired))
	})

	t.Run("OutsideEnumeration", func(t *testing.T) {
		require.False(t, Known(Code(999)))
		require.False(t, Known(Code(42)))
		require.True(t, Known(Teapot))
	})
}
