package wire

import (
	"fmt"
	"strings"
	"testing"

	"github.com/verve-web/verve/http/method"
	"github.com/verve-web/verve/http/status"
	"github.com/verve-web/verve/internal/obs"
	"github.com/verve-web/verve/kv"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func newParser() *Parser {
	return NewParser(obs.Nop{}, 2048)
}

func TestParse_Positive(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		request, err := newParser().Parse(strings.NewReader("GET /a/b?x=1 HTTP/1.1\r\nHost: h\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/a/b?x=1", request.Path)
		require.Equal(t, "1.1", request.Proto)
		require.Equal(t, "h", request.Headers.Value("Host"))
		require.Nil(t, request.Body)
	})

	t.Run("HeadersKeepOrderAndDuplicates", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nAccept: text/html\r\nHost:  h \r\nAccept: */*\r\n\r\n"
		request, err := newParser().Parse(strings.NewReader(raw))
		require.NoError(t, err)
		require.Equal(t, []kv.Pair{
			{Key: "Accept", Value: "text/html"},
			{Key: "Host", Value: "h"},
			{Key: "Accept", Value: "*/*"},
		}, request.Headers.Unwrap())
	})

	t.Run("ManyGeneratedHeaders", func(t *testing.T) {
		lines := []string{"POST /submit HTTP/1.1"}
		for i := 0; i < 20; i++ {
			lines = append(lines, fmt.Sprintf("X-%s: %s", uniuri.NewLen(8), uniuri.NewLen(16)))
		}
		raw := strings.Join(lines, "\r\n") + "\r\n\r\n"

		request, err := newParser().Parse(strings.NewReader(raw))
		require.NoError(t, err)
		require.Equal(t, 20, request.Headers.Len())
	})

	t.Run("Body", func(t *testing.T) {
		raw := "POST /echo HTTP/1.1\r\nContent-Length: 4\r\n\r\ntest"
		request, err := newParser().Parse(strings.NewReader(raw))
		require.NoError(t, err)
		require.Equal(t, "test", string(request.Body))
	})

	t.Run("LoneLF", func(t *testing.T) {
		request, err := newParser().Parse(strings.NewReader("DELETE /x HTTP/1.1\nHost: h\n\n"))
		require.NoError(t, err)
		require.Equal(t, method.DELETE, request.Method)
		require.Equal(t, "h", request.Headers.Value("Host"))
	})
}

func TestParse_Tolerated(t *testing.T) {
	t.Run("MalformedHeaderSkipped", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nno colon here\r\nHost: h\r\n\r\n"
		request, err := newParser().Parse(strings.NewReader(raw))
		require.NoError(t, err)
		require.Equal(t, 1, request.Headers.Len())
		require.Equal(t, "h", request.Headers.Value("Host"))
	})

	t.Run("BadContentLengthSkipsBody", func(t *testing.T) {
		raw := "POST / HTTP/1.1\r\nContent-Length: banana\r\n\r\ntest"
		request, err := newParser().Parse(strings.NewReader(raw))
		require.NoError(t, err)
		require.Nil(t, request.Body)
	})

	t.Run("EOFMidHeadersEndsSection", func(t *testing.T) {
		request, err := newParser().Parse(strings.NewReader("GET / HTTP/1.1\r\nHost: h"))
		require.NoError(t, err)
		require.Equal(t, "h", request.Headers.Value("Host"))
	})
}

func TestParse_Negative(t *testing.T) {
	t.Run("EmptyStream", func(t *testing.T) {
		_, err := newParser().Parse(strings.NewReader(""))
		require.ErrorIs(t, err, status.ErrNoRequestLine)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		_, err := newParser().Parse(strings.NewReader("BREW /pot HTTP/1.1\r\n\r\n"))
		require.ErrorIs(t, err, status.ErrUnsupportedMethod)
	})

	t.Run("MissingTokens", func(t *testing.T) {
		for _, sample := range []string{"GET\r\n\r\n", "GET /path\r\n\r\n", "GET  HTTP/1.1\r\n\r\n"} {
			_, err := newParser().Parse(strings.NewReader(sample))
			require.ErrorIs(t, err, status.ErrMalformedRequestLine, sample)
		}
	})

	t.Run("TruncatedBody", func(t *testing.T) {
		raw := "POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nshort"
		_, err := newParser().Parse(strings.NewReader(raw))
		require.Error(t, err)
	})
}

func TestParseQuery(t *testing.T) {
	t.Run("PairsWithDuplicates", func(t *testing.T) {
		query := kv.New()
		newParser().ParseQuery("x=1&y=2&x=3", query)
		require.Equal(t, []kv.Pair{
			{Key: "x", Value: "1"},
			{Key: "y", Value: "2"},
			{Key: "x", Value: "3"},
		}, query.Unwrap())
	})

	t.Run("SegmentWithoutEqualsDropped", func(t *testing.T) {
		query := kv.New()
		newParser().ParseQuery("flag&x=1", query)
		require.Equal(t, []kv.Pair{{Key: "x", Value: "1"}}, query.Unwrap())
	})

	t.Run("ValueWithEquals", func(t *testing.T) {
		query := kv.New()
		newParser().ParseQuery("expr=a=b", query)
		require.Equal(t, "a=b", query.Value("expr"))
	})
}
