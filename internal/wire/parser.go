package wire

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/verve-web/verve/http"
	"github.com/verve-web/verve/http/method"
	"github.com/verve-web/verve/http/status"
	"github.com/verve-web/verve/internal/obs"
	"github.com/verve-web/verve/kv"
)

const protoPrefix = "HTTP/"

// Parser turns a raw byte stream into a request. A single instance may be
// shared between workers, as it keeps no per-connection state.
type Parser struct {
	log      obs.Logger
	buffSize int
}

func NewParser(log obs.Logger, buffSize int) *Parser {
	return &Parser{
		log:      log,
		buffSize: buffSize,
	}
}

// Parse reads the header section and, if Content-Length announces one, the body.
// The returned error is connection-fatal: a missing header line, an
// unrecognized method, a malformed header line or an interrupted body read.
// Malformed headers and unparseable Content-Length values are tolerated and
// only logged.
func (p *Parser) Parse(src io.Reader) (*http.Request, error) {
	reader := bufio.NewReaderSize(src, p.buffSize)

	line, err := readLine(reader)
	if err != nil {
		return nil, status.ErrNoRequestLine
	}

	request := http.NewRequest()
	if err = parseRequestLine(line, request); err != nil {
		return nil, err
	}

	p.parseHeaders(reader, request.Headers)

	if err = p.readBody(reader, request); err != nil {
		return nil, err
	}

	return request, nil
}

// parseRequestLine splits the header line on single spaces from the right: the
// last token is the protocol, the one before it the path, the remainder the
// method. Best-effort by design, embedded spaces in the path aren't supported.
func parseRequestLine(line string, request *http.Request) error {
	protoAt := strings.LastIndexByte(line, ' ')
	if protoAt == -1 {
		return status.ErrMalformedRequestLine
	}

	pathAt := strings.LastIndexByte(line[:protoAt], ' ')
	if pathAt == -1 {
		return status.ErrMalformedRequestLine
	}

	methodTok, path, proto := line[:pathAt], line[pathAt+1:protoAt], line[protoAt+1:]
	if len(methodTok) == 0 || len(path) == 0 || len(proto) == 0 {
		return status.ErrMalformedRequestLine
	}

	request.Method = method.Parse(methodTok)
	if request.Method == method.Unknown {
		return status.ErrUnsupportedMethod
	}

	request.Path = path
	request.Proto = strings.TrimPrefix(proto, protoPrefix)

	return nil
}

// parseHeaders consumes lines until the empty one terminating the section.
// Running out of stream mid-headers ends the section instead of failing: the
// peer is gone anyway, and whatever arrived may still be answerable.
func (p *Parser) parseHeaders(reader *bufio.Reader, headers *kv.Storage) {
	for {
		line, err := readLine(reader)
		if err != nil || len(line) == 0 {
			return
		}

		colon := strings.IndexByte(line, ':')
		if colon == -1 {
			p.log.Logf(obs.Warn, "skipping malformed header line: %q", line)
			continue
		}

		headers.Add(
			strings.TrimSpace(line[:colon]),
			strings.TrimSpace(line[colon+1:]),
		)
	}
}

// readBody attaches exactly Content-Length bytes of body. A value that doesn't
// parse as a non-negative integer skips body attachment entirely; a stream
// that ends before the announced count is a hard failure.
func (p *Parser) readBody(reader *bufio.Reader, request *http.Request) error {
	raw, found := request.Headers.Get("Content-Length")
	if !found {
		return nil
	}

	length, err := strconv.Atoi(raw)
	if err != nil || length < 0 {
		p.log.Logf(obs.Warn, "unparseable Content-Length %q, skipping body", raw)
		return nil
	}

	if length == 0 {
		return nil
	}

	body := make([]byte, length)
	if _, err = io.ReadFull(reader, body); err != nil {
		return err
	}

	request.Body = body

	return nil
}

// readLine reads a single line, stripping the terminator. A partial line cut
// off by EOF still counts; the error is reported only when nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
