package wire

import (
	"io"
	"strconv"

	"github.com/verve-web/verve/http"
	"github.com/verve-web/verve/http/status"
)

var (
	sp            = []byte(" ")
	crlf          = []byte("\r\n")
	contentLength = []byte("Content-Length: ")
	colonSP       = []byte(": ")
)

// Serializer renders responses into a reusable buffer before flushing them to
// the connection. It must not be shared between connections.
type Serializer struct {
	buff []byte
}

func NewSerializer(buffSize int) *Serializer {
	return &Serializer{
		buff: make([]byte, 0, buffSize),
	}
}

// Write renders the response head and sends it together with the body. Sized
// bodies (bytes or sized streams) get an auto-computed Content-Length; an
// unsized stream is sent without one and is delimited by connection close, as
// connections are never kept alive. Streams are copied through without being
// buffered whole.
func (s *Serializer) Write(fields http.Fields, w io.Writer) error {
	defer s.clear()

	s.renderStatusLine(fields)

	attachment := fields.Attachment
	switch {
	case attachment.Content != nil:
		if attachment.Size > 0 {
			s.renderContentLength(attachment.Size)
		}
	case fields.Body != nil:
		s.renderContentLength(len(fields.Body))
	}

	for _, header := range fields.Headers {
		s.buff = append(s.buff, header.Key...)
		s.buff = append(s.buff, colonSP...)
		s.buff = append(s.buff, header.Value...)
		s.buff = append(s.buff, crlf...)
	}

	s.buff = append(s.buff, crlf...)

	if attachment.Content != nil {
		if _, err := w.Write(s.buff); err != nil {
			return err
		}

		_, err := io.Copy(w, attachment.Content)
		if closer, ok := attachment.Content.(io.Closer); ok {
			_ = closer.Close()
		}

		return err
	}

	s.buff = append(s.buff, fields.Body...)
	_, err := w.Write(s.buff)

	return err
}

func (s *Serializer) renderStatusLine(fields http.Fields) {
	s.buff = append(s.buff, protoPrefix...)
	s.buff = append(s.buff, fields.Proto...)
	s.buff = append(s.buff, sp...)
	s.buff = strconv.AppendUint(s.buff, uint64(fields.Code), 10)
	s.buff = append(s.buff, sp...)
	s.buff = append(s.buff, status.Text(fields.Code)...)
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) renderContentLength(length int) {
	s.buff = append(s.buff, contentLength...)
	s.buff = strconv.AppendInt(s.buff, int64(length), 10)
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
