package wire

import (
	"strings"

	"github.com/verve-web/verve/internal/obs"
	"github.com/verve-web/verve/kv"
)

// ParseQuery splits a raw query string (without the leading '?') on '&', then
// each segment once on '='. Segments without '=' are dropped with a warning.
// Duplicate keys and their order are preserved.
func (p *Parser) ParseQuery(raw string, into *kv.Storage) {
	for len(raw) > 0 {
		segment := raw

		if amp := strings.IndexByte(raw, '&'); amp != -1 {
			segment, raw = raw[:amp], raw[amp+1:]
		} else {
			raw = ""
		}

		eq := strings.IndexByte(segment, '=')
		if eq == -1 {
			p.log.Logf(obs.Warn, "dropping query segment without '=': %q", segment)
			continue
		}

		into.Add(segment[:eq], segment[eq+1:])
	}
}
