package router

import (
	"strings"

	"github.com/verve-web/verve/kv"
)

// segment is one '/'-delimited piece of a pattern. A piece starting with ':'
// binds a parameter under its trimmed name; a trailing '*' turns it into a
// catch-all consuming the rest of the path.
type segment struct {
	literal  string
	name     string
	param    bool
	catchAll bool
}

func parsePattern(pattern string) []segment {
	parts := splitPath(pattern)
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		if part[0] != ':' {
			segments = append(segments, segment{literal: part})
			continue
		}

		name := part[1:]
		catchAll := strings.HasSuffix(name, "*")
		if catchAll {
			name = name[:len(name)-1]
		}

		segments = append(segments, segment{
			name:     name,
			param:    true,
			catchAll: catchAll,
		})
	}

	return segments
}

// splitPath splits on '/', dropping empty pieces produced by leading, trailing
// or duplicate slashes. Pattern and request path are both normalized this way,
// so they can't disagree about slash placement.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	filtered := parts[:0]

	for _, part := range parts {
		if len(part) > 0 {
			filtered = append(filtered, part)
		}
	}

	return filtered
}

// match reports whether the path satisfies the pattern, binding parameters
// into params along the way. Literal segments must be equal, a parameter binds
// exactly one opposite segment, and a catch-all binds the joined remainder
// (possibly empty) and ends the comparison. Without a catch-all the segment
// counts must be equal: a handler never runs on a mere prefix.
//
// On mismatch params may hold partial bindings; the caller resets it between
// attempts.
func match(pattern []segment, parts []string, params *kv.Storage) bool {
	for i, seg := range pattern {
		if seg.catchAll {
			params.Add(seg.name, strings.Join(parts[i:], "/"))
			return true
		}

		if i >= len(parts) {
			return false
		}

		if seg.param {
			params.Add(seg.name, parts[i])
			continue
		}

		if seg.literal != parts[i] {
			return false
		}
	}

	return len(pattern) == len(parts)
}
