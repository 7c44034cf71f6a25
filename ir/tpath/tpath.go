// Package tpath parses slash or dot separated paths into segments.
//
// A path addresses a single node in an ir tree:
//
//	"host/proto/0"  → [Key("host"), Key("proto"), Index(0)]
//	"host.port"     → [Key("host"), Key("port")]
//
// Both '/' and '.' separate segments and may be mixed. Runs of
// separators collapse, so "a//b", "a/./b" and "a/b" all parse to the
// same two segments. A purely numeric component is always an array
// index; table keys that look like numbers cannot be addressed and
// should be avoided by convention. There is no escaping, so a key
// containing a separator character cannot be written in string form —
// build the segments directly instead.
//
// ".." has no parent meaning here. In string form it is nothing but a
// run of separator characters, so "a/../b" collapses to the same two
// segments as "a/b". A Key("..") built directly is an ordinary literal
// key, not an instruction to go up.
package tpath

import (
	"strconv"
	"strings"
)

// Segment is one path component: a table key or an array index.
// Exactly one of Key and Index is set.
type Segment struct {
	Key   *string
	Index *int
}

func Key(k string) Segment {
	return Segment{Key: &k}
}

func Index(i int) Segment {
	return Segment{Index: &i}
}

func (s Segment) IsKey() bool {
	return s.Key != nil
}

func (s Segment) IsIndex() bool {
	return s.Index != nil
}

// String returns the segment in path component form.
func (s Segment) String() string {
	if s.Key != nil {
		return *s.Key
	}
	if s.Index != nil {
		return strconv.Itoa(*s.Index)
	}
	return ""
}

func isSep(r rune) bool {
	return r == '/' || r == '.'
}

// Parse splits a path string into segments. Parsing never fails: empty
// components are dropped, so an empty or all-separator input yields an
// empty path, which navigation treats as "stay at the current node".
func Parse(p string) []Segment {
	parts := strings.FieldsFunc(p, isSep)
	if len(parts) == 0 {
		return nil
	}
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if u, err := strconv.ParseUint(part, 10, 63); err == nil {
			segs = append(segs, Index(int(u)))
			continue
		}
		segs = append(segs, Key(part))
	}
	return segs
}

// String joins segments back into canonical slash form, for diagnostics.
// It is not an exact inverse of Parse when keys contain separators.
func String(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}
