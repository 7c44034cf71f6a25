package tomlops

import (
	"github.com/lymslive/tomlops/debug"
	"github.com/lymslive/tomlops/ir"
	"github.com/lymslive/tomlops/ir/tpath"
)

// Ptr is a read pointer to a node inside a tree, or to nothing at all.
// The zero value is the invalid pointer. A Ptr never owns tree data and
// stays usable only as long as the host tree lives.
type Ptr struct {
	node *ir.Node
}

// Path starts a read pointer at the root of a tree.
func Path(root *ir.Node) Ptr {
	return Ptr{node: root}
}

// PathTo starts a read pointer and immediately follows a path string.
func PathTo(root *ir.Node, p string) Ptr {
	return Path(root).At(p)
}

// Valid reports whether the pointer refers to a node.
func (p Ptr) Valid() bool {
	return p.node != nil
}

// Node exposes the underlying node, nil for an invalid pointer.
func (p Ptr) Node() *ir.Node {
	return p.node
}

// At follows steps down the tree and returns the pointer to the node
// reached. Each step is a path string (possibly several segments, see
// tpath.Parse), an int array index, a tpath.Segment, or a []tpath.Segment.
// A step that does not resolve makes the result invalid, and an invalid
// pointer propagates through any number of further steps.
func (p Ptr) At(steps ...any) Ptr {
	return Ptr{node: walk(p.node, steps)}
}

// StringOr returns the string at the pointer, or def when the pointer is
// invalid or the node is not a string.
func (p Ptr) StringOr(def string) string {
	if p.node == nil || p.node.Type != ir.StringType {
		return def
	}
	return p.node.String
}

// IntOr returns the integer at the pointer, or def on absence or type
// mismatch.
func (p Ptr) IntOr(def int64) int64 {
	if p.node == nil || p.node.Type != ir.IntegerType {
		return def
	}
	return p.node.Int64
}

// FloatOr returns the float at the pointer, or def on absence or type
// mismatch.
func (p Ptr) FloatOr(def float64) float64 {
	if p.node == nil || p.node.Type != ir.FloatType {
		return def
	}
	return p.node.Float64
}

// BoolOr returns the boolean at the pointer, or def on absence or type
// mismatch.
func (p Ptr) BoolOr(def bool) bool {
	if p.node == nil || p.node.Type != ir.BoolType {
		return def
	}
	return p.node.Bool
}

// walk folds single-segment steps over a start node, nil for any miss.
func walk(node *ir.Node, steps []any) *ir.Node {
	n := node
	for _, step := range steps {
		if n == nil {
			return nil
		}
		segs, ok := stepSegments(step)
		if !ok {
			if debug.Path() {
				debug.Logf("path: unsupported step type %T\n", step)
			}
			return nil
		}
		for _, seg := range segs {
			n = stepNode(n, seg)
			if n == nil {
				return nil
			}
		}
	}
	return n
}

func stepSegments(step any) ([]tpath.Segment, bool) {
	switch x := step.(type) {
	case string:
		return tpath.Parse(x), true
	case int:
		return []tpath.Segment{tpath.Index(x)}, true
	case tpath.Segment:
		return []tpath.Segment{x}, true
	case []tpath.Segment:
		return x, true
	default:
		return nil, false
	}
}

// stepNode resolves one segment: keys go into tables, indices into
// arrays, anything else misses.
func stepNode(n *ir.Node, seg tpath.Segment) *ir.Node {
	var child *ir.Node
	switch {
	case seg.IsKey():
		child = n.Get(*seg.Key)
	case seg.IsIndex():
		child = n.At(*seg.Index)
	}
	if child == nil && debug.Path() {
		debug.Logf("path: no %q under %s node\n", seg.String(), n.Type)
	}
	return child
}
