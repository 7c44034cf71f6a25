// Package ir provides the value tree for TOML-like documents.
//
// A Node is a tagged union over the TOML data model: null, boolean,
// integer, float, string, array, and table. Tables keep their fields in
// insertion order with unique keys; arrays keep element order. The tree
// has no parent links and no cycles, so subtrees can be moved between
// documents freely.
package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	// Keys is parallel to Values for TableType; ArrayType uses Values alone.
	Keys   []string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(elems []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(elems))
	copy(res.Values, elems)
	return res
}

// FromMap builds a table node with keys in sorted order, since Go map
// iteration order is unspecified.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: TableType}
	res.Keys = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Keys))
	for i, key := range res.Keys {
		res.Values[i] = m[key]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a table node preserving the given field order.
// Later duplicates of a key overwrite the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: TableType}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != TableType {
		return nil
	}
	res := make(map[string]*Node, len(node.Keys))
	for i, key := range node.Keys {
		res[key] = node.Values[i]
	}
	return res
}

// Get returns the value under field key of a table node, or nil when the
// node is not a table or has no such field.
func (n *Node) Get(key string) *Node {
	if n.Type != TableType {
		return nil
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

// At returns the i-th element of an array node, or nil when the node is
// not an array or i is out of bounds.
func (n *Node) At(i int) *Node {
	if n.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

// Len returns the number of fields of a table or elements of an array,
// and 0 for scalars.
func (n *Node) Len() int {
	return len(n.Values)
}

// Set inserts a field into a table node. An existing key keeps its
// original position and has its value overwritten; a new key is appended.
// Set is a no-op on non-table nodes.
func (n *Node) Set(key string, val *Node) {
	if n.Type != TableType {
		return
	}
	for i, k := range n.Keys {
		if k == key {
			n.Values[i] = val
			return
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, val)
}

// Append adds elements at the end of an array node; no-op otherwise.
func (n *Node) Append(elems ...*Node) {
	if n.Type != ArrayType {
		return
	}
	n.Values = append(n.Values, elems...)
}

// Replace overwrites the content of n with the content of o, in place.
// The node keeps its identity, so references into the host tree remain
// pointed at the same location.
func (n *Node) Replace(o *Node) {
	*n = *o
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Bool = n.Bool
	dst.Int64 = n.Int64
	dst.Float64 = n.Float64
	dst.String = n.String
	if n.Keys != nil {
		dst.Keys = slices.Clone(n.Keys)
	} else {
		dst.Keys = nil
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	} else {
		dst.Values = nil
	}
	return dst
}
