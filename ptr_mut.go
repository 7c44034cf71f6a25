package tomlops

import (
	"github.com/lymslive/tomlops/debug"
	"github.com/lymslive/tomlops/ir"
)

// PtrMut is a write pointer to a node inside a tree, or to nothing at
// all. The zero value is the invalid pointer.
//
// Go cannot enforce exclusive access the way an ownership system would,
// so the discipline is by convention: treat every PtrMut as consumed by
// the call it is passed to and continue with the returned pointer. Hold
// at most one live write chain per tree; read pointers may coexist with
// it only while no mutation is in flight.
type PtrMut struct {
	node *ir.Node
}

// KV is a key/value pair for pushing into a table node.
type KV struct {
	Key string
	Val any
}

// PathMut starts a write pointer at the root of a tree.
func PathMut(root *ir.Node) PtrMut {
	return PtrMut{node: root}
}

// PathMutTo starts a write pointer and immediately follows a path string.
func PathMutTo(root *ir.Node, p string) PtrMut {
	return PathMut(root).At(p)
}

// Valid reports whether the pointer refers to a node.
func (m PtrMut) Valid() bool {
	return m.node != nil
}

// Node exposes the underlying node, nil for an invalid pointer.
func (m PtrMut) Node() *ir.Node {
	return m.node
}

// Ptr demotes the write pointer to a read pointer at the same location.
func (m PtrMut) Ptr() Ptr {
	return Ptr{node: m.node}
}

// At follows steps down the tree, same step forms as Ptr.At. The input
// pointer counts as consumed; mutate through the returned pointer.
func (m PtrMut) At(steps ...any) PtrMut {
	return PtrMut{node: walk(m.node, steps)}
}

// StringOr extracts like Ptr.StringOr and ends the write chain.
func (m PtrMut) StringOr(def string) string {
	return m.Ptr().StringOr(def)
}

// IntOr extracts like Ptr.IntOr and ends the write chain.
func (m PtrMut) IntOr(def int64) int64 {
	return m.Ptr().IntOr(def)
}

// FloatOr extracts like Ptr.FloatOr and ends the write chain.
func (m PtrMut) FloatOr(def float64) float64 {
	return m.Ptr().FloatOr(def)
}

// BoolOr extracts like Ptr.BoolOr and ends the write chain.
func (m PtrMut) BoolOr(def bool) bool {
	return m.Ptr().BoolOr(def)
}

// Put writes a scalar over a scalar leaf of the same type. A Null leaf
// accepts any scalar as an initializing assignment; that is the one
// special case. Everything else fails without touching the tree: a
// container target, a container value, a type mismatch, or an invalid
// pointer all yield the invalid pointer. On success Put returns the
// pointer to the same, now updated, location.
func (m PtrMut) Put(v any) PtrMut {
	if m.node == nil {
		return PtrMut{}
	}
	val, err := ir.FromGoAny(v)
	if err != nil {
		if debug.Put() {
			debug.Logf("put: %v\n", err)
		}
		return PtrMut{}
	}
	if !val.Type.IsScalar() || !m.node.Type.IsScalar() {
		if debug.Put() {
			debug.Logf("put: %s value on %s node\n", val.Type, m.node.Type)
		}
		return PtrMut{}
	}
	if m.node.Type != ir.NullType && m.node.Type != val.Type {
		if debug.Put() {
			debug.Logf("put: %s value on %s node\n", val.Type, m.node.Type)
		}
		return PtrMut{}
	}
	m.node.Replace(val)
	return m
}

// Push grows a container. On a table node the item must be a KV or an
// ir.KeyVal; an existing key keeps its position and gets the new value,
// a new key is appended. On an array node the item becomes one new
// trailing element. Scalar or invalid targets fail. Push returns the
// pointer to the container itself, so pushes chain.
func (m PtrMut) Push(item any) PtrMut {
	if m.node == nil {
		return PtrMut{}
	}
	switch m.node.Type {
	case ir.TableType:
		key, v, ok := pairOf(item)
		if !ok {
			if debug.Push() {
				debug.Logf("push: %T is not a key/value pair\n", item)
			}
			return PtrMut{}
		}
		val, err := ir.FromGoAny(v)
		if err != nil {
			if debug.Push() {
				debug.Logf("push: %v\n", err)
			}
			return PtrMut{}
		}
		m.node.Set(key, val)
		return m
	case ir.ArrayType:
		val, err := ir.FromGoAny(item)
		if err != nil {
			if debug.Push() {
				debug.Logf("push: %v\n", err)
			}
			return PtrMut{}
		}
		m.node.Append(val)
		return m
	default:
		if debug.Push() {
			debug.Logf("push: %s node is not a container\n", m.node.Type)
		}
		return PtrMut{}
	}
}

// PushKV pushes one key/value pair, sugar for Push(KV{...}).
func (m PtrMut) PushKV(key string, v any) PtrMut {
	return m.Push(KV{Key: key, Val: v})
}

// PushItems pushes each item in turn, stopping invalid on the first
// failure.
func (m PtrMut) PushItems(items ...any) PtrMut {
	res := m
	for _, item := range items {
		res = res.Push(item)
		if res.node == nil {
			return res
		}
	}
	return res
}

// Assign overwrites the node with v unconditionally, containers
// included, changing the node's kind if need be. On an invalid pointer,
// or when v has no tree representation, Assign is a no-op.
func (m PtrMut) Assign(v any) {
	if m.node == nil {
		return
	}
	val, err := ir.FromGoAny(v)
	if err != nil {
		if debug.Assign() {
			debug.Logf("assign: %v\n", err)
		}
		return
	}
	m.node.Replace(val)
}

func pairOf(item any) (string, any, bool) {
	switch x := item.(type) {
	case KV:
		return x.Key, x.Val, true
	case ir.KeyVal:
		return x.Key, x.Val, true
	default:
		return "", nil, false
	}
}
