package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// FromGoAny converts a decoded Go value (the shape produced by the
// encoding/json, go-toml, and go-yaml decoders) into a node tree.
// Map keys come out in sorted order, since Go maps carry no order.
func FromGoAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x.String(), err)
		}
		return FromFloat(f), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case []any:
		elems := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromGoAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = n
		}
		return FromSlice(elems), nil
	case map[string]any:
		res := &Node{Type: TableType}
		for _, key := range slices.Sorted(maps.Keys(x)) {
			n, err := FromGoAny(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to ir node", v)
	}
}

// ToGoAny converts a node tree into the plain Go value shape accepted by
// the encoding/json, go-toml, and go-yaml encoders.
func ToGoAny(node *Node) any {
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case IntegerType:
		return node.Int64
	case FloatType:
		return node.Float64
	case StringType:
		return node.String
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elem := range node.Values {
			res[i] = ToGoAny(elem)
		}
		return res
	case TableType:
		res := make(map[string]any, len(node.Keys))
		for i, key := range node.Keys {
			res[key] = ToGoAny(node.Values[i])
		}
		return res
	default:
		panic("impossible production")
	}
}
