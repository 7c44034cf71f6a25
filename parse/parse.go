// Package parse turns source text into ir trees.
//
// The tree format itself is delegated to real codecs: TOML via
// pelletier/go-toml, JSON via encoding/json, and YAML via goccy/go-yaml.
// Each decoder produces the plain Go value shape (map[string]any and
// friends) which is then lifted into *ir.Node. Table field order follows
// sorted keys, since the underlying decoders return unordered maps.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/lymslive/tomlops/format"
	"github.com/lymslive/tomlops/ir"
)

// Parse parses TOML source into a tree. The result is always a table
// node, TOML documents being tables at the top level.
func Parse(d []byte) (*ir.Node, error) {
	var v map[string]any
	if err := toml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return ir.FromGoAny(v)
}

// JSON parses JSON source into a tree. Numbers without a fractional part
// become integer nodes, others float nodes.
func JSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return ir.FromGoAny(v)
}

// YAML parses YAML source into a tree.
func YAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return ir.FromGoAny(v)
}

// As parses source in the given format.
func As(f format.Format, d []byte) (*ir.Node, error) {
	switch f {
	case format.TOMLFormat:
		return Parse(d)
	case format.JSONFormat:
		return JSON(d)
	case format.YAMLFormat:
		return YAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}
