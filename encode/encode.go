// Package encode turns ir trees back into text.
//
// Serialization is delegated to the same codecs the parse package reads
// with: TOML via pelletier/go-toml, JSON via encoding/json, YAML via
// goccy/go-yaml. Dump writes a colored tree rendering for terminals.
package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/lymslive/tomlops/format"
	"github.com/lymslive/tomlops/ir"
)

type EncState struct {
	indent int
	format format.Format
	colors *Colors
}

// Encode writes node to w in the configured format, TOML by default.
// TOML output requires a table node at the top level.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TOMLFormat:
		if node.Type != ir.TableType {
			return fmt.Errorf("%w: toml needs a table at top level, have %s",
				format.ErrBadFormat, node.Type)
		}
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(false)
		return enc.Encode(ir.ToGoAny(node))
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", indentString(es.indent))
		return enc.Encode(ir.ToGoAny(node))
	case format.YAMLFormat:
		d, err := yaml.MarshalWithOptions(ir.ToGoAny(node), yaml.Indent(es.indent))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func indentString(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = ' '
	}
	return string(s)
}
