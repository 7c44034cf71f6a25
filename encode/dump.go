package encode

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/lymslive/tomlops/ir"
)

// Dump writes a human oriented tree rendering of node to w, one field
// per line, values colored by type. Colors are on when w is a terminal
// and off otherwise; pass EncodeColors to override.
func Dump(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	colors := es.colors
	if colors == nil {
		colors = NoColors()
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			colors = NewColors()
		}
	}
	if err := dump(node, w, colors, 0, es.indent); err != nil {
		return err
	}
	if node.Type.IsScalar() {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func dump(node *ir.Node, w io.Writer, colors *Colors, depth, indent int) error {
	pad := strings.Repeat(" ", depth*indent)
	switch node.Type {
	case ir.TableType:
		for i, key := range node.Keys {
			val := node.Values[i]
			field := colors.Color(ir.TableType, FieldColor, key)
			sep := colors.Color(ir.TableType, SepColor, ":")
			if val.Type.IsScalar() {
				line := fmt.Sprintf("%s%s%s %s\n", pad, field, sep, scalarString(val, colors))
				if _, err := io.WriteString(w, line); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, field, sep); err != nil {
				return err
			}
			if err := dump(val, w, colors, depth+1, indent); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		for _, elem := range node.Values {
			sep := colors.Color(ir.ArrayType, SepColor, "-")
			if elem.Type.IsScalar() {
				line := fmt.Sprintf("%s%s %s\n", pad, sep, scalarString(elem, colors))
				if _, err := io.WriteString(w, line); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s\n", pad, sep); err != nil {
				return err
			}
			if err := dump(elem, w, colors, depth+1, indent); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := io.WriteString(w, pad+scalarString(node, colors))
		return err
	}
}

func scalarString(node *ir.Node, colors *Colors) string {
	var s string
	switch node.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(node.Bool)
	case ir.IntegerType:
		s = strconv.FormatInt(node.Int64, 10)
	case ir.FloatType:
		s = strconv.FormatFloat(node.Float64, 'g', -1, 64)
	case ir.StringType:
		s = strconv.Quote(node.String)
	default:
		s = "<" + node.Type.String() + ">"
	}
	return colors.Color(node.Type, ValueColor, s)
}
