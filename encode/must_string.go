package encode

import (
	"bytes"
	"fmt"

	"github.com/lymslive/tomlops/format"
	"github.com/lymslive/tomlops/ir"
)

// MustString renders node as text for messages and logs. Scalars and
// arrays fall back to JSON since TOML has no top-level form for them.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if node.Type != ir.TableType && FormatFromOpts(opts...).IsTOML() {
		opts = append(opts, EncodeFormat(format.JSONFormat))
	}
	if err := Encode(node, buf, opts...); err != nil {
		return fmt.Sprintf("<encode error: %v>", err)
	}
	return buf.String()
}
