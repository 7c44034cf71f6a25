package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lymslive/tomlops/format"
	"github.com/lymslive/tomlops/ir"
)

func TestParseTOML(t *testing.T) {
	doc, err := Parse([]byte(`
[host]
ip = "127.0.0.1"
port = 8080
ratio = 0.5
up = true
proto = ["tcp", "udp"]
`))
	require.NoError(t, err)
	require.Equal(t, ir.TableType, doc.Type)

	host := doc.Get("host")
	require.NotNil(t, host)
	assert.Equal(t, ir.StringType, host.Get("ip").Type)
	assert.Equal(t, "127.0.0.1", host.Get("ip").String)
	assert.Equal(t, int64(8080), host.Get("port").Int64)
	assert.Equal(t, ir.FloatType, host.Get("ratio").Type)
	assert.Equal(t, 0.5, host.Get("ratio").Float64)
	assert.True(t, host.Get("up").Bool)

	proto := host.Get("proto")
	require.Equal(t, ir.ArrayType, proto.Type)
	require.Equal(t, 2, proto.Len())
	assert.Equal(t, "udp", proto.At(1).String)
}

func TestParseTOMLError(t *testing.T) {
	_, err := Parse([]byte(`not = valid = toml`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseJSON(t *testing.T) {
	doc, err := JSON([]byte(`{"n": 12, "f": 1.5, "s": "x", "b": false, "z": null, "a": [1, 2]}`))
	require.NoError(t, err)

	assert.Equal(t, ir.IntegerType, doc.Get("n").Type)
	assert.Equal(t, int64(12), doc.Get("n").Int64)
	assert.Equal(t, ir.FloatType, doc.Get("f").Type)
	assert.Equal(t, ir.NullType, doc.Get("z").Type)
	assert.Equal(t, 2, doc.Get("a").Len())
}

func TestParseJSONError(t *testing.T) {
	_, err := JSON([]byte(`{`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseYAML(t *testing.T) {
	doc, err := YAML([]byte(`
host:
  ip: 127.0.0.1
  port: 8080
  proto:
    - tcp
    - udp
`))
	require.NoError(t, err)

	host := doc.Get("host")
	require.NotNil(t, host)
	assert.Equal(t, "127.0.0.1", host.Get("ip").String)
	assert.Equal(t, int64(8080), host.Get("port").Int64)
	assert.Equal(t, "tcp", host.Get("proto").At(0).String)
}

func TestParseYAMLError(t *testing.T) {
	_, err := YAML([]byte("a: [1, 2\nb: c"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestAs(t *testing.T) {
	for _, f := range format.AllFormats() {
		var src []byte
		switch f {
		case format.TOMLFormat:
			src = []byte(`key = "val"`)
		case format.JSONFormat:
			src = []byte(`{"key": "val"}`)
		case format.YAMLFormat:
			src = []byte(`key: val`)
		}
		doc, err := As(f, src)
		require.NoError(t, err, f.String())
		assert.Equal(t, "val", doc.Get("key").String, f.String())
	}

	_, err := As(format.Format(99), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrBadFormat)
}

func TestParseKeysSorted(t *testing.T) {
	doc, err := Parse([]byte("zeta = 1\nalpha = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, doc.Keys)
}
