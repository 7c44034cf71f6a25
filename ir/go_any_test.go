package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromGoAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *Node
	}{
		{"nil", nil, Null()},
		{"bool", true, FromBool(true)},
		{"int", 7, FromInt(7)},
		{"int64", int64(7), FromInt(7)},
		{"uint32", uint32(7), FromInt(7)},
		{"float64", 2.5, FromFloat(2.5)},
		{"string", "hi", FromString("hi")},
		{"integral json number", json.Number("12"), FromInt(12)},
		{"fractional json number", json.Number("1.5"), FromFloat(1.5)},
		{
			name: "slice",
			in:   []any{"tcp", int64(1)},
			want: FromSlice([]*Node{FromString("tcp"), FromInt(1)}),
		},
		{
			name: "map sorts keys",
			in:   map[string]any{"b": int64(2), "a": int64(1)},
			want: FromKeyVals([]KeyVal{
				{Key: "a", Val: FromInt(1)},
				{Key: "b", Val: FromInt(2)},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGoAny(tt.in)
			if err != nil {
				t.Fatalf("FromGoAny: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("node mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromGoAnyErrors(t *testing.T) {
	if _, err := FromGoAny(struct{}{}); err == nil {
		t.Error("expected error for struct input")
	}
	if _, err := FromGoAny([]any{struct{}{}}); err == nil {
		t.Error("expected error for struct element")
	}
	if _, err := FromGoAny(json.Number("nope")); err == nil {
		t.Error("expected error for bad number")
	}
}

func TestFromGoAnyClonesNodes(t *testing.T) {
	orig := FromSlice([]*Node{FromInt(1)})
	got, err := FromGoAny(orig)
	if err != nil {
		t.Fatalf("FromGoAny: %v", err)
	}
	got.Append(FromInt(2))
	if orig.Len() != 1 {
		t.Error("FromGoAny shares storage with the input node")
	}
}

func TestToGoAnyRoundTrip(t *testing.T) {
	// Keys in sorted order, since ToGoAny goes through an unordered map.
	node := FromKeyVals([]KeyVal{
		{Key: "host", Val: FromKeyVals([]KeyVal{
			{Key: "ip", Val: FromString("127.0.0.1")},
			{Key: "port", Val: FromInt(8080)},
			{Key: "proto", Val: FromSlice([]*Node{
				FromString("tcp"),
				FromString("udp"),
			})},
			{Key: "ratio", Val: FromFloat(0.5)},
			{Key: "up", Val: FromBool(true)},
		})},
	})
	back, err := FromGoAny(ToGoAny(node))
	if err != nil {
		t.Fatalf("FromGoAny: %v", err)
	}
	if diff := cmp.Diff(node, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
