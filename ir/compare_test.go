package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil nil", nil, nil, 0},
		{"nil node", nil, Null(), -1},
		{"same node", FromInt(1), FromInt(1), 0},
		{"int order", FromInt(1), FromInt(2), -1},
		{"float order", FromFloat(2.5), FromFloat(1.5), 1},
		{"string order", FromString("a"), FromString("b"), -1},
		{"bool order", FromBool(false), FromBool(true), -1},
		{"type rank", FromBool(true), FromInt(0), -1},
		{"int before float", FromInt(9), FromFloat(1.0), -1},
		{
			"array element order",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(3)}),
			-1,
		},
		{
			"array length order",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			-1,
		},
		{
			"table key order",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1,
		},
		{
			"equal tables",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}
