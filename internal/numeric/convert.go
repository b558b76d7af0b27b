package numeric

import "golang.org/x/exp/constraints"

// Number is any element type the catalogue converts between.
type Number interface {
	constraints.Integer | constraints.Float
}

// Convert casts every element of src to To. Conversion truncates toward zero
// like an array dtype cast; out-of-range values are not clamped.
func Convert[To, From Number](src []From) []To {
	out := make([]To, len(src))
	for i, v := range src {
		out[i] = To(v)
	}
	return out
}
