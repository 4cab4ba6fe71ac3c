package isa

import (
	"fmt"
)

// MaskPattern derives the match mask and pattern for a layout, so that a
// raw word w belongs to the encoding exactly when w&mask == pattern.
//
// Literal bits are set in the mask and carry their value in the pattern.
// Field bits are zero in both: they don't take part in matching.
func MaskPattern[W Word](width Width[W], l Layout[W]) (mask, pattern W, err error) {
	var used uint
	for i, s := range l {
		n := s.Width()
		if used+n > width.Bits() {
			return 0, 0, fmt.Errorf("segment %d (%s) overruns %d-bit word: %w", i, s, width.Bits(), ErrWidthMismatch)
		}
		used += n

		// Go defines a shift by the full word width as producing zero, so
		// a single literal spanning the whole word needs no special case.
		mask <<= n
		pattern <<= n
		if !s.IsField() {
			mask |= ones[W](n)
			pattern |= s.Value & ones[W](n)
		}
	}
	if used != width.Bits() {
		return 0, 0, fmt.Errorf("layout leaves %d of %d bits pending: %w", width.Bits()-used, width.Bits(), ErrWidthMismatch)
	}
	return mask, pattern, nil
}
