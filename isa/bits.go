package isa

import (
	"fmt"
)

// bitString renders the low n bits of v as a zero-padded binary string
// with a 0b prefix, so masks and patterns line up when printed.
func bitString[W Word](v W, n uint) string {
	return fmt.Sprintf("0b%0*b", int(n), v)
}
