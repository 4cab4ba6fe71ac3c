package isa

import (
	"fmt"
	"strconv"
)

// Word is the raw instruction word type an engine instance works over.
type Word interface {
	~uint16 | ~uint32
}

// Width describes the raw word size an instruction table is written for,
// and supplies the few bit-level primitives the engine needs.
type Width[W Word] interface {
	// Bits is the total number of bits in a raw word.
	Bits() uint

	// Bit returns the single bit at index i of w, as 0 or 1.
	Bit(w W, i uint) uint32

	// ParseBinary parses a string of binary digits into a raw word.
	ParseBinary(s string) (W, error)

	Name() string
}

// Compact is the width policy for 16-bit compressed instructions.
type Compact struct{}

func (Compact) Bits() uint { return 16 }

func (Compact) Bit(w uint16, i uint) uint32 {
	return uint32(w>>i) & 1
}

func (Compact) ParseBinary(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 2, 16)
	if err != nil {
		return 0, fmt.Errorf("not a binary string %q: %w", s, err)
	}
	return uint16(v), nil
}

func (Compact) Name() string { return "CompactType" }

// RV32 is the width policy for standard-length 32-bit instructions.
type RV32 struct{}

func (RV32) Bits() uint { return 32 }

func (RV32) Bit(w uint32, i uint) uint32 {
	return (w >> i) & 1
}

func (RV32) ParseBinary(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("not a binary string %q: %w", s, err)
	}
	return uint32(v), nil
}

func (RV32) Name() string { return "RV32Type" }

// ones returns a word with the low n bits set. n may be the full word width.
func ones[W Word](n uint) W {
	if n == 0 {
		return 0
	}
	return ^W(0) >> (wordBits[W]() - n)
}

func wordBits[W Word]() uint {
	var w W
	w = ^w
	n := uint(0)
	for w != 0 {
		w >>= 1
		n++
	}
	return n
}
