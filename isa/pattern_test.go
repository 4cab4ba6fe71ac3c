package isa

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLayout() Layout[uint16] {
	return Layout[uint16]{
		Literal[uint16](3, 0b000),
		Field[uint16]("imm", 5),
		Literal[uint16](5, 0b00000),
		Field[uint16]("imm", 4, 3, 2, 1, 0),
		Literal[uint16](2, 0b01),
	}
}

func TestMaskPattern(t *testing.T) {
	for _, tt := range []struct {
		desc    string
		layout  Layout[uint16]
		mask    uint16
		pattern uint16
	}{
		{
			desc:    "c.nop",
			layout:  nopLayout(),
			mask:    0b1110111110000011,
			pattern: 0b0000000000000001,
		},
		{
			desc: "c.jal",
			layout: Layout[uint16]{
				Literal[uint16](3, 0b001),
				Field[uint16]("imm", 11, 4, 9, 8, 10, 6, 7, 3, 2, 1, 5),
				Literal[uint16](2, 0b01),
			},
			mask:    0b1110000000000011,
			pattern: 0b0010000000000001,
		},
		{
			desc:    "whole word literal",
			layout:  Layout[uint16]{Literal[uint16](16, 0x9002)},
			mask:    0xffff,
			pattern: 0x9002,
		},
		{
			desc:    "all fields",
			layout:  Layout[uint16]{Field[uint16]("a", 7, 6, 5, 4, 3, 2, 1, 0), Field[uint16]("b", 7, 6, 5, 4, 3, 2, 1, 0)},
			mask:    0,
			pattern: 0,
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			mask, pattern, err := MaskPattern[uint16](Compact{}, tt.layout)
			require.NoError(t, err)
			assert.Equal(t, bitString(tt.mask, 16), bitString(mask, 16))
			assert.Equal(t, bitString(tt.pattern, 16), bitString(pattern, 16))
			assert.Zero(t, pattern&^mask, "pattern sets a don't-care bit")
		})
	}
}

func TestMaskPatternWholeRV32Word(t *testing.T) {
	mask, pattern, err := MaskPattern[uint32](RV32{}, Layout[uint32]{Literal[uint32](32, 0)})
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffffffff), mask)
	assert.Equal(t, uint32(0), pattern)
}

func TestMaskPatternRejectsWrongWidth(t *testing.T) {
	for _, tt := range []struct {
		desc   string
		layout Layout[uint16]
	}{
		{
			desc:   "short",
			layout: Layout[uint16]{Literal[uint16](3, 0), Field[uint16]("imm", 4, 3, 2, 1, 0), Literal[uint16](2, 1)},
		},
		{
			desc:   "long",
			layout: Layout[uint16]{Literal[uint16](15, 0), Field[uint16]("imm", 1, 0)},
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			_, _, err := MaskPattern[uint16](Compact{}, tt.layout)
			assert.ErrorIs(t, err, ErrWidthMismatch)
		})
	}
}

func TestMaskPatternIsMatchPredicate(t *testing.T) {
	e, err := NewEntry[uint16](Compact{}, nopLayout(), ParseTemplate("c.nop"))
	require.NoError(t, err, spew.Sdump(nopLayout()))

	// Every word whose fixed bits agree must match, whatever its field bits.
	for _, imm := range []uint16{0, 1, 0x1f} {
		w := imm<<2 | 0b01
		assert.True(t, e.Match(w), "%#04x", w)
		assert.True(t, e.Match(w|1<<12), "%#04x", w|1<<12)
	}
	assert.False(t, e.Match(0x0000))
	assert.False(t, e.Match(0x0081), "rd bits are literal zero in c.nop")
	assert.False(t, e.Match(0x2001))
}
