package isa

import (
	"fmt"
)

// Fields maps each field name in a layout to its reconstructed value.
type Fields map[string]uint32

// Extract reconstructs the value of every named field in the layout from
// the raw word w.
//
// Segments are walked from the most significant bit of the word down. Each
// source bit a field consumes is placed at the destination bit given for it,
// so a field value comes out already assembled rather than shifted by its
// lowest destination bit. Several segments may share a name, which is how an
// immediate that is split into non-adjacent chunks is described; their
// contributions are ORed together into a single value.
func Extract[W Word](width Width[W], l Layout[W], w W) (Fields, error) {
	fields := make(Fields)
	remaining := width.Bits()

	for i, s := range l {
		if !s.IsField() {
			if s.Len > remaining {
				return nil, fmt.Errorf("segment %d: literal of %d bits with %d bits left: %w", i, s.Len, remaining, ErrWidthMismatch)
			}
			remaining -= s.Len
			continue
		}

		v := fields[s.Name]
		for _, dest := range s.Dest {
			if remaining == 0 {
				return nil, fmt.Errorf("segment %d: field %q runs past bit 0: %w", i, s.Name, ErrWidthMismatch)
			}
			remaining--
			v |= width.Bit(w, remaining) << dest
		}
		fields[s.Name] = v
	}

	return fields, nil
}
