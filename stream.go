package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrTruncated = errors.New("truncated instruction")

// Word is one instruction word of a program image.
type Word struct {
	Addr uint32
	Raw  uint32
	Size int // in bytes, 2 or 4
}

// wordSize returns the length of the instruction whose first byte is b. Only
// the two low bits matter: 11 marks a 32-bit instruction, anything else a
// 16-bit one.
func wordSize(b byte) int {
	if b&0b11 == 0b11 {
		return 4
	}
	return 2
}

// SplitWords cuts a little-endian program image into instruction words,
// numbering them from start. If the image ends partway through a word, it
// returns the complete words before it along with an error wrapping
// ErrTruncated.
func SplitWords(data []byte, start uint32) ([]Word, error) {
	var words []Word
	addr := start
	for len(data) > 0 {
		size := wordSize(data[0])
		if len(data) < size {
			return words, fmt.Errorf("%w at 0x%08X: need %d bytes, have %d", ErrTruncated, addr, size, len(data))
		}

		var raw uint32
		if size == 2 {
			raw = uint32(binary.LittleEndian.Uint16(data))
		} else {
			raw = binary.LittleEndian.Uint32(data)
		}
		words = append(words, Word{Addr: addr, Raw: raw, Size: size})

		data = data[size:]
		addr += uint32(size)
	}
	return words, nil
}
