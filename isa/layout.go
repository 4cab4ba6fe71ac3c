package isa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWidthMismatch   = errors.New("layout width does not match word width")
	ErrEmptyBitspec    = errors.New("field has an empty bitspec")
	ErrBadFieldName    = errors.New("invalid field name")
	ErrLiteralOverflow = errors.New("literal value does not fit its length")
	ErrDestRange       = errors.New("field destination bit out of range")
)

// maxDestBit is the highest destination bit a decoded field value can hold.
const maxDestBit = 31

// Segment is one piece of an instruction's binary layout, read from the
// most significant bit down. It is either a literal run of fixed bits or a
// named field.
//
// A field consumes len(Dest) consecutive bits from the word and drops each
// of them, in order, into the bit of the field value named by the
// corresponding Dest entry.
type Segment[W Word] struct {
	Len   uint
	Value W

	Name string
	Dest []uint
}

// Literal returns a segment of n fixed bits that must equal v.
func Literal[W Word](n uint, v W) Segment[W] {
	return Segment[W]{Len: n, Value: v}
}

// Field returns a named field segment with the given destination bits.
func Field[W Word](name string, dest ...uint) Segment[W] {
	return Segment[W]{Name: name, Dest: dest}
}

func (s Segment[W]) IsField() bool {
	return s.Name != "" || s.Dest != nil
}

// Width is the number of source bits the segment consumes.
func (s Segment[W]) Width() uint {
	if s.IsField() {
		return uint(len(s.Dest))
	}
	return s.Len
}

func (s Segment[W]) String() string {
	if s.IsField() {
		return fmt.Sprintf("%s%v", s.Name, s.Dest)
	}
	return fmt.Sprintf("%0*b", int(s.Len), s.Value)
}

// Layout is the full binary description of one instruction encoding.
type Layout[W Word] []Segment[W]

// Width is the total number of bits covered by the layout.
func (l Layout[W]) Width() uint {
	var n uint
	for _, s := range l {
		n += s.Width()
	}
	return n
}

// Validate checks the layout covers exactly the given word width and that
// each segment is well formed.
func (l Layout[W]) Validate(width Width[W]) error {
	for i, s := range l {
		if !s.IsField() {
			if s.Len == 0 || s.Len > width.Bits() {
				return fmt.Errorf("segment %d: literal of %d bits: %w", i, s.Len, ErrWidthMismatch)
			}
			if s.Len < width.Bits() && s.Value>>s.Len != 0 {
				return fmt.Errorf("segment %d: %#b in %d bits: %w", i, s.Value, s.Len, ErrLiteralOverflow)
			}
			continue
		}
		if !validFieldName(s.Name) {
			return fmt.Errorf("segment %d: %q: %w", i, s.Name, ErrBadFieldName)
		}
		if len(s.Dest) == 0 {
			return fmt.Errorf("segment %d: field %q: %w", i, s.Name, ErrEmptyBitspec)
		}
		for _, d := range s.Dest {
			if d > maxDestBit {
				return fmt.Errorf("segment %d: field %q bit %d: %w", i, s.Name, d, ErrDestRange)
			}
		}
	}
	if got := l.Width(); got != width.Bits() {
		return fmt.Errorf("layout covers %d bits, %s needs %d: %w", got, width.Name(), width.Bits(), ErrWidthMismatch)
	}
	return nil
}

func (l Layout[W]) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// validFieldName reports whether name is a letter followed by letters,
// digits or dots, the same shape the template tokenizer recognizes.
func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case isLetter(c):
		case i > 0 && (isDigit(c) || c == '.'):
		default:
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
