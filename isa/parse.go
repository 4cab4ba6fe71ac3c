package isa

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("invalid instruction syntax")

// ParseInstruction builds a table entry from its textual description, which
// has the form
//
//	"c.lw rd, imm(rs1)", 010, imm[5:3], rs1[2:0], imm[2|6], rd[2:0], 00
//
// The quoted text is the template. Each following group is either a run of
// binary digits, which must match literally, or a field name with a bitspec
// in brackets. Groups are given most significant first.
func ParseInstruction[W Word](width Width[W], src string) (*Entry[W], error) {
	src = strings.TrimSpace(src)
	if !strings.HasPrefix(src, `"`) {
		return nil, fmt.Errorf("%q: instruction text must be quoted: %w", src, ErrSyntax)
	}
	end := strings.IndexByte(src[1:], '"')
	if end < 0 {
		return nil, fmt.Errorf("%q: unterminated instruction text: %w", src, ErrSyntax)
	}
	text, rest := src[1:1+end], src[2+end:]

	var l Layout[W]
	rest = strings.TrimSpace(rest)
	if rest != "" {
		if rest[0] != ',' {
			return nil, fmt.Errorf("%q: expected ',' after instruction text: %w", src, ErrSyntax)
		}
		for _, raw := range strings.Split(rest[1:], ",") {
			seg, err := parseGroup(width, strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%q: %w", text, err)
			}
			l = append(l, seg)
		}
	}

	return NewEntry(width, l, ParseTemplate(text))
}

// MustParse is like ParseInstruction but panics if the description is
// malformed. It is meant for static tables built at program start.
func MustParse[W Word](width Width[W], src string) *Entry[W] {
	e, err := ParseInstruction(width, src)
	if err != nil {
		panic(err)
	}
	return e
}

func parseGroup[W Word](width Width[W], raw string) (Segment[W], error) {
	if raw == "" {
		return Segment[W]{}, fmt.Errorf("empty bit group: %w", ErrSyntax)
	}
	if isBinary(raw) {
		v, err := width.ParseBinary(raw)
		if err != nil {
			return Segment[W]{}, fmt.Errorf("bit group %q: %w", raw, err)
		}
		return Literal(uint(len(raw)), v), nil
	}

	name, spec := partition(raw, "[")
	if !strings.HasSuffix(spec, "]") {
		return Segment[W]{}, fmt.Errorf("bit group %q: expected binary digits or name[bits]: %w", raw, ErrSyntax)
	}
	name = strings.TrimSpace(name)
	if !validFieldName(name) {
		return Segment[W]{}, fmt.Errorf("bit group %q: %w", raw, ErrBadFieldName)
	}
	dest, err := ParseBitspec(spec[:len(spec)-1])
	if err != nil {
		return Segment[W]{}, fmt.Errorf("field %q: %w", name, err)
	}
	return Field[W](name, dest...), nil
}

// ParseBitspec expands a bitspec such as "11|4|9:8|10|6|7|3:1|5" into the
// list of destination bits it describes, most significant source bit first.
// A "hi:lo" range expands to hi, hi-1, ..., lo.
func ParseBitspec(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyBitspec
	}
	var ret []uint
	for _, rawPart := range strings.Split(raw, "|") {
		rawTop, rawBottom, isRange := strings.Cut(rawPart, ":")
		if !isRange {
			rawBottom = rawTop
		}
		top, err := strconv.ParseUint(strings.TrimSpace(rawTop), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bitspec %q: bad bit index %q: %w", raw, rawTop, ErrSyntax)
		}
		bottom, err := strconv.ParseUint(strings.TrimSpace(rawBottom), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bitspec %q: bad bit index %q: %w", raw, rawBottom, ErrSyntax)
		}
		if top < bottom {
			return nil, fmt.Errorf("bitspec %q: range %d:%d must be written high:low: %w", raw, top, bottom, ErrSyntax)
		}
		for i := top; ; i-- {
			ret = append(ret, uint(i))
			if i == bottom {
				break
			}
		}
	}
	return ret, nil
}

func isBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return s != ""
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
