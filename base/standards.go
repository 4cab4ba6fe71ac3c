package base

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Extension byte
type Size uint8
type Standard uint16
type Standards map[Standard]struct{}

var ErrUnknownExtension = errors.New("unknown extension")

const (
	RVInvalid Size = 0
	RV32      Size = 32
	RV64      Size = 64
	RV128     Size = 128
)

const (
	ExtInvalid Extension = 0
	ExtI       Extension = 'I' // base integer, with Zicsr and Zifencei
	ExtM       Extension = 'M' // multiply and divide
	ExtA       Extension = 'A' // atomic
	ExtS       Extension = 'S' // supervisor
	ExtC       Extension = 'C' // compressed
)

const (
	Invalid = Standard(0)

	RV32Any = Standard(uint16(RV32))
	RV32I   = Standard(uint16(RV32) | uint16(ExtI)<<8)
	RV32M   = Standard(uint16(RV32) | uint16(ExtM)<<8)
	RV32A   = Standard(uint16(RV32) | uint16(ExtA)<<8)
	RV32S   = Standard(uint16(RV32) | uint16(ExtS)<<8)
	RV32C   = Standard(uint16(RV32) | uint16(ExtC)<<8)
)

func MakeStandard(size Size, ext Extension) Standard {
	return Standard(uint16(size) | uint16(ext)<<8)
}

func (s Standard) Size() Size {
	return Size(s & 0xff)
}

func (s Standard) Extension() Extension {
	return Extension(s >> 8)
}

func (s Standard) Base() Standard {
	return Standard(s & 0xff)
}

func (s Standard) String() string {
	size := s.Size()
	ext := s.Extension()
	if ext == ExtInvalid {
		return fmt.Sprintf("RV%d", size)
	}
	return fmt.Sprintf("RV%d%c", size, ext)
}

func (ss Standards) Has(s Standard) bool {
	_, ok := ss[s]
	return ok
}

func (ss Standards) Add(s Standard) {
	ss[s] = struct{}{}
}

func (ss Standards) List() []Standard {
	ssList := make([]Standard, 0, len(ss))
	for s := range ss {
		ssList = append(ssList, s)
	}
	sort.Slice(ssList, func(i, j int) bool {
		return ssList[i] < ssList[j]
	})
	return ssList
}

func (ss Standards) String() string {
	var buf strings.Builder
	for i, s := range ss.List() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s.String())
	}
	return buf.String()
}

// ParseStandard parses a name like "rv32m". It returns Invalid for anything
// it doesn't recognize.
func ParseStandard(s string) Standard {
	s = strings.ToLower(s)
	if !strings.HasPrefix(s, "rv") || len(s) < 4 {
		return Invalid
	}
	bitsStr := s[2 : len(s)-1]
	var bits Size
	switch bitsStr {
	case "32":
		bits = RV32
	case "64":
		bits = RV64
	case "128":
		bits = RV128
	default:
		return Invalid
	}
	ext := Extension(strings.ToUpper(string(s[len(s)-1]))[0])

	return MakeStandard(bits, ext)
}

// ParseExtensions turns a string of extension letters like "IMAC" into the
// RV32 standards they name. I is always included.
func ParseExtensions(letters string) (Standards, error) {
	ss := Standards{RV32I: {}}
	for _, r := range strings.ToUpper(letters) {
		switch ext := Extension(r); ext {
		case ExtI, ExtM, ExtA, ExtS, ExtC:
			ss.Add(MakeStandard(RV32, ext))
		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownExtension, r)
		}
	}
	return ss, nil
}
