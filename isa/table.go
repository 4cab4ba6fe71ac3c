package isa

import (
	"fmt"
)

// Entry is a single instruction of a table: its binary layout, its text
// template and the match mask and pattern derived from the layout.
//
// Entries are immutable once built.
type Entry[W Word] struct {
	Layout   Layout[W]
	Template Template

	width   Width[W]
	mask    W
	pattern W
}

// NewEntry validates a layout and precomputes its match mask and pattern.
func NewEntry[W Word](width Width[W], l Layout[W], t Template) (*Entry[W], error) {
	if err := l.Validate(width); err != nil {
		return nil, fmt.Errorf("invalid layout for %q: %w", t.String(), err)
	}
	mask, pattern, err := MaskPattern(width, l)
	if err != nil {
		return nil, fmt.Errorf("invalid layout for %q: %w", t.String(), err)
	}
	return &Entry[W]{
		Layout:   l,
		Template: t,
		width:    width,
		mask:     mask,
		pattern:  pattern,
	}, nil
}

func (e *Entry[W]) Mask() W    { return e.mask }
func (e *Entry[W]) Pattern() W { return e.pattern }

// Match reports whether w is an encoding of this instruction.
func (e *Entry[W]) Match(w W) bool {
	return w&e.mask == e.pattern
}

// Fields extracts the entry's field values from w. It doesn't check that w
// matches.
func (e *Entry[W]) Fields(w W) Fields {
	fields, err := Extract(e.width, e.Layout, w)
	if err != nil {
		// NewEntry has already validated the layout, so this can only
		// happen if someone has modified it since.
		panic(fmt.Sprintf("extracting fields of %q: %s", e.Template.String(), err))
	}
	return fields
}

func (e *Entry[W]) String() string {
	n := e.width.Bits()
	return fmt.Sprintf("%q mask=%s pattern=%s [%s]", e.Template.String(), bitString(e.mask, n), bitString(e.pattern, n), e.Layout)
}

// Table is an ordered list of instruction entries for one word width, along
// with the formatters used to display their fields.
//
// The order of entries is the match priority: the first entry that matches
// a word wins, so more specific encodings must come before more general
// ones. A table is read-only after construction and safe for concurrent use.
type Table[W Word] struct {
	width      Width[W]
	entries    []*Entry[W]
	formatters Formatters
}

func NewTable[W Word](width Width[W], entries []*Entry[W], formatters Formatters) *Table[W] {
	if formatters == nil {
		formatters = Formatters{}
	}
	return &Table[W]{
		width:      width,
		entries:    entries,
		formatters: formatters,
	}
}

func (t *Table[W]) Width() Width[W] { return t.width }

func (t *Table[W]) Entries() []*Entry[W] { return t.entries }

func (t *Table[W]) Formatters() Formatters { return t.formatters }

// NotFound is the text Decode returns for a word no entry matches.
func (t *Table[W]) NotFound() string {
	return fmt.Sprintf("%s. Not found!", t.width.Name())
}

// Lookup finds the first entry matching w and returns it along with the
// field values extracted from w.
func (t *Table[W]) Lookup(w W) (*Entry[W], Fields, bool) {
	for _, e := range t.entries {
		if e.Match(w) {
			return e, e.Fields(w), true
		}
	}
	return nil, nil, false
}

// Decode renders the first entry matching w, or the table's not-found text.
func (t *Table[W]) Decode(w W) string {
	e, fields, ok := t.Lookup(w)
	if !ok {
		return t.NotFound()
	}
	return Render(e.Template, fields, t.formatters)
}

// Decode is shorthand for t.Decode(w).
func Decode[W Word](w W, t *Table[W]) string {
	return t.Decode(w)
}
