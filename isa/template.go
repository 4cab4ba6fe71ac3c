package isa

import (
	"strings"
)

// Part is one piece of a text template: either literal text, or a reference
// to a field whose value is substituted when rendering.
type Part struct {
	Text    string
	IsField bool
}

// Text returns a literal template part.
func Text(s string) Part {
	return Part{Text: s}
}

// FieldRef returns a template part referring to the named field.
func FieldRef(name string) Part {
	return Part{Text: name, IsField: true}
}

// Template is a parsed mnemonic string such as "c.lw rd, imm(rs1)".
type Template []Part

// ParseTemplate splits a human-readable instruction string into literal text
// and field references.
//
// An identifier is a letter followed by any run of letters, digits and dots.
// The first identifier is the mnemonic itself and stays part of the literal
// text; each later identifier becomes a field reference.
func ParseTemplate(text string) Template {
	var ret Template
	var lit strings.Builder
	seenMnemonic := false

	for i := 0; i < len(text); {
		if !isLetter(text[i]) {
			lit.WriteByte(text[i])
			i++
			continue
		}
		j := i + 1
		for j < len(text) && (isLetter(text[j]) || isDigit(text[j]) || text[j] == '.') {
			j++
		}
		ident := text[i:j]
		i = j

		if !seenMnemonic {
			seenMnemonic = true
			lit.WriteString(ident)
			continue
		}
		if lit.Len() > 0 {
			ret = append(ret, Text(lit.String()))
			lit.Reset()
		}
		ret = append(ret, FieldRef(ident))
	}
	if lit.Len() > 0 {
		ret = append(ret, Text(lit.String()))
	}
	return ret
}

// Fields returns the names of the fields the template refers to, in order.
func (t Template) Fields() []string {
	var ret []string
	for _, p := range t {
		if p.IsField {
			ret = append(ret, p.Text)
		}
	}
	return ret
}

// String reassembles the template source text.
func (t Template) String() string {
	var b strings.Builder
	for _, p := range t {
		b.WriteString(p.Text)
	}
	return b.String()
}
