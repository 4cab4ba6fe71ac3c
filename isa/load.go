package isa

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadTable reads an instruction table written one instruction per line in
// the form accepted by ParseInstruction. Blank lines and anything after a
// '#' outside the quoted text are ignored.
func LoadTable[W Word](r io.Reader, width Width[W], formatters Formatters) (*Table[W], error) {
	var entries []*Entry[W]

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(trimComments(sc.Text()))
		if line == "" {
			continue
		}
		e, err := ParseInstruction(width, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instruction table: %w", err)
	}

	return NewTable(width, entries, formatters), nil
}

func trimComments(line string) string {
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return line[:i]
			}
		}
	}
	return line
}
