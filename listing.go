package main

import (
	"context"
	"fmt"

	"github.com/rsalmin/asdis/isa"
	"golang.org/x/sync/errgroup"
)

// listingChunk is how many words one worker decodes at a time.
const listingChunk = 256

// Disassembler turns instruction words into text. Compact words go through
// the compressed table; full-width words go to Wide.
type Disassembler struct {
	Compact *isa.Table[uint16]
	Wide    func(w uint32) string
}

func (d *Disassembler) Text(w Word) string {
	if w.Size == 2 {
		return d.Compact.Decode(uint16(w.Raw))
	}
	return d.Wide(w.Raw)
}

// FormatLine renders one line of the listing: address, instruction text and
// the raw word at its own width.
func FormatLine(w Word, text string) string {
	return fmt.Sprintf("0x%08X  %-40s 0x%0*X", w.Addr, text, w.Size*2, w.Raw)
}

// Listing disassembles words using up to workers goroutines. The lines come
// back in the same order as the words.
func Listing(ctx context.Context, d *Disassembler, words []Word, workers int) ([]string, error) {
	lines := make([]string, len(words))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for lo := 0; lo < len(words); lo += listingChunk {
		lo, hi := lo, min(lo+listingChunk, len(words))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				lines[i] = FormatLine(words[i], d.Text(words[i]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to disassemble: %w", err)
	}
	return lines, nil
}
