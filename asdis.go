package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rsalmin/asdis/base"
	"github.com/rsalmin/asdis/isa"
	"github.com/rsalmin/asdis/tables"
	"github.com/sirupsen/logrus"
)

const defaultProgram = "prog.bin"

type options struct {
	program string
	start   uint32
	mode    string
	table   string
	ext     string
	workers int
	dump    bool
	verbose bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logrus.Fatal(err)
	}
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("asdis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: asdis [flags] [file]\n\nDisassembles a RISC-V program image (default %s).\n\n", defaultProgram)
		fs.PrintDefaults()
	}

	opts := &options{}
	start := fs.String("start", "0", "address of the first instruction, in hex")
	fs.StringVar(&opts.mode, "mode", "fixed", "decoder for 32-bit words: fixed or table")
	fs.StringVar(&opts.table, "table", "", "file of compressed instruction descriptions to use instead of the built-in table")
	fs.StringVar(&opts.ext, "ext", "IMA", "extensions the fixed decoder recognizes")
	fs.IntVar(&opts.workers, "j", 4, "number of decode workers")
	fs.BoolVar(&opts.dump, "dump", false, "dump the instruction tables to stderr")
	fs.BoolVar(&opts.verbose, "v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	addr, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(*start), "0x"), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid start address %q: %w", *start, err)
	}
	opts.start = uint32(addr)

	switch fs.NArg() {
	case 0:
		opts.program = defaultProgram
	case 1:
		opts.program = fs.Arg(0)
	default:
		fs.Usage()
		return nil, fmt.Errorf("expected at most one program file, got %d", fs.NArg())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	d, err := newDisassembler(opts, stderr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.program)
	if err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"file":  opts.program,
		"bytes": len(data),
		"start": fmt.Sprintf("0x%08X", opts.start),
	}).Debug("read program")

	words, err := SplitWords(data, opts.start)
	if err != nil {
		if !errors.Is(err, ErrTruncated) {
			return err
		}
		logrus.WithError(err).Warn("ignoring trailing bytes")
	}

	lines, err := Listing(ctx, d, words, opts.workers)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
	}
	return nil
}

func newDisassembler(opts *options, stderr io.Writer) (*Disassembler, error) {
	compact, err := compactTable(opts.table)
	if err != nil {
		return nil, err
	}
	d := &Disassembler{Compact: compact}

	switch opts.mode {
	case "fixed":
		stds, err := base.ParseExtensions(opts.ext)
		if err != nil {
			return nil, fmt.Errorf("invalid -ext: %w", err)
		}
		ops := base.NewOpcodeTable(stds.List()...)
		logrus.WithFields(logrus.Fields{
			"standards": stds.String(),
			"ops":       len(ops.Ops()),
		}).Debug("built opcode table")
		d.Wide = func(w uint32) string {
			return base.Translate(w, ops)
		}
		if opts.dump {
			spew.Fdump(stderr, compact.Entries(), ops.Ops())
		}
	case "table":
		wide, err := tables.RV32I()
		if err != nil {
			return nil, err
		}
		d.Wide = wide.Decode
		if opts.dump {
			spew.Fdump(stderr, compact.Entries(), wide.Entries())
		}
	default:
		return nil, fmt.Errorf("unknown -mode %q", opts.mode)
	}
	return d, nil
}

func compactTable(path string) (*isa.Table[uint16], error) {
	if path == "" {
		return tables.RV32C()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open instruction table: %w", err)
	}
	defer f.Close()

	t, err := isa.LoadTable[uint16](f, isa.Compact{}, tables.CompactFormatters())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	logrus.WithFields(logrus.Fields{
		"file":    path,
		"entries": len(t.Entries()),
	}).Debug("loaded instruction table")
	return t, nil
}
