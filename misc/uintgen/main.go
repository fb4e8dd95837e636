// Command uintgen renders the fixed-width unsigned integer types of package
// uintn (U32, U64, ..., U1024) from uint.go.tmpl.
//
// Go has no way to parameterise a type by a constant, so each width is its own
// type with its own copy of the method set; the methods are thin wrappers that
// slice the word array and call the shared engine. The generator also
// precomputes the per-width constants that must not be derived at run time:
// the decimal form of the maximum value (for literal overflow checks) and the
// divide-by-ten reciprocal used by String.
//
// It is run from the repository root by go generate.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"math/big"
	"math/bits"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"
)

const usage = `Fixed-width unsigned integer generator

Usage: uintgen [-out <dir>] [-widths <bits>,...] [-v] [-dump]`

const defaultWidths = "32,64,128,256,512,1024"

// Error is the class of every error returned by the generator.
var Error = errs.Class("uintgen")

//go:embed uint.go.tmpl
var uintTemplate string

var uintTpl = template.Must(template.New("uint").Parse(uintTemplate))

var (
	big1  = big.NewInt(1)
	big10 = big.NewInt(10)

	// The reciprocal is exact for every B-bit dividend while 10m - 2^(B+3)
	// stays at or below 2^3.
	maxRecipError = big.NewInt(8)
)

// width holds everything the template needs to render one type.
type width struct {
	Name  string // U128
	Lower string // u128

	Bits       int
	DoubleBits int
	Words      int
	Scratch    int
	Digits10   int
	MaxDecimal string

	Recip10      []uint32
	Recip10Lines []string

	HalfName    string
	HalfLower   string
	DoubleName  string
	DoubleLower string

	Conversions []conversion
}

type conversion struct {
	Name    string
	Widens  bool
	Dropped int
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("uintgen failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		out       = "."
		widthList = defaultWidths
		verbose   bool
		dump      bool
	)

	fs := flag.NewFlagSet("uintgen", flag.ContinueOnError)
	fs.StringVar(&out, "out", out, "Directory to write the generated files to")
	fs.StringVar(&widthList, "widths", widthList, "Comma separated list of bit widths to generate")
	fs.BoolVar(&verbose, "v", false, "Log every file written")
	fs.BoolVar(&dump, "dump", false, "Dump the computed widths to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	all, err := parseWidths(widthList)
	if err != nil {
		return err
	}

	widths := make([]width, 0, len(all))
	for _, b := range all {
		w, err := newWidth(b, all)
		if err != nil {
			return err
		}
		widths = append(widths, w)
	}

	if dump {
		spew.Fdump(os.Stderr, widths)
	}

	return generate(logger, out, widths)
}

// parseWidths parses a comma separated list of bit widths, each a power of
// two of at least 32. The result is sorted with duplicates removed.
func parseWidths(s string) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		b, err := strconv.Atoi(part)
		if err != nil {
			return nil, Error.New("width %q is not a number", part)
		}
		if err := checkWidth(b); err != nil {
			return nil, err
		}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return nil, Error.New("no widths given")
	}
	sort.Ints(out)
	return out, nil
}

func checkWidth(b int) error {
	if b < 32 || b&(b-1) != 0 {
		return Error.New("width %d is not a power of two >= 32", b)
	}
	return nil
}

// newWidth computes the template data for a b-bit type. all is the full set
// of widths being generated; it decides which sibling conversions exist.
func newWidth(b int, all []int) (w width, err error) {
	defer Error.WrapP(&err)

	if err := checkWidth(b); err != nil {
		return w, err
	}

	words := b / 32
	maxDec := maxDecimal(b)
	recip, err := reciprocal10(b)
	if err != nil {
		return w, err
	}

	w = width{
		Name:         fmt.Sprintf("U%d", b),
		Lower:        fmt.Sprintf("u%d", b),
		Bits:         b,
		DoubleBits:   2 * b,
		Words:        words,
		Scratch:      scratchWords(words),
		Digits10:     len(maxDec) - 1,
		MaxDecimal:   maxDec,
		Recip10:      recip,
		Recip10Lines: wordLines(recip),
	}

	for _, o := range all {
		switch {
		case o == b:
			continue
		case o == b/2:
			w.HalfName, w.HalfLower = fmt.Sprintf("U%d", o), fmt.Sprintf("u%d", o)
		case o == b*2:
			w.DoubleName, w.DoubleLower = fmt.Sprintf("U%d", o), fmt.Sprintf("u%d", o)
		}
		w.Conversions = append(w.Conversions, conversion{
			Name:    fmt.Sprintf("U%d", o),
			Widens:  o > b,
			Dropped: b - o,
		})
	}

	return w, nil
}

// scratchWords must agree with the function of the same name in package
// uintn: 4n words for the decimal formatter's working values and double-width
// product, plus Karatsuba's 4n + log2(n) + 1.
func scratchWords(n int) int {
	return 8*n + bits.Len(uint(n))
}

// maxDecimal returns 2^b - 1 in decimal.
func maxDecimal(b int) string {
	max := new(big.Int).Lsh(big1, uint(b))
	max.Sub(max, big1)
	return max.String()
}

// reciprocal10 returns m = ceil(2^(b+3) / 10) as b/32 little-endian words.
//
// For any x < 2^b, x*m / 2^(b+3) = x/10 + x*e / (10 * 2^(b+3)) where
// e = 10m - 2^(b+3). The fractional part of x/10 is at most 9/10, so the floor
// is unaffected as long as x*e < 2^(b+3), i.e. e <= 8. This is the same
// "find a multiplier, check the error" approach compilers use for division by
// a constant.
func reciprocal10(b int) ([]uint32, error) {
	k := uint(b + 3)
	pow := new(big.Int).Lsh(big1, k)

	m, rem := new(big.Int).QuoRem(pow, big10, new(big.Int))
	if rem.Sign() != 0 {
		m.Add(m, big1)
	}

	e := new(big.Int).Mul(m, big10)
	e.Sub(e, pow)
	if e.Cmp(maxRecipError) > 0 {
		return nil, Error.New("reciprocal of 10 for %d bits is inexact (error %s)", b, e)
	}
	if m.BitLen() > b {
		return nil, Error.New("reciprocal of 10 for %d bits needs %d bits", b, m.BitLen())
	}

	words := make([]uint32, b/32)
	var t big.Int
	for i := range words {
		t.Rsh(m, uint(32*i))
		words[i] = uint32(t.Uint64())
	}
	return words, nil
}

// wordLines formats words as hex literals, four to a line, each line ending
// in a comma so it can sit inside a composite literal.
func wordLines(words []uint32) []string {
	var lines []string
	for i := 0; i < len(words); i += 4 {
		end := i + 4
		if end > len(words) {
			end = len(words)
		}
		parts := make([]string, 0, 4)
		for _, w := range words[i:end] {
			parts = append(parts, fmt.Sprintf("0x%08x", w))
		}
		lines = append(lines, strings.Join(parts, ", ")+",")
	}
	return lines
}

// render executes the template for w and returns gofmt-ed source.
func render(w width) ([]byte, error) {
	var buf bytes.Buffer
	if err := uintTpl.Execute(&buf, w); err != nil {
		return nil, Error.Wrap(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, Error.New("%s: generated source does not parse: %v", w.Name, err)
	}
	return src, nil
}

func generate(logger *slog.Logger, out string, widths []width) error {
	var g errgroup.Group
	for _, w := range widths {
		w := w // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			src, err := render(w)
			if err != nil {
				return err
			}
			path := filepath.Join(out, w.Lower+".go")
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return Error.Wrap(err)
			}
			logger.Debug("wrote type", "type", w.Name, "path", path, "bytes", len(src))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("generated", "types", len(widths), "out", out)
	return nil
}
