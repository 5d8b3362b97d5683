package qubittext

import (
	"fmt"
	"math/bits"
	"strings"
	"unicode/utf8"
)

const (
	// MaxCodeWidth is the widest supported code, in bits.
	MaxCodeWidth = 5

	// MaxSymbols is the largest alphabet that MaxCodeWidth-bit codes can
	// address while leaving one value free for EOS.
	MaxSymbols = 1<<MaxCodeWidth - 1

	// spaceToken is the literal table entry denoting the space character,
	// which could not otherwise survive trimming.
	spaceToken = "space"
)

// Alphabet is an immutable fixed-width code table. The i-th declared
// symbol holds code i; the first unused value, Len(), is reserved as the
// end-of-stream code. Symbols are matched case-insensitively: entries and
// encoder input are both folded to lower case.
//
// An Alphabet is safe for concurrent use by any number of Encode and
// Decode calls.
type Alphabet struct {
	symbols []rune         // code -> symbol, in declaration order
	codes   map[rune]uint8 // symbol -> code
	width   uint8          // bits per code, EOS included
}

// NewAlphabet builds an Alphabet from raw table entries, one symbol per
// entry. Entries are trimmed, empty entries dropped, the spaceToken
// literal mapped to ' ', and everything else lower-cased. Each surviving
// entry must be exactly one character and must not repeat.
//
// The code width is the smallest number of bits covering all symbols plus
// EOS: ceil(log2(len+1)). NewAlphabet fails with an error wrapping
// ErrInvalidTable if no symbols survive or more than MaxCodeWidth bits
// would be needed (more than MaxSymbols symbols).
func NewAlphabet(entries []string) (*Alphabet, error) {
	var (
		symbols []rune
		codes   = make(map[rune]uint8)
	)
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if entry == spaceToken {
			entry = " "
		} else {
			entry = strings.ToLower(entry)
		}
		r, size := utf8.DecodeRuneInString(entry)
		if size != len(entry) || r == utf8.RuneError {
			return nil, fmt.Errorf("%w: entry %q is not a single character", ErrInvalidTable, entry)
		}
		if _, dup := codes[r]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidTable, r)
		}
		if len(symbols) == MaxSymbols {
			return nil, fmt.Errorf("%w: more than %d symbols would need %d-bit codes",
				ErrInvalidTable, MaxSymbols, MaxCodeWidth+1)
		}
		codes[r] = uint8(len(symbols))
		symbols = append(symbols, r)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrInvalidTable)
	}
	return &Alphabet{
		symbols: symbols,
		codes:   codes,
		// bits.Len(n) == ceil(log2(n+1)) for n >= 1; an alphabet of one
		// symbol still needs 1 bit to tell it apart from EOS.
		width: uint8(bits.Len(uint(len(symbols)))),
	}, nil
}

// ParseAlphabet builds an Alphabet from loosely formatted table text:
// comma-separated if any comma is present, otherwise one entry per line.
// Entry normalization and validation are as in NewAlphabet.
func ParseAlphabet(text string) (*Alphabet, error) {
	text = strings.TrimSpace(text)
	var entries []string
	if strings.Contains(text, ",") {
		entries = strings.Split(text, ",")
	} else {
		entries = strings.Split(text, "\n")
	}
	return NewAlphabet(entries)
}

// Len returns the number of symbols (EOS not counted).
func (a *Alphabet) Len() int { return len(a.symbols) }

// Width returns the code width in bits, 1 to MaxCodeWidth.
func (a *Alphabet) Width() uint8 { return a.width }

// EOS returns the reserved end-of-stream code: the first value not
// assigned to any symbol.
func (a *Alphabet) EOS() uint8 { return uint8(len(a.symbols)) }

// Code returns the code assigned to r, and whether r is in the alphabet.
// r must already be lower case; Encode folds its input before lookup.
func (a *Alphabet) Code(r rune) (uint8, bool) {
	c, ok := a.codes[r]
	return c, ok
}

// Symbol returns the symbol assigned to code, and whether code maps to a
// symbol. The EOS code and unassigned values report false.
func (a *Alphabet) Symbol(code uint8) (rune, bool) {
	if int(code) >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[code], true
}

// String renders the table one symbol per line as "code symbol", mainly
// for diagnostics.
func (a *Alphabet) String() string {
	var b strings.Builder
	for i, r := range a.symbols {
		fmt.Fprintf(&b, "%0*b %q\n", int(a.width), i, r)
	}
	fmt.Fprintf(&b, "%0*b EOS\n", int(a.width), a.EOS())
	return b.String()
}
