package qubittext

import (
	"bytes"
	"errors"
	"testing"
)

func abcAlphabet(t *testing.T) *Alphabet {
	t.Helper()
	alpha, err := NewAlphabet([]string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	return alpha
}

// a=00 b=01 c=10 eos=11 at width 2.
func TestEncodeConcrete(t *testing.T) {
	alpha := abcAlphabet(t)
	packed, bits, err := alpha.Encode("ab")
	if err != nil {
		t.Fatal(err)
	}
	// 00 01 11 + two pad bits -> 0b00011100
	if !bytes.Equal(packed, []byte{0x1c}) {
		t.Fatalf("packed = %#v, want [0x1c]", packed)
	}
	if bits != 4 {
		t.Fatalf("symbol bits = %d, want 4", bits)
	}
}

func TestEncodeExactByte(t *testing.T) {
	alpha := abcAlphabet(t)
	packed, bits, err := alpha.Encode("abc")
	if err != nil {
		t.Fatal(err)
	}
	// 00 01 10 11 fills the byte exactly, no padding.
	if !bytes.Equal(packed, []byte{0x1b}) {
		t.Fatalf("packed = %#v, want [0x1b]", packed)
	}
	if bits != 6 {
		t.Fatalf("symbol bits = %d, want 6", bits)
	}
}

func TestEncodeEmptyText(t *testing.T) {
	alpha := abcAlphabet(t)
	packed, bits, err := alpha.Encode("")
	if err != nil {
		t.Fatal(err)
	}
	// EOS alone: 11 + six pad bits.
	if !bytes.Equal(packed, []byte{0xc0}) {
		t.Fatalf("packed = %#v, want [0xc0]", packed)
	}
	if bits != 0 {
		t.Fatalf("symbol bits = %d, want 0", bits)
	}
}

func TestEncodeCaseFolds(t *testing.T) {
	alpha := abcAlphabet(t)
	upper, _, err := alpha.Encode("AbC")
	if err != nil {
		t.Fatal(err)
	}
	lower, _, err := alpha.Encode("abc")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(upper, lower) {
		t.Fatalf("folded encode differs: %#v vs %#v", upper, lower)
	}
}

func TestEncodeUnsupportedSymbol(t *testing.T) {
	alpha := abcAlphabet(t)
	packed, bits, err := alpha.Encode("abz")
	var unsupported *UnsupportedSymbolError
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %v, want *UnsupportedSymbolError", err)
	}
	if unsupported.Char != 'z' {
		t.Fatalf("Char = %q, want 'z'", unsupported.Char)
	}
	if packed != nil || bits != 0 {
		t.Fatalf("partial output on failure: %#v, %d", packed, bits)
	}
}

func TestEncodeSingleSymbolAlphabet(t *testing.T) {
	alpha, err := NewAlphabet([]string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	if alpha.Width() != 1 {
		t.Fatalf("width = %d, want 1", alpha.Width())
	}
	packed, bits, err := alpha.Encode("xxx")
	if err != nil {
		t.Fatal(err)
	}
	// 0 0 0 1 + four pad bits -> 0b00010000
	if !bytes.Equal(packed, []byte{0x10}) {
		t.Fatalf("packed = %#v, want [0x10]", packed)
	}
	if bits != 3 {
		t.Fatalf("symbol bits = %d, want 3", bits)
	}
}
