package qubittext

import (
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	alpha := abcAlphabet(t)
	text := "abcabcab"
	packed, bits, err := alpha.Encode(text)
	if err != nil {
		t.Fatal(err)
	}
	m := Measure(text, packed, bits)
	if m.OriginalBytes != 8 {
		t.Errorf("OriginalBytes = %d, want 8", m.OriginalBytes)
	}
	// 8 symbols + EOS at width 2 = 18 bits = 3 bytes.
	if m.CompressedBytes != 3 || m.CompressedBits != 24 {
		t.Errorf("CompressedBytes=%d CompressedBits=%d, want 3 and 24",
			m.CompressedBytes, m.CompressedBits)
	}
	if m.SymbolBits != 16 {
		t.Errorf("SymbolBits = %d, want 16", m.SymbolBits)
	}
	if want := 8.0 / 3.0; m.Ratio != want {
		t.Errorf("Ratio = %v, want %v", m.Ratio, want)
	}
}

func TestMeasureEmptyBuffer(t *testing.T) {
	m := Measure("", nil, 0)
	if !math.IsInf(m.Ratio, 1) {
		t.Fatalf("Ratio = %v, want +Inf", m.Ratio)
	}
}
