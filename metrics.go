package qubittext

import "math"

// Metrics summarize one encode or decode in the units the original tool
// reported: byte sizes on both sides, the total packed size in bits, the
// symbol-only bit count (EOS and padding excluded), and the byte-level
// compression ratio.
type Metrics struct {
	OriginalBytes   int
	CompressedBytes int
	CompressedBits  int
	SymbolBits      int
	Ratio           float64
}

// Measure computes Metrics for a packed buffer against the normalized
// (case-folded) text it represents. symbolBits is the count returned by
// Encode, or len(text)*width when reconstructed after a decode. Ratio is
// OriginalBytes/CompressedBytes, +Inf when the buffer is empty.
func Measure(text string, packed []byte, symbolBits int) Metrics {
	m := Metrics{
		OriginalBytes:   len(text),
		CompressedBytes: len(packed),
		CompressedBits:  len(packed) * 8,
		SymbolBits:      symbolBits,
		Ratio:           math.Inf(1),
	}
	if len(packed) > 0 {
		m.Ratio = float64(m.OriginalBytes) / float64(m.CompressedBytes)
	}
	return m
}
