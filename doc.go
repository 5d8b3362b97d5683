// Package qubittext implements a fixed-width character codec over small,
// user-declared alphabets.
//
// # Overview
//
// QubitText maps each symbol of an alphabet (at most 31 symbols) to a
// fixed-width binary code of 1 to 5 bits, the minimum width that can also
// address one reserved end-of-stream (EOS) code. Text is encoded by
// concatenating the codes of its characters, appending EOS, and packing
// the result into bytes MSB-first with zero padding in the final byte.
// Because EOS terminates the stream, the decoder recovers the exact text
// from a byte-padded buffer without a separate length field.
//
// # When to Use QubitText
//
// QubitText suits:
//   - Telemetry or radio payloads restricted to a small known alphabet
//   - Classroom and protocol experiments with sub-byte symbol widths
//   - Any channel where text must survive as a flat, self-terminating
//     byte buffer
//
// For an alphabet of N symbols the per-character cost is
// ceil(log2(N+1)) bits: 26 letters pack at 5 bits/char, a 15-symbol
// alphabet at 4.
//
// # When NOT to Use QubitText
//
// QubitText is not suitable for:
//   - Alphabets beyond 31 symbols (would need more than 5 bits)
//   - Inputs whose symbol frequencies are skewed (use an entropy coder)
//   - Binary data (use a general-purpose compressor)
//
// # Basic Usage
//
//	alpha, err := qubittext.NewAlphabet([]string{"a", "b", "c", "space"})
//	if err != nil {
//		// empty or oversized alphabet
//	}
//
//	packed, bits, err := alpha.Encode("cab cab")
//	// packed is the padded byte buffer, bits the symbol-only bit count
//
//	text, err := alpha.Decode(packed)
//	// text == "cab cab"
//
// Alphabets can also be read from loosely formatted table files
// (comma-separated or one symbol per line) with [ParseAlphabet], and
// packed buffers move through text files via [FormatHex] and [ParseHex].
//
// # Properties
//
// An Alphabet is immutable after construction and safe for concurrent
// use; Encode and Decode hold no shared state. Both are all-or-nothing:
// an unsupported character or an unassigned code fails the whole call
// with a typed error and no partial output.
package qubittext
