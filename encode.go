package qubittext

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
)

// Encode packs text into a byte buffer of fixed-width codes. The input is
// folded to lower case, each character's code is emitted MSB-first in
// input order, the EOS code is appended, and the final byte is padded
// with zero bits. It returns the packed buffer and the bit count of the
// symbol portion alone (EOS and padding excluded), a reporting value the
// decoder does not need.
//
// Encode is all-or-nothing: the first character without a code assignment
// fails the call with an *UnsupportedSymbolError and no output.
func (a *Alphabet) Encode(text string) ([]byte, int, error) {
	var (
		buf    bytes.Buffer
		w      = bitio.NewWriter(&buf)
		nrunes int
	)
	for _, r := range strings.ToLower(text) {
		code, ok := a.Code(r)
		if !ok {
			return nil, 0, &UnsupportedSymbolError{Char: r}
		}
		if err := w.WriteBits(uint64(code), a.width); err != nil {
			return nil, 0, err
		}
		nrunes++
	}
	if err := w.WriteBits(uint64(a.EOS()), a.width); err != nil {
		return nil, 0, err
	}
	// Close flushes the partial byte, zero-padded on its low bits.
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), nrunes * int(a.width), nil
}
