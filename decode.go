package qubittext

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// Decode unpacks a byte buffer produced by Encode back into text. The
// buffer is scanned MSB-first in fixed code-width windows from bit offset
// zero. Decoding stops cleanly at the EOS code, or when fewer bits than
// one window remain (the encoder's byte-alignment padding; its bit values
// are not inspected). A window matching neither a symbol nor EOS fails
// the whole call with an *InvalidCodeError.
//
// Trailing bytes after EOS are never read, so appending garbage to a
// validly terminated buffer does not change the result.
func (a *Alphabet) Decode(packed []byte) (string, error) {
	var (
		r   = bitio.NewReader(bytes.NewReader(packed))
		eos = uint64(a.EOS())
		out strings.Builder
	)
	for {
		code, err := r.ReadBits(a.width)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Ragged tail: byte-alignment padding, not an error.
			return out.String(), nil
		}
		if err != nil {
			return "", err
		}
		if code == eos {
			return out.String(), nil
		}
		sym, ok := a.Symbol(uint8(code))
		if !ok {
			return "", &InvalidCodeError{Code: uint8(code), Width: a.width}
		}
		out.WriteRune(sym)
	}
}
