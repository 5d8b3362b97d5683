package qubittext

import (
	"errors"
	"fmt"
)

// ErrInvalidTable indicates an alphabet that cannot form a valid code
// table: no symbols, more symbols than 5-bit codes can address, an entry
// that is not a single character, or a duplicate entry. Errors returned
// by NewAlphabet and ParseAlphabet wrap this sentinel; test with
// errors.Is.
var ErrInvalidTable = errors.New("qubittext: invalid alphabet table")

// An UnsupportedSymbolError reports the first input character Encode
// found with no code assignment. The attempted input produces no output.
type UnsupportedSymbolError struct {
	Char rune
}

func (e *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("qubittext: unsupported character %q", e.Char)
}

// An InvalidCodeError reports a decoded bit window whose value is neither
// an assigned symbol code nor the EOS code. Width is the code width the
// window was read at.
type InvalidCodeError struct {
	Code  uint8
	Width uint8
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("qubittext: invalid code %0*b", int(e.Width), e.Code)
}
