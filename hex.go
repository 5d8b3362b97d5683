package qubittext

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FormatHex renders a packed buffer in the textual interchange form used
// by hex files: each byte as lowercase "0xHH", joined by commas, in byte
// order. An empty buffer renders as the empty string.
func FormatHex(packed []byte) string {
	const digits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(len(packed) * 5)
	for i, x := range packed {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("0x")
		b.WriteByte(digits[x>>4])
		b.WriteByte(digits[x&0xf])
	}
	return b.String()
}

// ParseHex parses the textual interchange form back into bytes. Input
// starting with "0x" is read as comma-separated 0xHH values; anything
// else as plain hex digits. Whitespace around the text and around each
// value is ignored.
func ParseHex(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.HasPrefix(text, "0x") {
		raw, err := hex.DecodeString(text)
		if err != nil {
			return nil, errors.Wrap(err, "qubittext: malformed hex input")
		}
		return raw, nil
	}
	parts := strings.Split(text, ",")
	packed := make([]byte, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseUint(strings.TrimPrefix(part, "0x"), 16, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "qubittext: malformed hex value %q", part)
		}
		packed = append(packed, byte(v))
	}
	return packed, nil
}
