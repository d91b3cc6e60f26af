package huffmantree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Packed is a byte-aligned bit stream.  The last Pad bits of Data are filler
// and carry no information.
type Packed struct {
	Data []byte
	Pad  byte
}

// BitLen returns the number of meaningful bits.
func (p Packed) BitLen() int {
	return 8*len(p.Data) - int(p.Pad)
}

// Validate checks that Pad is consistent with Data.
func (p Packed) Validate() error {
	if p.Pad > 7 {
		return fmt.Errorf("%w: pad count %d is not in [0, 7]", ErrMalformedArtifact, p.Pad)
	}
	if len(p.Data) == 0 && p.Pad != 0 {
		return fmt.Errorf("%w: pad count %d with no packed bytes", ErrMalformedArtifact, p.Pad)
	}
	return nil
}

// Bits returns the meaningful bits as a string of '0' and '1' characters.
// An invalid Packed yields the error from Validate.
func (p Packed) Bits() (string, error) {
	var buf strings.Builder
	buf.Grow(8 * len(p.Data))
	err := p.forEachBit(func(bit bool) error {
		if bit {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// forEachBit calls fn for each meaningful bit, first bit first.  It stops at
// the first error returned by fn.
func (p Packed) forEachBit(fn func(bit bool) error) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r := bitio.NewReader(bytes.NewReader(p.Data))
	for i, n := 0, p.BitLen(); i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return err
		}
		if err := fn(bit); err != nil {
			return err
		}
	}
	return nil
}

// Pack concatenates the code of each symbol, in order, and packs the result
// into bytes.  A symbol missing from codes is an error.
func Pack(symbols []Symbol, codes CodeTable) (Packed, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for index, symbol := range symbols {
		hc, found := codes[symbol]
		if !found {
			return Packed{}, fmt.Errorf("symbol %q at index %d has no code", rune(symbol), index)
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Packed{}, err
		}
	}
	skipped, err := w.Align()
	if err != nil {
		return Packed{}, err
	}
	if err := w.Close(); err != nil {
		return Packed{}, err
	}
	return Packed{Data: buf.Bytes(), Pad: skipped}, nil
}

// BitString concatenates the paths of each symbol, in order.
func BitString(symbols []Symbol, codes CodeTable) (string, error) {
	var buf strings.Builder
	for index, symbol := range symbols {
		hc, found := codes[symbol]
		if !found {
			return "", fmt.Errorf("symbol %q at index %d has no code", rune(symbol), index)
		}
		buf.WriteString(hc.Path())
	}
	return buf.String(), nil
}

// AddPadding appends '0' characters to bits until its length is a multiple
// of 8, and returns the padded string along with the number of characters
// added.
func AddPadding(bits string) (string, byte) {
	pad := byte((8 - len(bits)%8) % 8)
	return bits + strings.Repeat("0", int(pad)), pad
}

// PackString pads and packs a string of '0' and '1' characters.  Any other
// character yields ErrInvalidBitPath.
func PackString(bits string) (Packed, error) {
	padded, pad := AddPadding(bits)
	data := make([]byte, len(padded)/8)
	for index := 0; index < len(padded); index++ {
		var bit byte
		switch padded[index] {
		case '0':
		case '1':
			bit = 1
		default:
			return Packed{}, fmt.Errorf("%w: %q at offset %d is not a bit", ErrInvalidBitPath, padded[index], index)
		}
		data[index/8] |= bit << (7 - uint(index%8))
	}
	return Packed{Data: data, Pad: pad}, nil
}
