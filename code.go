package huffmantree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest bit-path a Code can hold.
const maxBitsPerCode = 64

// Code represents a bit-path through a Huffman tree.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the path
	// is the most significant of the low Size bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= maxBitsPerCode, "size %d > maxBitsPerCode %d", size, maxBitsPerCode)
	return Code{Size: size, Bits: bits}
}

// Append returns the Code that is one bit longer than hc.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code %s cannot grow past %d bits", hc, maxBitsPerCode)
	hc.Size++
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	return hc
}

// Path returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Path() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// HasPrefix returns true iff prefix is a (possibly equal) prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Path())
}

var _ fmt.Stringer = Code{}

// CodeTable maps each symbol of a tree to its bit-path.
type CodeTable map[Symbol]Code

// Paths returns the table with every Code rendered by Code.Path.
func (table CodeTable) Paths() map[Symbol]string {
	out := make(map[Symbol]string, len(table))
	for symbol, hc := range table {
		out[symbol] = hc.Path()
	}
	return out
}

// String returns a stable, human-readable rendering of the table, sorted by
// symbol.
func (table CodeTable) String() string {
	symbols := make(bySymbol, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()

	var buf strings.Builder
	buf.WriteByte('{')
	for index, symbol := range symbols {
		if index > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.QuoteRune(rune(symbol)))
		buf.WriteByte(':')
		buf.WriteString(table[symbol].String())
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = CodeTable(nil)

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
