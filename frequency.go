package huffmantree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Frequencies maps each symbol to its number of occurrences.  Symbols are
// remembered in the order they were first seen, and that order is the order
// in which BuildTree feeds them to its Queue.
type Frequencies struct {
	order  []Symbol
	counts map[Symbol]int64
}

// CountFrequencies counts the occurrences of each symbol in a single pass.
func CountFrequencies(symbols []Symbol) Frequencies {
	var f Frequencies
	for _, symbol := range symbols {
		f.Add(symbol, 1)
	}
	return f
}

// Add increases the count of symbol by n.  n must be positive.
func (f *Frequencies) Add(symbol Symbol, n int64) {
	assert.Assertf(n > 0, "count %d for %q is not positive", n, rune(symbol))
	if f.counts == nil {
		f.counts = make(map[Symbol]int64)
	}
	count, found := f.counts[symbol]
	if !found {
		f.order = append(f.order, symbol)
	}
	f.counts[symbol] = saturatingAdd(count, n)
}

// Len returns the number of distinct symbols.
func (f Frequencies) Len() int {
	return len(f.order)
}

// Count returns the number of occurrences of symbol.
func (f Frequencies) Count(symbol Symbol) int64 {
	return f.counts[symbol]
}

// Total returns the sum of all counts.
func (f Frequencies) Total() int64 {
	var sum int64
	for _, symbol := range f.order {
		sum = saturatingAdd(sum, f.counts[symbol])
	}
	return sum
}

// Symbols returns the distinct symbols in order of first occurrence.
func (f Frequencies) Symbols() []Symbol {
	out := make([]Symbol, len(f.order))
	copy(out, f.order)
	return out
}

// String returns the table in order of first occurrence, e.g. {'a':5, 'b':2}.
func (f Frequencies) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for index, symbol := range f.order {
		if index > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.QuoteRune(rune(symbol)))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(f.counts[symbol], 10))
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = Frequencies{}
