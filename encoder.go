package huffmantree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps symbols to the codes of one Huffman tree.
//
// An Encoder is read-only once Init returns, and may be shared between
// goroutines.
//
type Encoder struct {
	tree    Tree
	codes   CodeTable
	order   []Symbol
	minSize byte
	maxSize byte
}

// Init initializes this Encoder with the Huffman tree for the given
// frequencies.  Empty frequencies yield ErrEmptyInput.
func (e *Encoder) Init(f Frequencies) error {
	tree, err := BuildTree(f)
	if err != nil {
		return err
	}
	e.InitTree(tree)
	e.order = f.Symbols()
	return nil
}

// InitTree initializes this Encoder with an existing, non-empty tree.
func (e *Encoder) InitTree(tree Tree) {
	assert.Assertf(!tree.IsEmpty(), "InitTree called with the empty tree")

	codes := tree.Codes()
	order := make(bySymbol, 0, len(codes))
	var minSize, maxSize byte
	var hasMinMax bool
	for symbol, hc := range codes {
		order = append(order, symbol)
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = hc.Size, hc.Size
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}
	order.Sort()

	*e = Encoder{
		tree:    tree,
		codes:   codes,
		order:   order,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the code for symbol.  The zero Code is returned for symbols
// that are not in the tree.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// Codes returns a copy of the full code table.
func (e Encoder) Codes() CodeTable {
	out := make(CodeTable, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc
	}
	return out
}

// Tree returns the Huffman tree behind this Encoder.
func (e Encoder) Tree() Tree {
	return e.tree
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// Pack packs symbols using this Encoder's codes.
func (e Encoder) Pack(symbols []Symbol) (Packed, error) {
	return Pack(symbols, e.codes)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tTree() = %q\n", e.tree.String())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.order {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", strconv.QuoteRune(rune(symbol)), e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// EncodeSymbols builds the Huffman tree for symbols and packs them with it.
// Empty input yields ErrEmptyInput.
func EncodeSymbols(symbols []Symbol) (Artifact, error) {
	f := CountFrequencies(symbols)

	var e Encoder
	if err := e.Init(f); err != nil {
		return Artifact{}, err
	}

	packed, err := e.Pack(symbols)
	if err != nil {
		return Artifact{}, err
	}

	logger().Debug().
		Int("symbols", len(symbols)).
		Int("alphabet", f.Len()).
		Uint8("minSize", e.minSize).
		Uint8("maxSize", e.maxSize).
		Int("bits", packed.BitLen()).
		Uint8("pad", packed.Pad).
		Msg("encoded")

	return Artifact{Tree: e.tree, Packed: packed}, nil
}

// Encode returns the artifact text for text.
func Encode(text string) (string, error) {
	a, err := EncodeSymbols(SymbolsFromString(text))
	if err != nil {
		return "", err
	}
	return a.String(), nil
}
