package huffmantree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder walks a Huffman tree to turn bits back into symbols.
//
// A Decoder is read-only once Init returns, and may be shared between
// goroutines.
//
type Decoder struct {
	tree Tree
}

// Init initializes this Decoder with a non-empty tree.
func (d *Decoder) Init(tree Tree) {
	assert.Assertf(!tree.IsEmpty(), "Decoder.Init called with the empty tree")
	*d = Decoder{tree: tree}
}

// Tree returns the Huffman tree behind this Decoder.
func (d Decoder) Tree() Tree {
	return d.tree
}

// DecodeSymbols walks the tree from the root for each bit of p, going left
// on 0 and right on 1, and emits a symbol each time it reaches a leaf.
//
// If the tree is a single leaf, each 0 bit emits that leaf's symbol and a 1
// bit is an error.  If the bits run out anywhere but on a leaf boundary,
// ErrInvalidBitPath is returned.
//
func (d Decoder) DecodeSymbols(p Packed) ([]Symbol, error) {
	root := d.tree.root
	if root == nil {
		return nil, ErrEmptyInput
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]Symbol, 0, p.BitLen())
	var index int

	if root.IsLeaf() {
		err := p.forEachBit(func(bit bool) error {
			if bit {
				return fmt.Errorf("%w: bit %d is 1, but the tree has a single leaf", ErrInvalidBitPath, index)
			}
			out = append(out, root.Symbol)
			index++
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	var depth int
	current := root
	err := p.forEachBit(func(bit bool) error {
		if bit {
			current = current.Right
		} else {
			current = current.Left
		}
		depth++
		if current.IsLeaf() {
			out = append(out, current.Symbol)
			current = root
			depth = 0
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if current != root {
		return nil, fmt.Errorf("%w: bit stream ends %d bits into a code", ErrInvalidBitPath, depth)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tTree() = %q\n", d.tree.String())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", d.tree.NumLeaves())
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DecodeArtifact decodes the symbols held in a.
func DecodeArtifact(a Artifact) ([]Symbol, error) {
	if a.Tree.IsEmpty() {
		return nil, ErrEmptyInput
	}

	var d Decoder
	d.Init(a.Tree)
	symbols, err := d.DecodeSymbols(a.Packed)
	if err != nil {
		return nil, err
	}

	logger().Debug().
		Int("symbols", len(symbols)).
		Int("bits", a.Packed.BitLen()).
		Uint8("pad", a.Packed.Pad).
		Msg("decoded")

	return symbols, nil
}

// Decode parses artifact text produced by Encode and returns the original
// text.
func Decode(artifact string) (string, error) {
	a, err := ParseArtifact(artifact)
	if err != nil {
		return "", err
	}
	symbols, err := DecodeArtifact(a)
	if err != nil {
		return "", err
	}
	return SymbolsToString(symbols), nil
}
