package huffmantree

import (
	"encoding"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	leafMarker     = '\''
	internalMarker = '0'
	rightMarker    = '1'
)

// String returns the serialized form of the tree, following the grammar
//
//     Tree     := Leaf | Internal
//     Leaf     := "'" CHAR
//     Internal := "0" Tree "1" Tree
//
// No whitespace is ever emitted.  The empty tree serializes as "".
//
func (t Tree) String() string {
	var buf strings.Builder
	if t.root != nil {
		writeNode(&buf, t.root)
	}
	return buf.String()
}

func writeNode(buf *strings.Builder, n *Node) {
	if n.IsLeaf() {
		buf.WriteRune(leafMarker)
		buf.WriteRune(rune(n.Symbol))
		return
	}
	buf.WriteRune(internalMarker)
	writeNode(buf, n.Left)
	buf.WriteRune(rightMarker)
	writeNode(buf, n.Right)
}

// MarshalText fulfills encoding.TextMarshaler.
func (t Tree) MarshalText() ([]byte, error) {
	if t.root == nil {
		return nil, ErrEmptyInput
	}
	return []byte(t.String()), nil
}

// UnmarshalText fulfills encoding.TextUnmarshaler.
func (t *Tree) UnmarshalText(text []byte) error {
	parsed, err := ParseTree(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

var (
	_ fmt.Stringer             = Tree{}
	_ encoding.TextMarshaler   = Tree{}
	_ encoding.TextUnmarshaler = (*Tree)(nil)
)

// ParseTree parses the serialized form produced by Tree.String.  The whole of
// text must be consumed.
func ParseTree(text string) (Tree, error) {
	p := treeParser{text: text}
	t, err := p.parse()
	if err != nil {
		return Tree{}, err
	}
	if p.pos != len(p.text) {
		return Tree{}, fmt.Errorf("%w: %d unexpected trailing bytes after tree", ErrMalformedArtifact, len(p.text)-p.pos)
	}
	return t, nil
}

// treeParser holds the read cursor for one parse.  It is never shared between
// parses.
type treeParser struct {
	text string
	pos  int
}

func (p *treeParser) next() (rune, error) {
	if p.pos >= len(p.text) {
		return 0, fmt.Errorf("%w: unexpected end of text at offset %d", ErrParseOverrun, p.pos)
	}
	ch, size := utf8.DecodeRuneInString(p.text[p.pos:])
	if ch == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("%w: invalid UTF-8 at offset %d", ErrMalformedArtifact, p.pos)
	}
	p.pos += size
	return ch, nil
}

// parse reads exactly one tree starting at p.pos and leaves p.pos just past
// it.  Nesting is tracked on an explicit stack, and is limited to the depth
// of the longest Code.
func (p *treeParser) parse() (Tree, error) {
	type frame struct {
		left *Node
	}

	var stack []frame
	seen := make(map[Symbol]struct{})

	for {
		start := p.pos
		ch, err := p.next()
		if err != nil {
			return Tree{}, err
		}

		switch ch {
		case internalMarker:
			if len(stack) >= maxBitsPerCode {
				return Tree{}, fmt.Errorf("%w: tree at offset %d is deeper than %d levels", ErrMalformedArtifact, start, maxBitsPerCode)
			}
			stack = append(stack, frame{})
			continue

		case leafMarker:
			// handled below

		default:
			return Tree{}, fmt.Errorf("%w: expected %q or %q at offset %d, found %q", ErrMalformedArtifact, leafMarker, internalMarker, start, ch)
		}

		ch, err = p.next()
		if err != nil {
			return Tree{}, err
		}
		symbol := Symbol(ch)
		if _, dupe := seen[symbol]; dupe {
			return Tree{}, fmt.Errorf("%w: duplicate leaf %q at offset %d", ErrMalformedArtifact, ch, start)
		}
		seen[symbol] = struct{}{}
		node := NewLeaf(symbol)

		// Attach the finished subtree to its parent, completing every
		// parent whose right subtree this was.
		for {
			if len(stack) == 0 {
				return Tree{root: node}, nil
			}
			top := &stack[len(stack)-1]
			if top.left == nil {
				top.left = node
				sep := p.pos
				ch, err := p.next()
				if err != nil {
					return Tree{}, err
				}
				if ch != rightMarker {
					return Tree{}, fmt.Errorf("%w: expected %q at offset %d, found %q", ErrMalformedArtifact, rightMarker, sep, ch)
				}
				break
			}
			node = NewInternal(top.left, node)
			stack = stack[:len(stack)-1]
		}
	}
}
