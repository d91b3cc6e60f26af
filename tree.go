package huffmantree

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman tree.  A leaf carries a Symbol and has no
// children; an internal node owns exactly two children and its Symbol is
// InvalidSymbol.
type Node struct {
	Symbol Symbol
	Left   *Node
	Right  *Node
}

// NewLeaf returns a leaf node for symbol.
func NewLeaf(symbol Symbol) *Node {
	assert.Assertf(symbol >= 0, "leaf symbol %d is negative", symbol)
	return &Node{Symbol: symbol}
}

// NewInternal returns an internal node owning left and right.
func NewInternal(left, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node needs two children, got %p and %p", left, right)
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}
}

// IsLeaf returns true iff this node carries a symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil
}

// Tree is an immutable Huffman tree.  The zero value is an empty tree, which
// cannot encode or decode anything.
type Tree struct {
	root *Node
}

// NewTree wraps root as a Tree.  The caller must not modify any node
// reachable from root afterward.
func NewTree(root *Node) Tree {
	return Tree{root: root}
}

// Root returns the root node, or nil for the empty tree.
func (t Tree) Root() *Node {
	return t.root
}

// IsEmpty returns true iff this is the zero Tree.
func (t Tree) IsEmpty() bool {
	return t.root == nil
}

// BuildTree runs Huffman's algorithm over f.
//
// One leaf per distinct symbol is queued with key -count, in order of first
// occurrence.  The two lowest-weight entries are then repeatedly merged into
// an internal node (first extracted on the left) until one entry remains.
//
// An empty f yields ErrEmptyInput.  A single distinct symbol yields a tree
// that is just one leaf.  Counts skewed enough to need codes longer than 64
// bits yield ErrTreeTooDeep.
//
func BuildTree(f Frequencies) (Tree, error) {
	if f.Len() == 0 {
		return Tree{}, ErrEmptyInput
	}

	var q Queue
	q.Grow(f.Len())
	for _, symbol := range f.order {
		q.Insert(Entry{Key: -f.counts[symbol], Node: NewLeaf(symbol)})
	}

	for q.Len() > 1 {
		first, err := q.ExtractMax()
		if err != nil {
			return Tree{}, err
		}
		second, err := q.ExtractMax()
		if err != nil {
			return Tree{}, err
		}

		// Keys are negated weights, so the merged weight is -(a+b).
		weight := saturatingAdd(-first.Key, -second.Key)
		q.Insert(Entry{Key: -weight, Node: NewInternal(first.Node, second.Node)})
	}

	root, err := q.ExtractMax()
	if err != nil {
		return Tree{}, err
	}

	t := Tree{root: root.Node}
	if depth := t.Depth(); depth > maxBitsPerCode {
		return Tree{}, fmt.Errorf("%w: %d symbols need codes of up to %d bits, max %d", ErrTreeTooDeep, f.Len(), depth, maxBitsPerCode)
	}
	return t, nil
}

// Depth returns the number of edges on the longest path from the root to a
// leaf.  A single-leaf tree has depth 0.
func (t Tree) Depth() int {
	if t.root == nil {
		return 0
	}

	type stackItem struct {
		node  *Node
		depth int
	}

	var deepest int
	stack := []stackItem{{node: t.root}}
	for len(stack) != 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if item.node.IsLeaf() {
			if item.depth > deepest {
				deepest = item.depth
			}
			continue
		}
		stack = append(stack, stackItem{item.node.Right, item.depth + 1}, stackItem{item.node.Left, item.depth + 1})
	}
	return deepest
}

// Codes returns the bit-path of every leaf: 0 for each step to the left and 1
// for each step to the right.
//
// A tree consisting of a single leaf assigns that symbol the one-bit code
// "0", so that repeated occurrences still take up space in the bit stream.
//
func (t Tree) Codes() CodeTable {
	table := make(CodeTable)
	if t.root == nil {
		return table
	}
	if t.root.IsLeaf() {
		table[t.root.Symbol] = MakeCode(1, 0)
		return table
	}

	// Walk the tree with an explicit stack, in preorder.
	//
	// We use stackItem.x to keep track of where we are in the walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, maxBitsPerCode)

	processChild := func(child *Node, code Code) {
		if child.IsLeaf() {
			_, dupe := table[child.Symbol]
			assert.Assertf(!dupe, "symbol %q appears in more than one leaf", rune(child.Symbol))
			table[child.Symbol] = code
			return
		}
		stack = append(stack, stackItem{node: child, code: code})
	}

	stack = append(stack, stackItem{node: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(false))
		case 1:
			processChild(top.node.Right, top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return table
}

// NumLeaves returns the number of leaves in the tree.
func (t Tree) NumLeaves() int {
	if t.root == nil {
		return 0
	}
	var count int
	stack := []*Node{t.root}
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			count++
			continue
		}
		stack = append(stack, n.Right, n.Left)
	}
	return count
}
