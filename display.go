package huffmantree

import (
	"bytes"
	"io"
	"strconv"
)

// Dump writes a human-readable rendering of the tree to the given writer,
// one node per line, with each leaf's symbol and bit-path.  The output is for
// display only and cannot be parsed back.
//
// For example, the tree for "abracadabra" renders as:
//
//     *
//     ├─0 'a' "0"
//     └─1 *
//       ├─0 *
//       │ ├─0 'c' "100"
//       │ └─1 'd' "101"
//       └─1 *
//         ├─0 'b' "110"
//         └─1 'r' "111"
//
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	switch {
	case t.root == nil:
		buf.WriteString("(empty)\n")
	case t.root.IsLeaf():
		dumpLeaf(&buf, t.root, MakeCode(1, 0))
	default:
		dumpNode(&buf, t.root, "", Code{})
	}
	return buf.WriteTo(w)
}

func dumpLeaf(buf *bytes.Buffer, n *Node, hc Code) {
	buf.WriteString(strconv.QuoteRune(rune(n.Symbol)))
	buf.WriteByte(' ')
	buf.WriteString(hc.String())
	buf.WriteByte('\n')
}

func dumpNode(buf *bytes.Buffer, n *Node, indent string, hc Code) {
	if n.IsLeaf() {
		dumpLeaf(buf, n, hc)
		return
	}
	buf.WriteString("*\n")

	buf.WriteString(indent)
	buf.WriteString("├─0 ")
	dumpNode(buf, n.Left, indent+"│ ", hc.Append(false))

	buf.WriteString(indent)
	buf.WriteString("└─1 ")
	dumpNode(buf, n.Right, indent+"  ", hc.Append(true))
}

// DisplayString returns the output of Dump as a string.
func (t Tree) DisplayString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}
