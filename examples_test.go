package huffmantree_test

import (
	"fmt"
	"os"

	"github.com/chronos-tachyon/huffmantree"
)

func ExampleEncode() {
	artifact, err := huffmantree.Encode("abracadabra")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", artifact)

	text, err := huffmantree.Decode(artifact)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)

	// Output:
	// "0'a100'c1'd10'b1'r\n1\nn\u008aÜ"
	// abracadabra
}

func ExampleTree_Dump() {
	f := huffmantree.CountFrequencies(huffmantree.SymbolsFromString("mississippi"))
	tree, err := huffmantree.BuildTree(f)
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	fmt.Println(tree)
	_, _ = tree.Dump(os.Stdout)

	// Output:
	// {'m':1, 'i':4, 's':4, 'p':2}
	// 0's100'm1'p1'i
	// *
	// ├─0 's' "0"
	// └─1 *
	//   ├─0 *
	//   │ ├─0 'm' "100"
	//   │ └─1 'p' "101"
	//   └─1 'i' "11"
}
