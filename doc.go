// Package huffmantree implements textual Huffman coding over an alphabet of
// characters.
//
// A Huffman tree is built from the symbol frequencies of the input, written
// out in a compact text grammar, and used to pack the input into a padded bit
// stream.  The three pieces travel together as a newline-delimited artifact:
//
//     <serialized tree>
//     <pad count, 0-7>
//     <packed bytes, one character per byte>
//
// The tree grammar is:
//
//     Tree     := Leaf | Internal
//     Leaf     := "'" CHAR
//     Internal := "0" Tree "1" Tree
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffmantree
