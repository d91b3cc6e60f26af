package huffmantree

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there are no symbols to build a tree from.
	ErrEmptyInput = errors.New("empty input: no Huffman tree can be built")

	// ErrQueueUnderflow is returned when extracting from an empty Queue.
	ErrQueueUnderflow = errors.New("priority queue underflow")

	// ErrMalformedArtifact is returned when an encoded artifact or a
	// serialized tree does not follow the expected layout.
	ErrMalformedArtifact = errors.New("malformed artifact")

	// ErrParseOverrun is returned when a serialized tree ends before the
	// tree is complete.
	ErrParseOverrun = errors.New("serialized tree is truncated")

	// ErrInvalidBitPath is returned when a bit stream does not end on a leaf
	// boundary, or contains something other than bits.
	ErrInvalidBitPath = errors.New("invalid bit path")

	// ErrTreeTooDeep is returned when a Huffman tree would need codes longer
	// than a Code can hold.
	ErrTreeTooDeep = errors.New("Huffman tree is too deep")
)
