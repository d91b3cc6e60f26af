package huffmantree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const artifactSeparator = '\n'

// maxPadDigits is the width of the pad-count field.  Producers write exactly
// one digit, and leading zeros are rejected.
const maxPadDigits = 1

// Artifact is the encoded form of a symbol stream: the tree needed to decode
// it, plus the packed bits.
type Artifact struct {
	Tree   Tree
	Packed Packed
}

// String returns the artifact text:
//
//     <serialized tree> "\n" <pad count> "\n" <packed bytes>
//
// Each packed byte is written as the character with the same code point
// (U+0000 through U+00FF).
//
func (a Artifact) String() string {
	var buf strings.Builder
	buf.WriteString(a.Tree.String())
	buf.WriteRune(artifactSeparator)
	buf.WriteString(strconv.FormatUint(uint64(a.Packed.Pad), 10))
	buf.WriteRune(artifactSeparator)
	for _, b := range a.Packed.Data {
		buf.WriteRune(rune(b))
	}
	return buf.String()
}

var _ fmt.Stringer = Artifact{}

// MarshalText fulfills encoding.TextMarshaler.
func (a Artifact) MarshalText() ([]byte, error) {
	if a.Tree.IsEmpty() {
		return nil, ErrEmptyInput
	}
	if err := a.Packed.Validate(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

// UnmarshalText fulfills encoding.TextUnmarshaler.
func (a *Artifact) UnmarshalText(text []byte) error {
	parsed, err := ParseArtifact(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseArtifact parses the text produced by Artifact.String.
//
// The tree is read with the tree grammar rather than by splitting on
// newlines, so a tree holding a newline leaf (which then spans two lines) and
// a payload holding newline bytes are both accepted.
//
func ParseArtifact(text string) (Artifact, error) {
	p := treeParser{text: text}
	tree, err := p.parse()
	if err != nil {
		return Artifact{}, err
	}
	rest := text[p.pos:]

	if len(rest) == 0 || rest[0] != artifactSeparator {
		return Artifact{}, fmt.Errorf("%w: expected newline after tree at offset %d", ErrMalformedArtifact, p.pos)
	}
	rest = rest[1:]

	end := strings.IndexByte(rest, artifactSeparator)
	if end < 0 {
		return Artifact{}, fmt.Errorf("%w: missing newline after pad count", ErrMalformedArtifact)
	}
	padText := rest[:end]
	rest = rest[end+1:]

	pad, err := parsePad(padText)
	if err != nil {
		return Artifact{}, err
	}

	data := make([]byte, 0, len(rest))
	for offset, ch := range rest {
		if ch == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(rest[offset:]); size <= 1 {
				return Artifact{}, fmt.Errorf("%w: invalid UTF-8 in packed bytes at offset %d", ErrMalformedArtifact, offset)
			}
		}
		if ch > 0xff {
			return Artifact{}, fmt.Errorf("%w: packed character %U at offset %d is not a byte", ErrMalformedArtifact, ch, offset)
		}
		data = append(data, byte(ch))
	}

	packed := Packed{Data: data, Pad: pad}
	if err := packed.Validate(); err != nil {
		return Artifact{}, err
	}
	return Artifact{Tree: tree, Packed: packed}, nil
}

func parsePad(text string) (byte, error) {
	if text == "" || len(text) > maxPadDigits {
		return 0, fmt.Errorf("%w: invalid pad count %q", ErrMalformedArtifact, text)
	}
	for index := 0; index < len(text); index++ {
		if ch := text[index]; ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: invalid pad count %q", ErrMalformedArtifact, text)
		}
	}
	u64, err := strconv.ParseUint(text, 10, 8)
	if err != nil || u64 > 7 {
		return 0, fmt.Errorf("%w: pad count %q is not in [0, 7]", ErrMalformedArtifact, text)
	}
	return byte(u64), nil
}
