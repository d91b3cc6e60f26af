package huffmantree

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTree_RoundTrip(t *testing.T) {
	for _, text := range []string{
		"'a",
		"''",
		"'0",
		"'1",
		"'\n",
		"0'a1'b",
		"0'01'1",
		"0''10'01'1",
		"0'a100'c1'd10'b1'r",
		"0'日1'本",
	} {
		tree, err := ParseTree(text)
		if err != nil {
			t.Errorf("ParseTree(%q) failed: %v", text, err)
			continue
		}
		if actual := tree.String(); actual != text {
			t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", text, actual)
		}
	}
}

func TestParseTree_Errors(t *testing.T) {
	type testRow struct {
		text   string
		expect error
	}

	testData := [...]testRow{
		{"", ErrParseOverrun},
		{"'", ErrParseOverrun},
		{"0", ErrParseOverrun},
		{"0'a", ErrParseOverrun},
		{"0'a1", ErrParseOverrun},
		{"0'a10'b1", ErrParseOverrun},
		{"x", ErrMalformedArtifact},
		{"1'a", ErrMalformedArtifact},
		{"0'a2'b", ErrMalformedArtifact},
		{"0'a1'a", ErrMalformedArtifact},
		{"'a'b", ErrMalformedArtifact},
		{"'\xff", ErrMalformedArtifact},
		{strings.Repeat("0", maxBitsPerCode+1), ErrMalformedArtifact},
	}
	for _, row := range testData {
		tree, err := ParseTree(row.text)
		if !errors.Is(err, row.expect) {
			t.Errorf("ParseTree(%q): expected %v, got %v", row.text, row.expect, err)
		}
		if !tree.IsEmpty() {
			t.Errorf("ParseTree(%q): expected the empty tree on error", row.text)
		}
	}
}

func TestTree_TextMarshaling(t *testing.T) {
	tree := buildTestTree(t, "abracadabra")

	raw, err := tree.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var parsed Tree
	if err := parsed.UnmarshalText(raw); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if parsed.String() != tree.String() {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", tree.String(), parsed.String())
	}

	if _, err := (Tree{}).MarshalText(); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for the empty tree, got %v", err)
	}
}

func TestTree_Dump(t *testing.T) {
	tree := buildTestTree(t, "abracadabra")

	expectDump := strings.Join([]string{
		"*\n",
		"├─0 'a' \"0\"\n",
		"└─1 *\n",
		"  ├─0 *\n",
		"  │ ├─0 'c' \"100\"\n",
		"  │ └─1 'd' \"101\"\n",
		"  └─1 *\n",
		"    ├─0 'b' \"110\"\n",
		"    └─1 'r' \"111\"\n",
	}, "")
	actualDump := tree.DisplayString()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectSingle := "'a' \"0\"\n"
	if actual := buildTestTree(t, "aaaa").DisplayString(); actual != expectSingle {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectSingle, actual)
	}

	if actual := (Tree{}).DisplayString(); actual != "(empty)\n" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "(empty)\n", actual)
	}
}
