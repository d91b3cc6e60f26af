package huffmantree

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestAddPadding(t *testing.T) {
	type testRow struct {
		bits   string
		padded string
		pad    byte
	}

	testData := [...]testRow{
		{"", "", 0},
		{"1", "10000000", 7},
		{"0110111", "01101110", 1},
		{"01101110", "01101110", 0},
		{"011011101", "0110111010000000", 7},
	}
	for _, row := range testData {
		padded, pad := AddPadding(row.bits)
		if padded != row.padded || pad != row.pad {
			t.Errorf("AddPadding(%q): expected (%q, %d), got (%q, %d)", row.bits, row.padded, row.pad, padded, pad)
		}
		if len(padded)%8 != 0 {
			t.Errorf("AddPadding(%q): length %d is not a multiple of 8", row.bits, len(padded))
		}
	}
}

func TestPackString(t *testing.T) {
	bits := "01101110100010101101110"

	p, err := PackString(bits)
	if err != nil {
		t.Fatalf("PackString failed: %v", err)
	}
	expectData := []byte{0x6e, 0x8a, 0xdc}
	if !bytes.Equal(expectData, p.Data) {
		t.Errorf("wrong data:\n\texpect: %#v\n\tactual: %#v", expectData, p.Data)
	}
	if p.Pad != 1 {
		t.Errorf("expected pad 1, got %d", p.Pad)
	}
	if p.BitLen() != len(bits) {
		t.Errorf("expected BitLen() %d, got %d", len(bits), p.BitLen())
	}
	actual, err := p.Bits()
	if err != nil {
		t.Fatalf("Bits failed: %v", err)
	}
	if actual != bits {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", bits, actual)
	}

	if _, err := PackString("0120"); !errors.Is(err, ErrInvalidBitPath) {
		t.Errorf("expected ErrInvalidBitPath, got %v", err)
	}
}

func TestPack(t *testing.T) {
	symbols := SymbolsFromString("abracadabra")
	codes := buildTestTree(t, "abracadabra").Codes()

	bits, err := BitString(symbols, codes)
	if err != nil {
		t.Fatalf("BitString failed: %v", err)
	}
	expectBits := "01101110100010101101110"
	if bits != expectBits {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectBits, bits)
	}

	p, err := Pack(symbols, codes)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	q, err := PackString(bits)
	if err != nil {
		t.Fatalf("PackString failed: %v", err)
	}
	if !bytes.Equal(p.Data, q.Data) || p.Pad != q.Pad {
		t.Errorf("Pack and PackString disagree:\n\tPack:       %#v\n\tPackString: %#v", p, q)
	}

	if _, err := Pack(SymbolsFromString("abz"), codes); err == nil {
		t.Errorf("expected an error for a symbol without a code")
	}
	if _, err := BitString(SymbolsFromString("abz"), codes); err == nil {
		t.Errorf("expected an error for a symbol without a code")
	}
}

func TestPack_Padding(t *testing.T) {
	codes := buildTestTree(t, "abracadabra").Codes()
	for n := 1; n <= 40; n++ {
		symbols := SymbolsFromString(strings.Repeat("abracadabra", n)[:n])
		bits, err := BitString(symbols, codes)
		if err != nil {
			t.Fatalf("BitString failed: %v", err)
		}
		p, err := Pack(symbols, codes)
		if err != nil {
			t.Fatalf("Pack failed: %v", err)
		}
		if p.Pad > 7 {
			t.Errorf("n=%d: pad %d out of range", n, p.Pad)
		}
		if 8*len(p.Data) != len(bits)+int(p.Pad) {
			t.Errorf("n=%d: %d bytes for %d bits with pad %d", n, len(p.Data), len(bits), p.Pad)
		}
		actual, err := p.Bits()
		if err != nil {
			t.Fatalf("n=%d: Bits failed: %v", n, err)
		}
		if actual != bits {
			t.Errorf("n=%d: wrong output:\n\texpect: %s\n\tactual: %s", n, bits, actual)
		}
	}
}

func TestPacked_Validate(t *testing.T) {
	type testRow struct {
		p  Packed
		ok bool
	}

	testData := [...]testRow{
		{Packed{}, true},
		{Packed{Data: []byte{0}, Pad: 7}, true},
		{Packed{Data: []byte{0}, Pad: 8}, false},
		{Packed{Data: []byte{0xff}, Pad: 9}, false},
		{Packed{Pad: 1}, false},
	}
	for _, row := range testData {
		err := row.p.Validate()
		if row.ok && err != nil {
			t.Errorf("Validate(%#v): unexpected error %v", row.p, err)
		}
		if !row.ok && !errors.Is(err, ErrMalformedArtifact) {
			t.Errorf("Validate(%#v): expected ErrMalformedArtifact, got %v", row.p, err)
		}

		bits, err := row.p.Bits()
		if row.ok && err != nil {
			t.Errorf("Bits(%#v): unexpected error %v", row.p, err)
		}
		if !row.ok {
			if !errors.Is(err, ErrMalformedArtifact) {
				t.Errorf("Bits(%#v): expected ErrMalformedArtifact, got %v", row.p, err)
			}
			if bits != "" {
				t.Errorf("Bits(%#v): expected no bits on error, got %q", row.p, bits)
			}
		}
	}
}
