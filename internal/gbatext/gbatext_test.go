package gbatext

import (
	"bytes"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name  string
		field []byte
		want  string
	}{
		{"upper", []byte{0xBB, 0xBC, 0xBD, 0xFF, 0xFF}, "ABC"},
		{"lower", []byte{0xD5, 0xD6, 0xD7}, "abc"},
		{"digits", []byte{0xA1, 0xAA}, "09"},
		{"gender marks", []byte{0xC8, 0xC3, 0xC8, 0xDE, 0xD5, 0x3E}, "NINja♂"},
		{"terminator stops decode", []byte{0xBB, 0xFF, 0xBC}, "A"},
		{"unmapped bytes skipped", []byte{0xBB, 0x01, 0xBC}, "AB"},
		{"empty field", []byte{0xFF, 0xFF, 0xFF}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.field); got != tc.want {
				t.Errorf("Decode(% x) = %q, want %q", tc.field, got, tc.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	got := Encode("AZ", 5)
	want := []byte{0xBB, 0xD4, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(AZ) = % x, want % x", got, want)
	}

	// Overlong input truncates to the field width.
	got = Encode("ABCDEFG", 3)
	want = []byte{0xBB, 0xBC, 0xBD}
	if !bytes.Equal(got, want) {
		t.Errorf("truncated = % x, want % x", got, want)
	}

	// Runes with no glyph encode as filler, keeping field width stable.
	got = Encode("A日Z", 4)
	want = []byte{0xBB, 0x00, 0xD4, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("filler = % x, want % x", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"RUNT", "abcXYZ", "No.1?", "a/b,c:d"} {
		if got := Decode(Encode(s, 16)); got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}

func TestEncodeExactWidth(t *testing.T) {
	for _, width := range []int{0, 1, 7, 10} {
		if got := Encode("SCEPTILE", width); len(got) != width {
			t.Errorf("width %d: got %d bytes", width, len(got))
		}
	}
}
