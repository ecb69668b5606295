// Package gbatext implements the proprietary single-byte character
// encoding the supported games use for nicknames and trainer names, as a
// golang.org/x/text encoding.Encoding. Strings are fixed-width fields
// padded and terminated with 0xFF.
package gbatext

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Terminator ends a string; remaining field bytes are padding.
const Terminator = 0xFF

// filler is written for runes with no in-game glyph.
const filler = 0x00

// charTable maps the printable subset of the game's character set. Bytes
// outside the table decode to nothing rather than failing, so partially
// garbled names stay readable.
var charTable = map[byte]rune{
	0x00: ' ', 0x50: ' ',
	0xA1: '0', 0xA2: '1', 0xA3: '2', 0xA4: '3', 0xA5: '4',
	0xA6: '5', 0xA7: '6', 0xA8: '7', 0xA9: '8', 0xAA: '9',
	0xBB: 'A', 0xBC: 'B', 0xBD: 'C', 0xBE: 'D', 0xBF: 'E', 0xC0: 'F',
	0xC1: 'G', 0xC2: 'H', 0xC3: 'I', 0xC4: 'J', 0xC5: 'K', 0xC6: 'L',
	0xC7: 'M', 0xC8: 'N', 0xC9: 'O', 0xCA: 'P', 0xCB: 'Q', 0xCC: 'R',
	0xCD: 'S', 0xCE: 'T', 0xCF: 'U', 0xD0: 'V', 0xD1: 'W', 0xD2: 'X',
	0xD3: 'Y', 0xD4: 'Z',
	0xD5: 'a', 0xD6: 'b', 0xD7: 'c', 0xD8: 'd', 0xD9: 'e', 0xDA: 'f',
	0xDB: 'g', 0xDC: 'h', 0xDD: 'i', 0xDE: 'j', 0xDF: 'k', 0xE0: 'l',
	0xE1: 'm', 0xE2: 'n', 0xE3: 'o', 0xE4: 'p', 0xE5: 'q', 0xE6: 'r',
	0xE7: 's', 0xE8: 't', 0xE9: 'u', 0xEA: 'v', 0xEB: 'w', 0xEC: 'x',
	0xED: 'y', 0xEE: 'z',
	0x34: '!', 0x35: '?', 0x36: '.', 0x37: '-', 0x38: '·', 0x39: '…',
	0x3A: '“', 0x3B: '”', 0x3C: '‘', 0x3D: '\'', 0x3E: '♂', 0x3F: '♀',
	0x51: '/', 0x54: ',', 0x55: '×', 0x68: ':', 0x69: ';', 0x6A: '[',
	0x6B: ']', 0x79: '+', 0x7A: '%', 0x7B: '(', 0x7C: ')', 0x85: '&',
	0x2D: '<', 0x2E: '>',
}

var byteTable = func() map[rune]byte {
	m := make(map[rune]byte, len(charTable))
	for b, r := range charTable {
		if _, ok := m[r]; !ok {
			m[r] = b
		}
	}
	m[' '] = 0x00
	return m
}()

// GameText is the encoding.Encoding for the game's character set.
var GameText encoding.Encoding = gameText{}

type gameText struct{}

func (gameText) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: decoder{}}
}

func (gameText) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encoder{}}
}

type decoder struct{ transform.NopResetter }

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b == Terminator {
			// Terminator and everything after it is padding.
			nSrc = len(src)
			return
		}
		r, ok := charTable[b]
		if !ok {
			nSrc++
			continue
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			err = transform.ErrShortDst
			return
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return
}

type encoder struct{ transform.NopResetter }

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF {
			err = transform.ErrShortSrc
			return
		}
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			return
		}
		b, ok := byteTable[r]
		if !ok {
			b = filler
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return
}

// Decode converts a fixed-width name field to a display string.
func Decode(field []byte) string {
	out, err := GameText.NewDecoder().Bytes(field)
	if err != nil {
		return ""
	}
	return string(out)
}

// Encode converts a display string to a name field of exactly width
// bytes, terminator-padded. Overlong input is truncated.
func Encode(s string, width int) []byte {
	field := make([]byte, width)
	for i := range field {
		field[i] = Terminator
	}
	enc, err := GameText.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return field
	}
	copy(field, enc)
	return field
}
