// seehuhn.de/go/nftr - a library for reading Nitro font resources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package nftr

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies the character encoding used for the character codes
// of a font.
type Encoding uint8

// These are the encodings used in the FINF chunk.
const (
	EncodingUTF8     Encoding = 0
	EncodingUTF16    Encoding = 1
	EncodingShiftJIS Encoding = 2
	EncodingCP1252   Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingShiftJIS:
		return "Shift-JIS"
	case EncodingCP1252:
		return "Windows-1252"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// ErrUndecodable indicates a character code which does not correspond to a
// character in the font's encoding.
var ErrUndecodable = errors.New("character code cannot be decoded")

// Decode returns the character represented by a character code.
//
// Fonts with UTF-8 encoding store Unicode code points as character codes.
// Shift-JIS codes below 0x100 are single byte codes.
func (e Encoding) Decode(code uint16) (rune, error) {
	var dec *encoding.Decoder
	var buf []byte
	switch e {
	case EncodingUTF8:
		r := rune(code)
		if !utf8.ValidRune(r) {
			return utf8.RuneError, fmt.Errorf("%w: 0x%04X", ErrUndecodable, code)
		}
		return r, nil
	case EncodingUTF16:
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		buf = []byte{byte(code >> 8), byte(code)}
	case EncodingShiftJIS:
		dec = japanese.ShiftJIS.NewDecoder()
		if code < 0x100 {
			buf = []byte{byte(code)}
		} else {
			buf = []byte{byte(code >> 8), byte(code)}
		}
	case EncodingCP1252:
		if code >= 0x100 {
			return utf8.RuneError, fmt.Errorf("%w: 0x%04X", ErrUndecodable, code)
		}
		r := charmap.Windows1252.DecodeByte(byte(code))
		if r == utf8.RuneError {
			return r, fmt.Errorf("%w: 0x%04X", ErrUndecodable, code)
		}
		return r, nil
	default:
		return utf8.RuneError, fmt.Errorf("unsupported encoding %s", e)
	}

	out, err := dec.Bytes(buf)
	if err != nil {
		return utf8.RuneError, fmt.Errorf("%w: 0x%04X: %v", ErrUndecodable, code, err)
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError || size != len(out) {
		return utf8.RuneError, fmt.Errorf("%w: 0x%04X", ErrUndecodable, code)
	}
	return r, nil
}
