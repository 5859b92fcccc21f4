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
	"encoding/binary"

	"seehuhn.de/go/nftr/bitmap"
	"seehuhn.de/go/nftr/cmap"
)

// Font is a decoded Nitro font resource.
type Font struct {
	Info
	Glyphs []Glyph
	CMap   cmap.Table
}

// Info contains the global font information.
type Info struct {
	ByteOrder binary.ByteOrder
	Version   uint16
	FileSize  uint32 // size declared in the file header

	Height    uint8  // height of the glyph cells
	MaxWidth  uint8  // width of the glyph cells
	CharWidth uint8  // default advance width
	NullGlyph uint16 // glyph used for unmapped characters
	Encoding  Encoding

	BitDepth uint8 // bits per pixel, 1 to 8
	Stride   uint16
}

// Glyph is a single entry of the glyph table.
type Glyph struct {
	SpaceWidth uint8 // blank columns after the glyph
	Width      uint8
	Bitmap     bitmap.Bitmap
}

// Lookup returns the glyph for a character code.
func (f *Font) Lookup(code uint16) (*Glyph, bool) {
	gid, ok := f.CMap[code]
	if !ok || int(gid) >= len(f.Glyphs) {
		return nil, false
	}
	return &f.Glyphs[gid], true
}

// Codes returns all mapped character codes, in increasing order.
func (f *Font) Codes() []uint16 {
	return f.CMap.Codes()
}

// Rune returns the character for a code, using the font's encoding.
func (f *Font) Rune(code uint16) (rune, error) {
	return f.Encoding.Decode(code)
}

// Advance returns the total width of a glyph, including the blank
// columns after the glyph.
func (g *Glyph) Advance() int {
	return int(g.Width) + int(g.SpaceWidth)
}
