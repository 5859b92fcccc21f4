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
	"io"

	"seehuhn.de/go/nftr/bitmap"
	"seehuhn.de/go/nftr/parser"
)

const (
	glyphHeaderSize = 0x10 // CGLP chunk header
	glyphRecordHead = 3    // space width, width, unknown
)

// readGlyphs reads the CGLP chunk which starts at pos.
// The bit depth and the record size are stored in info.
func readGlyphs(p *parser.Parser, pos int64, info *Info) ([]Glyph, error) {
	p.SetChunk("CGLP")
	err := p.SeekPos(pos)
	if err != nil {
		return nil, err
	}
	err = p.ExpectTag("CGLP")
	if err != nil {
		return nil, err
	}
	size, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	err = p.Discard(2) // cell width and height
	if err != nil {
		return nil, err
	}
	stride, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	err = p.Discard(2)
	if err != nil {
		return nil, err
	}
	depth, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	err = p.Discard(1) // rotation
	if err != nil {
		return nil, err
	}

	if depth < 1 || depth > 8 {
		return nil, p.Error("%w %d", bitmap.ErrDepth, depth)
	}
	if stride < glyphRecordHead {
		return nil, p.Error("%w (%d bytes)", errStride, stride)
	}
	info.BitDepth = depth
	info.Stride = stride

	var n int64
	if size > glyphHeaderSize {
		n = int64(size-glyphHeaderSize) / int64(stride)
	}
	if n*int64(stride) > p.Size()-p.Pos() {
		return nil, p.Error("%w: %d glyphs of %d bytes", io.ErrUnexpectedEOF, n, stride)
	}

	height := int(info.Height)
	cellWidth := int(info.MaxWidth)
	glyphs := make([]Glyph, n)
	for i := range glyphs {
		rec, err := p.ReadBytes(int(stride))
		if err != nil {
			return nil, err
		}
		g := &glyphs[i]
		g.SpaceWidth = rec[0]
		g.Width = rec[1]
		g.Bitmap, err = bitmap.Unpack(rec[glyphRecordHead:], int(depth), cellWidth, int(g.Width), height)
		if err != nil {
			return nil, p.Error("glyph %d: %w", i, err)
		}
	}
	return glyphs, nil
}
