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

// Package testfont builds synthetic Nitro font resources for use in tests.
package testfont

import (
	"encoding/binary"

	"seehuhn.de/go/nftr/bitmap"
)

// Glyph describes one entry of the glyph table.
type Glyph struct {
	SpaceWidth uint8
	Width      uint8
	Bitmap     bitmap.Bitmap
}

// byteOrder is implemented by binary.BigEndian and binary.LittleEndian.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Chunk is a CMAP chunk payload.
type Chunk interface {
	header() (first, last uint16, tp uint32)
	payload(order byteOrder) []byte
}

// Direct is a type 0 chunk.
type Direct struct {
	First, Last, Start uint16
}

func (c Direct) header() (uint16, uint16, uint32) { return c.First, c.Last, 0 }

func (c Direct) payload(order byteOrder) []byte {
	return order.AppendUint16(nil, c.Start)
}

// List is a type 1 chunk.
type List struct {
	First   uint16
	Indices []uint16
}

func (c List) header() (uint16, uint16, uint32) {
	return c.First, c.First + uint16(len(c.Indices)) - 1, 1
}

func (c List) payload(order byteOrder) []byte {
	var buf []byte
	for _, gid := range c.Indices {
		buf = order.AppendUint16(buf, gid)
	}
	return buf
}

// Scan is a type 2 chunk.
type Scan struct {
	First, Last uint16
	Pairs       [][2]uint16
}

func (c Scan) header() (uint16, uint16, uint32) { return c.First, c.Last, 2 }

func (c Scan) payload(order byteOrder) []byte {
	buf := order.AppendUint16(nil, uint16(len(c.Pairs)))
	for _, p := range c.Pairs {
		buf = order.AppendUint16(buf, p[0])
		buf = order.AppendUint16(buf, p[1])
	}
	return buf
}

// Raw is a chunk with an arbitrary type field and payload.
type Raw struct {
	First, Last uint16
	Type        uint32
	Data        []byte
}

func (c Raw) header() (uint16, uint16, uint32) { return c.First, c.Last, c.Type }

func (c Raw) payload(byteOrder) []byte { return c.Data }

// Font describes the contents of a synthetic font file.
type Font struct {
	LittleEndian bool
	Extended     bool // use the 0x20 byte FINF chunk

	Height   uint8
	MaxWidth uint8
	BitDepth uint8
	Encoding uint8
	Stride   int // record size, computed from the cell size if zero

	Glyphs []Glyph
	Chunks []Chunk

	// LastNext overrides the next-chunk offset of the last CMAP chunk.
	LastNext uint32
}

// Layout records where the chunks of a synthetic file start.
type Layout struct {
	FINF   int
	CGLP   int
	CMAP   []int
	Stride int
}

// Bytes returns the binary form of the font file.
func (f *Font) Bytes() []byte {
	data, _ := f.Build()
	return data
}

// Build returns the binary form of the font file and the chunk positions.
func (f *Font) Build() ([]byte, *Layout) {
	var order byteOrder = binary.BigEndian
	if f.LittleEndian {
		order = binary.LittleEndian
	}
	tag := func(buf []byte, name string) []byte {
		if f.LittleEndian {
			return append(buf, name[3], name[2], name[1], name[0])
		}
		return append(buf, name...)
	}
	layout := &Layout{}

	// file header, the size is patched in at the end
	buf := tag(nil, "NFTR")
	if f.LittleEndian {
		buf = append(buf, 0xFF, 0xFE)
	} else {
		buf = append(buf, 0xFE, 0xFF)
	}
	buf = order.AppendUint16(buf, 0x0102)
	buf = order.AppendUint32(buf, 0)
	buf = order.AppendUint16(buf, 0x10)
	buf = order.AppendUint16(buf, uint16(2+len(f.Chunks)))

	finfSize := 0x1C
	if f.Extended {
		finfSize = 0x20
	}
	layout.FINF = len(buf)
	layout.CGLP = layout.FINF + finfSize

	stride := f.Stride
	if stride == 0 {
		stride = 3 + bitmap.PackedSize(int(f.BitDepth), int(f.MaxWidth), int(f.Height))
	}
	layout.Stride = stride
	cglpSize := 0x10 + stride*len(f.Glyphs)
	pos := align4(layout.CGLP + cglpSize)
	for _, c := range f.Chunks {
		layout.CMAP = append(layout.CMAP, pos)
		pos = align4(pos + 20 + len(c.payload(order)))
	}
	cmapHead := 0
	if len(layout.CMAP) > 0 {
		cmapHead = layout.CMAP[0] + 8
	}

	// FINF
	buf = tag(buf, "FINF")
	buf = order.AppendUint32(buf, uint32(finfSize))
	buf = append(buf, 0, f.Height)
	buf = order.AppendUint16(buf, 0)
	buf = append(buf, 0, f.MaxWidth, f.MaxWidth, f.Encoding)
	buf = order.AppendUint32(buf, uint32(layout.CGLP+8))
	buf = order.AppendUint32(buf, 0)
	buf = order.AppendUint32(buf, uint32(cmapHead))
	if f.Extended {
		buf = append(buf, f.Height, f.MaxWidth, 0, 0)
	}

	// CGLP
	buf = tag(buf, "CGLP")
	buf = order.AppendUint32(buf, uint32(cglpSize))
	buf = append(buf, f.MaxWidth, f.Height)
	buf = order.AppendUint16(buf, uint16(stride))
	buf = order.AppendUint16(buf, 0)
	buf = append(buf, f.BitDepth, 0)
	for _, g := range f.Glyphs {
		rec := []byte{g.SpaceWidth, g.Width, 0}
		rec = append(rec, g.Bitmap.PackCell(int(f.BitDepth), int(f.MaxWidth))...)
		for len(rec) < stride {
			rec = append(rec, 0)
		}
		buf = append(buf, rec[:stride]...)
	}

	// CMAP chain
	for i, c := range f.Chunks {
		for len(buf) < layout.CMAP[i] {
			buf = append(buf, 0)
		}
		next := f.LastNext
		if i+1 < len(f.Chunks) {
			next = uint32(layout.CMAP[i+1] + 8)
		}
		first, last, tp := c.header()
		payload := c.payload(order)
		buf = tag(buf, "CMAP")
		buf = order.AppendUint32(buf, uint32(align4(20+len(payload))))
		buf = order.AppendUint16(buf, first)
		buf = order.AppendUint16(buf, last)
		buf = order.AppendUint32(buf, tp)
		buf = order.AppendUint32(buf, next)
		buf = append(buf, payload...)
	}
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}

	order.PutUint32(buf[8:12], uint32(len(buf)))
	return buf, layout
}

func align4(x int) int {
	return (x + 3) &^ 3
}

// Solid returns a width x height bitmap with all pixels set to v.
func Solid(width, height int, v uint8) bitmap.Bitmap {
	res := make(bitmap.Bitmap, height)
	for y := range res {
		row := make([]uint8, width)
		for x := range row {
			row[x] = v
		}
		res[y] = row
	}
	return res
}
