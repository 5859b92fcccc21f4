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
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"seehuhn.de/go/nftr/cmap"
	"seehuhn.de/go/nftr/parser"
)

// Open reads and decodes the font file fname.
func Open(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Read reads a complete font file from r and decodes it.
func Read(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode decodes a font file.
// Errors caused by the file contents are of type [*MalformedFileError].
func Decode(data []byte) (*Font, error) {
	log := Logger()
	p := parser.New("", data)

	info, offs, err := readHeader(p)
	if err != nil {
		return nil, malformed(err)
	}
	if int64(info.FileSize) != p.Size() {
		log.Warn("file size mismatch",
			"declared", info.FileSize, "actual", p.Size())
	}
	log.Debug("font info",
		"height", info.Height, "maxWidth", info.MaxWidth,
		"encoding", info.Encoding,
		"cglp", offs.glyphs, "cwdh", offs.widths, "cmap", offs.cmap)

	glyphs, err := readGlyphs(p, int64(offs.glyphs)-chunkOffset, info)
	if err != nil {
		return nil, malformed(err)
	}
	log.Debug("glyph table",
		"bitDepth", info.BitDepth, "stride", info.Stride, "glyphs", len(glyphs))

	p.SetChunk("CMAP")
	table, err := cmap.Read(p, int64(offs.cmap)-chunkOffset)
	if err != nil {
		return nil, malformed(err)
	}
	for code, gid := range table {
		if int(gid) >= len(glyphs) {
			return nil, malformed(p.Error("%w: 0x%04X -> %d", errGlyph, code, gid))
		}
	}
	log.Debug("character map", "codes", len(table))

	font := &Font{
		Info:   *info,
		Glyphs: glyphs,
		CMap:   table,
	}
	return font, nil
}

// chunkOffset is the distance between the start of a chunk and the
// position recorded for the chunk in the font information.
const chunkOffset = cmap.ChunkOffset

type offsets struct {
	glyphs uint32
	widths uint32
	cmap   uint32
}

// readHeader reads the file header and the FINF chunk which follows it.
func readHeader(p *parser.Parser) (*Info, *offsets, error) {
	err := p.ExpectTag("NFTR")
	if err != nil {
		return nil, nil, err
	}
	bom, err := p.ReadBytes(2)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case bytes.Equal(bom, []byte{0xFF, 0xFE}):
		p.SetByteOrder(binary.LittleEndian)
	case bytes.Equal(bom, []byte{0xFE, 0xFF}):
		p.SetByteOrder(binary.BigEndian)
	default:
		return nil, nil, p.Error("%w % x", errByteOrder, bom)
	}

	info := &Info{ByteOrder: p.ByteOrder()}
	info.Version, err = p.ReadUint16()
	if err != nil {
		return nil, nil, err
	}
	info.FileSize, err = p.ReadUint32()
	if err != nil {
		return nil, nil, err
	}
	err = p.Discard(4) // header size, number of chunks
	if err != nil {
		return nil, nil, err
	}

	p.SetChunk("FINF")
	err = p.ExpectTag("FINF")
	if err != nil {
		return nil, nil, err
	}
	size, err := p.ReadUint32()
	if err != nil {
		return nil, nil, err
	}
	buf, err := p.ReadBytes(8)
	if err != nil {
		return nil, nil, err
	}
	// buf[0] and buf[4] have unknown meaning
	info.Height = buf[1]
	info.NullGlyph = p.ByteOrder().Uint16(buf[2:4])
	info.MaxWidth = buf[5]
	info.CharWidth = buf[6]
	info.Encoding = Encoding(buf[7])

	offs := &offsets{}
	offs.glyphs, err = p.ReadUint32()
	if err != nil {
		return nil, nil, err
	}
	offs.widths, err = p.ReadUint32()
	if err != nil {
		return nil, nil, err
	}
	offs.cmap, err = p.ReadUint32()
	if err != nil {
		return nil, nil, err
	}
	if size == 0x20 {
		// height, width and bearings of the longer FINF variant
		err = p.Discard(4)
		if err != nil {
			return nil, nil, err
		}
	}

	return info, offs, nil
}
