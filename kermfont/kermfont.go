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

// Package kermfont writes fonts in the compact "Kermalis font" format.
//
// All values are little endian.  A file starts with the glyph height (1
// byte), the bit depth (1 byte) and the number of glyphs (int32).  Every
// glyph is stored as its character code (uint16), its width (1 byte), its
// space width (1 byte) and its packed bitmap.  The bitmap uses width fields
// per row, without padding between rows; a final partial byte is padded
// with zero bits.
package kermfont

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"seehuhn.de/go/nftr"
	"seehuhn.de/go/nftr/bitmap"
)

// File is the contents of a compact font file.
type File struct {
	Height   uint8
	BitDepth uint8
	Glyphs   []Glyph
}

// Glyph is a single glyph of a compact font file.
type Glyph struct {
	Code       uint16
	Width      uint8
	SpaceWidth uint8
	Bitmap     bitmap.Bitmap
}

// FromFont converts a decoded NFTR font.  Glyphs are sorted by character code.
func FromFont(font *nftr.Font) *File {
	res := &File{
		Height:   font.Height,
		BitDepth: font.BitDepth,
	}
	for _, code := range font.Codes() {
		g, ok := font.Lookup(code)
		if !ok {
			continue
		}
		res.Glyphs = append(res.Glyphs, Glyph{
			Code:       code,
			Width:      g.Width,
			SpaceWidth: g.SpaceWidth,
			Bitmap:     g.Bitmap,
		})
	}
	return res
}

// Write writes the compact form of font to w.
func Write(w io.Writer, font *nftr.Font) error {
	return FromFont(font).Write(w)
}

// WriteFile writes the compact form of font to the file fname.
func WriteFile(fname string, font *nftr.Font) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = Write(out, font)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Write writes the file to w.
func (f *File) Write(w io.Writer) error {
	if len(f.Glyphs) > math.MaxInt32 {
		return errors.New("kermfont: too many glyphs")
	}
	bw := bufio.NewWriter(w)

	buf := []byte{f.Height, f.BitDepth}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(f.Glyphs)))
	_, err := bw.Write(buf)
	if err != nil {
		return err
	}
	for _, g := range f.Glyphs {
		buf = binary.LittleEndian.AppendUint16(buf[:0], g.Code)
		buf = append(buf, g.Width, g.SpaceWidth)
		buf = append(buf, g.Bitmap.Pack(int(f.BitDepth))...)
		_, err = bw.Write(buf)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read reads a compact font file.
func Read(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)
	head := make([]byte, 6)
	_, err := io.ReadFull(br, head)
	if err != nil {
		return nil, fmt.Errorf("kermfont: header: %w", unexpected(err))
	}
	res := &File{
		Height:   head[0],
		BitDepth: head[1],
	}
	n := int32(binary.LittleEndian.Uint32(head[2:]))
	if n < 0 {
		return nil, fmt.Errorf("kermfont: invalid glyph count %d", n)
	}
	if res.BitDepth < 1 || res.BitDepth > 8 {
		return nil, fmt.Errorf("kermfont: %w %d", bitmap.ErrDepth, res.BitDepth)
	}

	for i := int32(0); i < n; i++ {
		_, err := io.ReadFull(br, head[:4])
		if err != nil {
			return nil, fmt.Errorf("kermfont: glyph %d: %w", i, unexpected(err))
		}
		g := Glyph{
			Code:       binary.LittleEndian.Uint16(head),
			Width:      head[2],
			SpaceWidth: head[3],
		}
		width := int(g.Width)
		height := int(res.Height)
		data := make([]byte, bitmap.PackedSize(int(res.BitDepth), width, height))
		_, err = io.ReadFull(br, data)
		if err != nil {
			return nil, fmt.Errorf("kermfont: glyph %d: %w", i, unexpected(err))
		}
		g.Bitmap, err = bitmap.Unpack(data, int(res.BitDepth), width, width, height)
		if err != nil {
			return nil, fmt.Errorf("kermfont: glyph %d: %w", i, err)
		}
		res.Glyphs = append(res.Glyphs, g)
	}
	return res, nil
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
