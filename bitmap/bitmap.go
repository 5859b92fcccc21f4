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

// Package bitmap converts between packed glyph bit streams and pixel grids.
//
// Glyph images store one palette index per pixel, using a fixed number of
// bits (the bit depth) per pixel.  The fields of all rows form one
// continuous, most significant bit first, bit stream: rows are not aligned
// to byte boundaries.  Only the end of the complete image is padded to a
// whole byte.
package bitmap

import "errors"

// Bitmap is a glyph image, stored as one slice of palette indices per row.
type Bitmap [][]uint8

var (
	// ErrShortData indicates that the bit stream ended before all pixels
	// were decoded.
	ErrShortData = errors.New("bitmap: not enough data")

	// ErrDepth indicates a bit depth outside the range 1 to 8.
	ErrDepth = errors.New("bitmap: invalid bit depth")

	// ErrWidth indicates a glyph which is wider than its cell.
	ErrWidth = errors.New("bitmap: glyph wider than cell")
)

// Unpack decodes a glyph image from the packed bit stream in data.
//
// The stream holds cellWidth fields per row; only the first width fields of
// every row are kept, the remaining fields are padding inside the glyph
// cell.  Data beyond the end of the image is ignored.
func Unpack(data []byte, depth, cellWidth, width, height int) (Bitmap, error) {
	if depth < 1 || depth > 8 {
		return nil, ErrDepth
	}
	if width > cellWidth {
		return nil, ErrWidth
	}

	r := &bitReader{data: data}
	res := make(Bitmap, height)
	for y := range res {
		row := make([]uint8, width)
		for x := 0; x < cellWidth; x++ {
			v, err := r.read(depth)
			if err != nil {
				return nil, err
			}
			if x < width {
				row[x] = v
			}
		}
		res[y] = row
	}
	return res, nil
}

// Pack encodes the image using width fields per row, without any padding
// between rows.  A final, partially filled byte is included in the output.
func (b Bitmap) Pack(depth int) []byte {
	return b.PackCell(depth, b.Width())
}

// PackCell encodes the image using cellWidth fields per row.
// Rows shorter than the cell are padded with zero fields.
// Pixel values are truncated to depth bits.
func (b Bitmap) PackCell(depth, cellWidth int) []byte {
	w := &bitWriter{
		buf: make([]byte, 0, PackedSize(depth, cellWidth, len(b))),
	}
	for _, row := range b {
		for x := 0; x < cellWidth; x++ {
			var v uint8
			if x < len(row) {
				v = row[x]
			}
			w.write(v, depth)
		}
	}
	return w.flush()
}

// PackedSize returns the number of bytes needed to store a width x height
// image at the given bit depth.
func PackedSize(depth, width, height int) int {
	return (depth*width*height + 7) / 8
}

// Width returns the number of pixels in each row.
func (b Bitmap) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Height returns the number of rows.
func (b Bitmap) Height() int {
	return len(b)
}

// MaxIndex returns the largest palette index used in the image.
func (b Bitmap) MaxIndex() uint8 {
	var m uint8
	for _, row := range b {
		for _, v := range row {
			m = max(m, v)
		}
	}
	return m
}

type bitReader struct {
	data []byte
	pos  int
	cur  byte
	bit  int // bits of cur already used, 0 means a new byte is needed
}

func (r *bitReader) read(n int) (uint8, error) {
	var v uint8
	for n > 0 {
		if r.bit == 0 {
			if r.pos >= len(r.data) {
				return 0, ErrShortData
			}
			r.cur = r.data[r.pos]
			r.pos++
		}
		k := min(n, 8-r.bit)
		field := r.cur >> (8 - r.bit - k) & (1<<k - 1)
		v = v<<k | field
		r.bit = (r.bit + k) % 8
		n -= k
	}
	return v, nil
}

type bitWriter struct {
	buf []byte
	cur byte
	bit int
}

func (w *bitWriter) write(v uint8, n int) {
	v &= uint8(1<<n - 1)
	for n > 0 {
		k := min(n, 8-w.bit)
		field := v >> (n - k) & (1<<k - 1)
		w.cur |= field << (8 - w.bit - k)
		w.bit += k
		n -= k
		if w.bit == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.bit = 0
		}
	}
}

func (w *bitWriter) flush() []byte {
	if w.bit != 0 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.bit = 0
	}
	return w.buf
}
