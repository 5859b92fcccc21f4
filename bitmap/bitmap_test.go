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

package bitmap

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnpackOneBit(t *testing.T) {
	data := []byte{0b10000001, 0b01111110}
	b, err := Unpack(data, 1, 8, 8, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := Bitmap{
		{1, 0, 0, 0, 0, 0, 0, 1},
		{0, 1, 1, 1, 1, 1, 1, 0},
	}
	if d := cmp.Diff(want, b); d != "" {
		t.Error(d)
	}
}

// The padding columns of one row and the start of the next row share a
// byte, so the bit cursor must not be reset at row boundaries.
func TestUnpackCrossRow(t *testing.T) {
	// 2 bits per pixel, cell width 3, glyph width 2, 2 rows:
	// row 0: 3 1 [2]  row 1: 0 2 [1]
	data := []byte{0b11011000, 0b1001_0000}
	b, err := Unpack(data, 2, 3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := Bitmap{{3, 1}, {0, 2}}
	if d := cmp.Diff(want, b); d != "" {
		t.Error(d)
	}
}

func TestUnpackStraddle(t *testing.T) {
	// 3 bits per pixel: 101 110 01|1 000 ...
	data := []byte{0b10111001, 0b10000000}
	b, err := Unpack(data, 3, 4, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := Bitmap{{5, 6, 3, 0}}
	if d := cmp.Diff(want, b); d != "" {
		t.Error(d)
	}
}

func TestUnpackErrors(t *testing.T) {
	_, err := Unpack([]byte{0xff}, 1, 8, 8, 2)
	if !errors.Is(err, ErrShortData) {
		t.Errorf("short data: got %v", err)
	}
	_, err = Unpack(make([]byte, 100), 0, 8, 8, 8)
	if !errors.Is(err, ErrDepth) {
		t.Errorf("depth 0: got %v", err)
	}
	_, err = Unpack(make([]byte, 100), 9, 8, 8, 8)
	if !errors.Is(err, ErrDepth) {
		t.Errorf("depth 9: got %v", err)
	}
	_, err = Unpack(make([]byte, 100), 1, 8, 9, 8)
	if !errors.Is(err, ErrWidth) {
		t.Errorf("wide glyph: got %v", err)
	}
}

func TestPack(t *testing.T) {
	b := Bitmap{
		{1, 0, 1},
		{0, 1, 0},
		{1, 1, 1},
	}
	got := b.Pack(1)
	want := []byte{0b10101011, 0b10000000}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	got = b.PackCell(1, 4)
	want = []byte{0b10100100, 0b11100000}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for depth := 1; depth <= 8; depth++ {
		for _, cell := range []int{1, 3, 7, 8, 13, 16} {
			width := rng.IntN(cell + 1)
			height := 1 + rng.IntN(12)
			b := make(Bitmap, height)
			for y := range b {
				b[y] = make([]uint8, width)
				for x := range b[y] {
					b[y][x] = uint8(rng.IntN(1 << depth))
				}
			}

			packed := b.PackCell(depth, cell)
			if len(packed) != PackedSize(depth, cell, height) {
				t.Errorf("depth %d: wrong packed size %d", depth, len(packed))
			}
			b2, err := Unpack(packed, depth, cell, width, height)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(b, b2); d != "" {
				t.Errorf("depth %d, cell %d: %s", depth, cell, d)
			}

			b3, err := Unpack(b2.Pack(depth), depth, width, width, height)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(b, b3); d != "" {
				t.Errorf("depth %d, width %d: %s", depth, width, d)
			}
		}
	}
}

func TestMaxIndex(t *testing.T) {
	b := Bitmap{{0, 3}, {7, 1}}
	if m := b.MaxIndex(); m != 7 {
		t.Errorf("got %d, want 7", m)
	}
	if w, h := b.Width(), b.Height(); w != 2 || h != 2 {
		t.Errorf("got %dx%d, want 2x2", w, h)
	}
}

func FuzzUnpack(f *testing.F) {
	f.Add([]byte{0b10000001, 0b01111110}, uint8(1), uint8(8), uint8(8))
	f.Add([]byte{0x12, 0x34, 0x56, 0x78}, uint8(4), uint8(3), uint8(2))
	f.Add([]byte{0xff, 0x00, 0xf0}, uint8(3), uint8(5), uint8(4))

	f.Fuzz(func(t *testing.T, data []byte, depth, cell, width uint8) {
		d := int(depth%8) + 1
		c := int(cell % 32)
		w := int(width) % (c + 1)
		if c == 0 {
			return
		}
		h := len(data) * 8 / (d * c)
		b1, err := Unpack(data, d, c, w, h)
		if err != nil {
			t.Fatal(err)
		}
		b2, err := Unpack(b1.Pack(d), d, w, w, h)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(b1, b2); diff != "" {
			t.Error(diff)
		}
	})
}
