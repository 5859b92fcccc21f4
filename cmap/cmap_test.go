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

package cmap

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/nftr/internal/testfont"
	"seehuhn.de/go/nftr/parser"
)

func readChain(t *testing.T, f *testfont.Font) (Table, error) {
	t.Helper()
	data, layout := f.Build()
	p := parser.New("CMAP", data)
	if f.LittleEndian {
		p.SetByteOrder(binary.LittleEndian)
	}
	head := int64(-ChunkOffset)
	if len(layout.CMAP) > 0 {
		head = int64(layout.CMAP[0])
	}
	return Read(p, head)
}

func TestEncodings(t *testing.T) {
	cases := []struct {
		name   string
		chunks []testfont.Chunk
		want   Table
	}{
		{
			name:   "direct",
			chunks: []testfont.Chunk{testfont.Direct{First: 0x41, Last: 0x43, Start: 10}},
			want:   Table{0x41: 10, 0x42: 11, 0x43: 12},
		},
		{
			name:   "list",
			chunks: []testfont.Chunk{testfont.List{First: 0x41, Indices: []uint16{7, NoGlyph, 3}}},
			want:   Table{0x41: 7, 0x43: 3},
		},
		{
			name: "scan",
			chunks: []testfont.Chunk{testfont.Scan{
				First: 0x61, Last: 0x62,
				Pairs: [][2]uint16{{0x0061, 5}, {0x0062, NoGlyph}},
			}},
			want: Table{0x61: 5},
		},
		{
			name: "direct sentinel",
			chunks: []testfont.Chunk{
				testfont.Direct{First: 0x10, Last: 0x12, Start: 0xFFFE},
			},
			want: Table{0x10: 0xFFFE, 0x12: 0},
		},
		{
			name: "chain",
			chunks: []testfont.Chunk{
				testfont.Direct{First: 0x20, Last: 0x21, Start: 0},
				testfont.List{First: 0x30, Indices: []uint16{2, 3}},
				testfont.Scan{Pairs: [][2]uint16{{0x3042, 4}}},
			},
			want: Table{0x20: 0, 0x21: 1, 0x30: 2, 0x31: 3, 0x3042: 4},
		},
		{
			name:   "end of code space",
			chunks: []testfont.Chunk{testfont.Direct{First: 0xFFFE, Last: 0xFFFF, Start: 1}},
			want:   Table{0xFFFE: 1, 0xFFFF: 2},
		},
	}

	for _, c := range cases {
		for _, le := range []bool{false, true} {
			f := &testfont.Font{LittleEndian: le, Chunks: c.chunks}
			got, err := readChain(t, f)
			if err != nil {
				t.Errorf("%s: %v", c.name, err)
				continue
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("%s (little endian %t): %s", c.name, le, d)
			}
		}
	}
}

func TestDirectListEquivalent(t *testing.T) {
	direct := &testfont.Font{Chunks: []testfont.Chunk{
		testfont.Direct{First: 0x100, Last: 0x107, Start: 20},
	}}
	list := &testfont.Font{Chunks: []testfont.Chunk{
		testfont.List{First: 0x100, Indices: []uint16{20, 21, 22, 23, 24, 25, 26, 27}},
	}}
	t1, err := readChain(t, direct)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := readChain(t, list)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(t1, t2); d != "" {
		t.Error(d)
	}
}

func TestNoSentinelValues(t *testing.T) {
	f := &testfont.Font{Chunks: []testfont.Chunk{
		testfont.Direct{First: 0x00, Last: 0x03, Start: 0xFFFD},
		testfont.List{First: 0x10, Indices: []uint16{NoGlyph, NoGlyph, 1}},
		testfont.Scan{Pairs: [][2]uint16{{0x20, NoGlyph}, {0x21, 9}}},
	}}
	tab, err := readChain(t, f)
	if err != nil {
		t.Fatal(err)
	}
	for code, gid := range tab {
		if gid == NoGlyph {
			t.Errorf("code 0x%04X maps to the sentinel", code)
		}
	}
	if len(tab) != 5 {
		t.Errorf("expected 5 entries, got %d", len(tab))
	}
}

func TestDuplicate(t *testing.T) {
	f := &testfont.Font{Chunks: []testfont.Chunk{
		testfont.Direct{First: 0x41, Last: 0x45, Start: 0},
		testfont.Scan{Pairs: [][2]uint16{{0x43, 17}}},
	}}
	_, err := readChain(t, f)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	// a duplicate code mapped to the sentinel is skipped before the check
	f = &testfont.Font{Chunks: []testfont.Chunk{
		testfont.Direct{First: 0x41, Last: 0x45, Start: 0},
		testfont.Scan{Pairs: [][2]uint16{{0x43, NoGlyph}}},
	}}
	_, err = readChain(t, f)
	if err != nil {
		t.Fatal(err)
	}
}

func TestBadChunks(t *testing.T) {
	cases := []struct {
		name  string
		chunk testfont.Chunk
		want  error
	}{
		{"unknown type", testfont.Raw{First: 1, Last: 2, Type: 3, Data: []byte{0, 0}}, ErrUnknownType},
		{"reversed range", testfont.Direct{First: 5, Last: 4}, errRange},
		{"truncated list", testfont.Raw{First: 1, Last: 200, Type: 1, Data: []byte{0, 0}}, io.ErrUnexpectedEOF},
		{"truncated scan", testfont.Raw{First: 1, Last: 2, Type: 2, Data: []byte{0, 9, 0, 1}}, io.ErrUnexpectedEOF},
	}
	for _, c := range cases {
		f := &testfont.Font{Chunks: []testfont.Chunk{c.chunk}}
		_, err := readChain(t, f)
		if !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
		var perr *parser.Error
		if !errors.As(err, &perr) {
			t.Errorf("%s: error %T is not positioned", c.name, err)
		}
	}
}

func TestLoop(t *testing.T) {
	f := &testfont.Font{
		Chunks: []testfont.Chunk{
			testfont.List{First: 0x41, Indices: []uint16{NoGlyph}},
		},
	}
	_, layout := f.Build()
	f.LastNext = uint32(layout.CMAP[0] + ChunkOffset)
	_, err := readChain(t, f)
	if !errors.Is(err, ErrLoop) {
		t.Errorf("expected loop error, got %v", err)
	}
}

func TestChunk(t *testing.T) {
	f := &testfont.Font{Chunks: []testfont.Chunk{
		testfont.List{First: 0x41, Indices: []uint16{1, 2}},
	}}
	data, layout := f.Build()
	p := parser.New("CMAP", data)
	chunk, err := ReadChunk(p, int64(layout.CMAP[0]))
	if err != nil {
		t.Fatal(err)
	}
	if chunk.Type() != 1 || chunk.First != 0x41 || chunk.Last != 0x42 || chunk.Next != 0 {
		t.Errorf("unexpected chunk header %+v", chunk)
	}
	want := &List{First: 0x41, Indices: []uint16{1, 2}}
	if d := cmp.Diff(want, chunk.Mapping); d != "" {
		t.Error(d)
	}
}

func TestCodes(t *testing.T) {
	tab := Table{0x30: 1, 0x10: 2, 0x20: 3}
	if d := cmp.Diff([]uint16{0x10, 0x20, 0x30}, tab.Codes()); d != "" {
		t.Error(d)
	}
}

func FuzzRead(f *testing.F) {
	seeds := []*testfont.Font{
		{Chunks: []testfont.Chunk{testfont.Direct{First: 0x41, Last: 0x41}}},
		{LittleEndian: true, Chunks: []testfont.Chunk{
			testfont.List{First: 0x20, Indices: []uint16{1, NoGlyph, 2}},
			testfont.Scan{Pairs: [][2]uint16{{0x61, 5}}},
		}},
	}
	for _, s := range seeds {
		data, layout := s.Build()
		f.Add(data, int64(layout.CMAP[0]))
	}

	f.Fuzz(func(t *testing.T, data []byte, head int64) {
		p := parser.New("CMAP", data)
		tab, err := Read(p, head)
		if err != nil {
			return
		}
		for _, gid := range tab {
			if gid == NoGlyph {
				t.Fatal("sentinel in table")
			}
		}
	})
}
