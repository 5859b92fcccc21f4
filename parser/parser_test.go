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

package parser

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestByteOrder(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc}

	p := New("TEST", data)
	x, err := p.ReadUint16()
	if err != nil {
		t.Fatal(err)
	}
	if x != 0x1234 {
		t.Errorf("big endian: got %04x", x)
	}

	p.SetByteOrder(binary.LittleEndian)
	y, err := p.ReadUint32()
	if err != nil {
		t.Fatal(err)
	}
	if y != 0xbc9a7856 {
		t.Errorf("little endian: got %08x", y)
	}
	if p.Pos() != 6 {
		t.Errorf("wrong position %d", p.Pos())
	}
}

func TestTruncated(t *testing.T) {
	p := New("PLGC", []byte{1, 2, 3})
	err := p.SeekPos(2)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.ReadUint16()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Chunk != "PLGC" || perr.Pos != 2 {
		t.Errorf("wrong error location %q@%d", perr.Chunk, perr.Pos)
	}

	err = p.SeekPos(100)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.ReadUint8()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("read beyond end: got %v", err)
	}

	if p.SeekPos(-1) == nil {
		t.Error("negative seek succeeded")
	}
}

func TestExpectTag(t *testing.T) {
	cases := []struct {
		data []byte
		ok   bool
	}{
		{[]byte("NFTR"), true},
		{[]byte("RTFN"), true},
		{[]byte("NFTX"), false},
		{[]byte("NF"), false},
	}
	for _, c := range cases {
		p := New("", c.data)
		err := p.ExpectTag("NFTR")
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected result %v", c.data, err)
		}
	}
}
