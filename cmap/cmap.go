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

// Package cmap reads the character map of a Nitro font resource.
//
// The character map is a linked list of "CMAP" chunks.  Every chunk covers
// a range of character codes and uses one of three encodings to assign
// glyph indices to the codes in this range.
package cmap

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"seehuhn.de/go/nftr/parser"
)

// NoGlyph is the glyph index used to mark character codes without a glyph.
const NoGlyph = 0xFFFF

// ChunkOffset is the distance between the start of a chunk and the
// position the chunk offsets in the file point to.
const ChunkOffset = 8

// Mapping is the decoded payload of a single CMAP chunk.
// The concrete type is one of Direct, List or Scan.
type Mapping interface {
	// All iterates over the code/glyph pairs stored in the chunk.
	// Pairs with glyph index NoGlyph are included.
	All() iter.Seq2[uint16, uint16]

	// Type returns the encoding identifier used in the file.
	Type() uint32
}

// Chunk is a single element of the CMAP chain.
type Chunk struct {
	Pos         int64 // start of the chunk within the file
	First, Last uint16
	Next        uint32 // raw offset of the next chunk
	Mapping
}

var decoders = map[uint32]func(p *parser.Parser, first, last uint16) (Mapping, error){
	0: decodeDirect,
	1: decodeList,
	2: decodeScan,
}

// ReadChunk decodes the chunk which starts at pos.
func ReadChunk(p *parser.Parser, pos int64) (*Chunk, error) {
	err := p.SeekPos(pos)
	if err != nil {
		return nil, err
	}
	err = p.ExpectTag("CMAP")
	if err != nil {
		return nil, err
	}
	_, err = p.ReadUint32() // chunk size, the next offset is authoritative
	if err != nil {
		return nil, err
	}
	first, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	last, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	tp, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	next, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}

	decode, ok := decoders[tp]
	if !ok {
		return nil, p.Error("%w %d", ErrUnknownType, tp)
	}
	m, err := decode(p, first, last)
	if err != nil {
		return nil, err
	}

	res := &Chunk{
		Pos:     pos,
		First:   first,
		Last:    last,
		Next:    next,
		Mapping: m,
	}
	return res, nil
}

// Read walks the chain of CMAP chunks, starting at the chunk which begins
// at file position head, and collects all mapped character codes.
// The chain ends at the first next-chunk offset which lies outside the file.
func Read(p *parser.Parser, head int64) (Table, error) {
	res := make(Table)
	seen := make(map[int64]bool)
	pos := head
	for pos >= 0 && pos < p.Size() {
		if seen[pos] {
			return nil, p.Error("%w at position %d", ErrLoop, pos)
		}
		seen[pos] = true

		chunk, err := ReadChunk(p, pos)
		if err != nil {
			return nil, err
		}
		for code, gid := range chunk.All() {
			err := res.Add(code, gid)
			if err != nil {
				return nil, p.Error("%w", err)
			}
		}
		pos = int64(chunk.Next) - ChunkOffset
	}
	return res, nil
}

// Table maps character codes to glyph indices.
type Table map[uint16]uint16

// Add records the glyph index for a character code.
// Pairs with glyph index NoGlyph are ignored.
// Codes which are already present in the table cause an error.
func (t Table) Add(code, gid uint16) error {
	if gid == NoGlyph {
		return nil
	}
	if old, ok := t[code]; ok {
		return fmt.Errorf("%w 0x%04X (glyphs %d and %d)", ErrDuplicate, code, old, gid)
	}
	t[code] = gid
	return nil
}

// Codes returns the character codes in the table, in increasing order.
func (t Table) Codes() []uint16 {
	return slices.Sorted(maps.Keys(t))
}

// codes iterates over first, ..., last.  The loop is safe for last = 0xFFFF.
func codes(first, last uint16) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		if first > last {
			return
		}
		for c := first; ; c++ {
			if !yield(c) || c == last {
				return
			}
		}
	}
}

var (
	// ErrUnknownType indicates a CMAP chunk with an unsupported encoding.
	ErrUnknownType = errors.New("cmap: unknown mapping type")

	// ErrDuplicate indicates a character code which is mapped more than once.
	ErrDuplicate = errors.New("cmap: duplicate character code")

	// ErrLoop indicates a CMAP chain which visits a chunk twice.
	ErrLoop = errors.New("cmap: loop in chunk chain")

	errRange = errors.New("cmap: first code after last code")
)
