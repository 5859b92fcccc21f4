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
	"iter"

	"seehuhn.de/go/nftr/parser"
)

// List stores one glyph index for every code in a range.
type List struct {
	First   uint16
	Indices []uint16
}

func decodeList(p *parser.Parser, first, last uint16) (Mapping, error) {
	if first > last {
		return nil, p.Error("%w (0x%04X > 0x%04X)", errRange, first, last)
	}
	n := int(last-first) + 1
	indices := make([]uint16, n)
	for i := range indices {
		gid, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		indices[i] = gid
	}
	return &List{First: first, Indices: indices}, nil
}

// All implements the [Mapping] interface.
func (m *List) All() iter.Seq2[uint16, uint16] {
	return func(yield func(uint16, uint16) bool) {
		for i, gid := range m.Indices {
			if !yield(m.First+uint16(i), gid) {
				return
			}
		}
	}
}

// Type implements the [Mapping] interface.
func (m *List) Type() uint32 {
	return 1
}
