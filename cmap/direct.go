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

// Direct maps a range of codes to consecutive glyph indices.
type Direct struct {
	First, Last uint16
	Start       uint16 // glyph index for First
}

func decodeDirect(p *parser.Parser, first, last uint16) (Mapping, error) {
	if first > last {
		return nil, p.Error("%w (0x%04X > 0x%04X)", errRange, first, last)
	}
	start, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	return &Direct{First: first, Last: last, Start: start}, nil
}

// All implements the [Mapping] interface.
// Glyph indices wrap around after 0xFFFF.
func (m *Direct) All() iter.Seq2[uint16, uint16] {
	return func(yield func(uint16, uint16) bool) {
		gid := m.Start
		for code := range codes(m.First, m.Last) {
			if !yield(code, gid) {
				return
			}
			gid++
		}
	}
}

// Type implements the [Mapping] interface.
func (m *Direct) Type() uint32 {
	return 0
}
