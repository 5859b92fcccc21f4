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

// Pair assigns a glyph index to a single character code.
type Pair struct {
	Code, GID uint16
}

// Scan stores an explicit list of code/glyph pairs.
// The code range in the chunk header does not restrict the pairs.
type Scan struct {
	Pairs []Pair
}

func decodeScan(p *parser.Parser, _, _ uint16) (Mapping, error) {
	n, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, n)
	for i := range pairs {
		code, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		gid, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		pairs[i] = Pair{Code: code, GID: gid}
	}
	return &Scan{Pairs: pairs}, nil
}

// All implements the [Mapping] interface.
func (m *Scan) All() iter.Seq2[uint16, uint16] {
	return func(yield func(uint16, uint16) bool) {
		for _, pair := range m.Pairs {
			if !yield(pair.Code, pair.GID) {
				return
			}
		}
	}
}

// Type implements the [Mapping] interface.
func (m *Scan) Type() uint32 {
	return 2
}
