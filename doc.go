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

// Package nftr reads Nitro font resources (NFTR files).
//
// NFTR files store bitmap fonts.  A file consists of a header followed by
// a sequence of chunks: "FINF" holds the global font information, "CGLP"
// the glyph images, "CWDH" the glyph widths and a chain of "CMAP" chunks
// maps character codes to glyph indices.  The byte order of all
// multi-byte values is declared in the file header.
//
// The fonts can be decoded from a file:
//
//	font, err := nftr.Open("font.nftr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, code := range font.Codes() {
//	    glyph, _ := font.Lookup(code)
//	    ... use glyph.Bitmap ...
//	}
//
// The sub-packages kermfont and raster convert decoded fonts into other
// formats.
package nftr
