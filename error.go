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

package nftr

import (
	"errors"
	"strconv"

	"seehuhn.de/go/nftr/parser"
)

var (
	errByteOrder = errors.New("invalid byte order mark")
	errStride    = errors.New("glyph record size too small")
	errGlyph     = errors.New("character mapped to missing glyph")
)

// MalformedFileError indicates that a font file could not be decoded.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	var perr *parser.Error
	if err.Pos > 0 && !errors.As(err.Err, &perr) {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid NFTR file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

func malformed(err error) error {
	if err == nil {
		return nil
	}
	res := &MalformedFileError{Err: err}
	var perr *parser.Error
	if errors.As(err, &perr) {
		res.Pos = perr.Pos
	}
	return res
}
