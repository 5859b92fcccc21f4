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

// Package parser allows to read binary data from a Nitro font resource.
package parser

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Parser reads integers and byte strings from an in-memory font file.
// The byte order of multi-byte values can be changed at any time;
// it defaults to big endian.
type Parser struct {
	data  []byte
	chunk string
	order binary.ByteOrder

	pos      int64
	lastRead int64
}

// New allocates a new Parser.  The chunk name is used in error messages.
func New(chunk string, data []byte) *Parser {
	return &Parser{
		data:  data,
		chunk: chunk,
		order: binary.BigEndian,
	}
}

// SetChunk changes the chunk name used in error messages.
func (p *Parser) SetChunk(name string) {
	p.chunk = name
}

// SetByteOrder changes the byte order used for multi-byte values.
func (p *Parser) SetByteOrder(order binary.ByteOrder) {
	p.order = order
}

// ByteOrder returns the byte order used for multi-byte values.
func (p *Parser) ByteOrder() binary.ByteOrder {
	return p.order
}

// Size returns the total size of the underlying input.
func (p *Parser) Size() int64 {
	return int64(len(p.data))
}

// Pos returns the current reading position.
func (p *Parser) Pos() int64 {
	return p.pos
}

// SeekPos changes the reading position.
// Positions outside the input are only reported once data is read.
func (p *Parser) SeekPos(pos int64) error {
	if pos < 0 {
		return p.Error("seek to negative position %d", pos)
	}
	p.pos = pos
	return nil
}

// Discard skips the next n bytes of input.
func (p *Parser) Discard(n int) error {
	if n < 0 {
		panic("negative discard")
	}
	_, err := p.ReadBytes(n)
	return err
}

// ReadBytes reads n bytes, starting at the current position.  The returned
// slice points into the input and must not be modified by the caller.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	p.lastRead = p.pos
	if n < 0 {
		n = 0
	}
	if p.pos > int64(len(p.data)) || int64(n) > int64(len(p.data))-p.pos {
		return nil, p.wrap(io.ErrUnexpectedEOF)
	}
	res := p.data[p.pos : p.pos+int64(n)]
	p.pos += int64(n)
	return res, nil
}

// ReadUint8 reads a single uint8 value from the current position.
func (p *Parser) ReadUint8() (uint8, error) {
	buf, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads a single uint16 value from the current position.
func (p *Parser) ReadUint16() (uint16, error) {
	buf, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return p.order.Uint16(buf), nil
}

// ReadUint32 reads a single uint32 value from the current position.
func (p *Parser) ReadUint32() (uint32, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return p.order.Uint32(buf), nil
}

// ReadTag reads a four-byte chunk tag.
func (p *Parser) ReadTag() (string, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ExpectTag reads a four-byte chunk tag and checks that it matches name.
// Little endian files store tags reversed; both forms are accepted.
func (p *Parser) ExpectTag(name string) error {
	tag, err := p.ReadTag()
	if err != nil {
		return err
	}
	if tag != name && tag != reverse(name) {
		p.lastRead = p.pos - 4
		return p.Error("expected %q tag, got %q", name, tag)
	}
	return nil
}

// Error returns an error which records the chunk name and the position
// of the most recent read.
func (p *Parser) Error(format string, a ...interface{}) error {
	return p.wrap(fmt.Errorf(format, a...))
}

func (p *Parser) wrap(err error) error {
	return &Error{
		Chunk: p.chunk,
		Pos:   p.lastRead,
		Err:   err,
	}
}

// Error describes a problem found while reading the input.
type Error struct {
	Chunk string
	Pos   int64
	Err   error
}

func (err *Error) Error() string {
	chunk := err.Chunk
	if chunk == "" {
		chunk = "header"
	}
	return fmt.Sprintf("%s@%d: %v", chunk, err.Pos, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
