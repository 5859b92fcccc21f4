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

// Package raster converts the glyphs of a font into images.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/nftr"
)

// ParsePalette parses a comma-separated list of colors.  Every color is
// given as a hexadecimal 32-bit ARGB value, for example "FF808080".
func ParsePalette(s string) (color.Palette, error) {
	var res color.Palette
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "#")
		if field == "" || len(field) > 8 {
			return nil, fmt.Errorf("color %d: invalid value %q", i, field)
		}
		v, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("color %d: invalid value %q", i, field)
		}
		res = append(res, color.NRGBA{
			A: uint8(v >> 24),
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		})
	}
	return res, nil
}

// PaletteError indicates a glyph which uses a palette index for which no
// color was supplied.
type PaletteError struct {
	Code      uint16
	Index     uint8
	NumColors int
}

func (err *PaletteError) Error() string {
	return fmt.Sprintf("not enough colors supplied: glyph %04X uses color index %d, palette has %d colors",
		err.Code, err.Index, err.NumColors)
}

// Glyph returns an image of a glyph.  The image is g.Advance() pixels wide
// and height pixels high.  The blank columns after the glyph, and rows
// outside the glyph bitmap, are transparent.
//
// If the glyph uses a palette index outside pal, the returned error is a
// [*PaletteError] with Code left as zero.
func Glyph(g *nftr.Glyph, height int, pal color.Palette) (*image.NRGBA, error) {
	for _, row := range g.Bitmap {
		for _, v := range row {
			if int(v) >= len(pal) {
				return nil, &PaletteError{Index: v, NumColors: len(pal)}
			}
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.Advance(), height))
	for y, row := range g.Bitmap {
		if y >= height {
			break
		}
		for x, v := range row {
			img.Set(x, y, pal[v])
		}
	}
	return img, nil
}

// Format selects the image file format.
type Format int

// These are the supported image formats.
const (
	PNG Format = iota
	BMP
)

// ParseFormat converts a format name ("png" or "bmp") into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	default:
		return 0, fmt.Errorf("unknown image format %q", name)
	}
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Encode writes img to w.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return errUnknownFormat
	}
}

// WriteDir writes one image file per mapped character code into the
// directory dir, which is created if needed.  Files are named after the
// character code in upper case hexadecimal, for example "0041.png", and
// are written in increasing code order.
//
// If a glyph needs a color which is missing from pal, WriteDir stops with a
// [*PaletteError] before creating the file for this glyph.  Files written
// up to this point are kept.
func WriteDir(dir string, font *nftr.Font, pal color.Palette, format Format) (int, error) {
	log := nftr.Logger()

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, code := range font.Codes() {
		g, ok := font.Lookup(code)
		if !ok {
			continue
		}
		img, err := Glyph(g, int(font.Height), pal)
		if err != nil {
			var perr *PaletteError
			if errors.As(err, &perr) {
				perr.Code = code
			}
			return count, err
		}

		fname := filepath.Join(dir, fmt.Sprintf("%04X.%s", code, format))
		err = writeImage(fname, img, format)
		if err != nil {
			return count, err
		}
		log.Debug("glyph image", "file", fname, "width", img.Bounds().Dx())
		count++
	}
	return count, nil
}

func writeImage(fname string, img image.Image, format Format) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = format.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

var errUnknownFormat = errors.New("raster: unknown image format")
