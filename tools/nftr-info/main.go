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

// nftr-info shows the contents of Nitro font resources and compact font
// files.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/nftr"
	"seehuhn.de/go/nftr/bitmap"
	"seehuhn.de/go/nftr/kermfont"
	"seehuhn.de/go/nftr/tools/internal/cli"
	"seehuhn.de/go/nftr/tools/internal/profile"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "nftr-info:", msg)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	flags := flag.NewFlagSet("nftr-info", flag.ContinueOnError)
	flags.SetOutput(stderr)
	preview := flags.Bool("preview", false, "print the glyph images")
	noMap := flags.Bool("summary", false, "only print the font information, not the character map")
	verbose := flags.Bool("v", false, "log decoding progress")
	cpuprofile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flags.String("memprofile", "", "write memory profile to `file`")
	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintf(out, "nftr-info \u2014 show the contents of NFTR and compact font files\n")
		fmt.Fprintf(out, "%s\n\n", cli.Version("nftr-info"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  nftr-info [options] <file>...\n\n")
		fmt.Fprintf(out, "Options:\n")
		flags.PrintDefaults()
	}

	files, err := cli.Parse(flags, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return &cli.UsageError{}
	}
	if len(files) < 1 {
		flags.Usage()
		return &cli.UsageError{}
	}

	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if e := stop(); err == nil {
			err = e
		}
	}()

	cli.SetupLogging(stderr, *verbose)
	for _, fname := range files {
		info, err := load(fname)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
		info.print(stdout, !*noMap)
		if *preview {
			info.preview(stdout, terminalWidth(stdout))
		}
	}
	return nil
}

// fontInfo is the common view of both file types.
type fontInfo struct {
	name     string
	kind     string
	header   [][2]string
	height   int
	bitDepth int
	font     *nftr.Font // nil for compact files
	entries  []entry
}

type entry struct {
	code       uint16
	gid        int // -1 if unknown
	width      int
	spaceWidth int
	bitmap     bitmap.Bitmap
}

func load(fname string) (*fontInfo, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	if len(data) >= 4 && (bytes.Equal(data[:4], []byte("NFTR")) || bytes.Equal(data[:4], []byte("RTFN"))) {
		font, err := nftr.Decode(data)
		if err != nil {
			return nil, err
		}
		order := "big endian"
		if font.ByteOrder.Uint16([]byte{1, 0}) == 1 {
			order = "little endian"
		}
		res := &fontInfo{
			name:     fname,
			kind:     "NFTR",
			height:   int(font.Height),
			bitDepth: int(font.BitDepth),
			font:     font,
			header: [][2]string{
				{"version", fmt.Sprintf("%d.%d", font.Version>>8, font.Version&0xFF)},
				{"byte order", order},
				{"encoding", font.Encoding.String()},
				{"height", fmt.Sprint(font.Height)},
				{"max width", fmt.Sprint(font.MaxWidth)},
				{"char width", fmt.Sprint(font.CharWidth)},
				{"bit depth", fmt.Sprint(font.BitDepth)},
				{"glyphs", fmt.Sprint(len(font.Glyphs))},
				{"mapped codes", fmt.Sprint(len(font.CMap))},
			},
		}
		for _, code := range font.Codes() {
			gid := int(font.CMap[code])
			g := &font.Glyphs[gid]
			res.entries = append(res.entries, entry{
				code:       code,
				gid:        gid,
				width:      int(g.Width),
				spaceWidth: int(g.SpaceWidth),
				bitmap:     g.Bitmap,
			})
		}
		return res, nil
	}

	kf, err := kermfont.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	res := &fontInfo{
		name:     fname,
		kind:     "compact",
		height:   int(kf.Height),
		bitDepth: int(kf.BitDepth),
		header: [][2]string{
			{"height", fmt.Sprint(kf.Height)},
			{"bit depth", fmt.Sprint(kf.BitDepth)},
			{"glyphs", fmt.Sprint(len(kf.Glyphs))},
		},
	}
	for _, g := range kf.Glyphs {
		res.entries = append(res.entries, entry{
			code:       g.Code,
			gid:        -1,
			width:      int(g.Width),
			spaceWidth: int(g.SpaceWidth),
			bitmap:     g.Bitmap,
		})
	}
	return res, nil
}

func (info *fontInfo) print(w io.Writer, withMap bool) {
	fmt.Fprintf(w, "%s (%s font)\n", info.name, info.kind)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, kv := range info.header {
		fmt.Fprintf(tw, "  %s:\t%s\n", kv[0], kv[1])
	}
	tw.Flush()
	if !withMap {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "  code\tchar\tglyph\twidth\tspace\tname")
	for _, e := range info.entries {
		char, name := "", ""
		if info.font != nil {
			r, err := info.font.Rune(e.code)
			if err == nil {
				name = runenames.Name(r)
				if r >= 0x20 && r != 0x7F {
					char = string(r)
				}
			}
		}
		gid := "-"
		if e.gid >= 0 {
			gid = fmt.Sprint(e.gid)
		}
		fmt.Fprintf(tw, "  %04X\t%s\t%s\t%d\t%d\t%s\n",
			e.code, char, gid, e.width, e.spaceWidth, name)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

var shades = []rune(" ░▒▓█")

// preview prints the glyph images.  If width is positive, as many glyphs
// as fit into width columns are printed next to each other.
func (info *fontInfo) preview(w io.Writer, width int) {
	maxIndex := 1<<info.bitDepth - 1

	cellWidth := 6
	for _, e := range info.entries {
		cellWidth = max(cellWidth, e.width+e.spaceWidth+2)
	}
	perLine := 1
	if width > 0 {
		perLine = max(1, width/cellWidth)
	}

	for start := 0; start < len(info.entries); start += perLine {
		group := info.entries[start:min(start+perLine, len(info.entries))]
		lines := make([]strings.Builder, info.height+1)
		for _, e := range group {
			label := fmt.Sprintf("%04X", e.code)
			lines[0].WriteString(label + strings.Repeat(" ", cellWidth-len(label)))
			for y := 0; y < info.height; y++ {
				n := 0
				if y < len(e.bitmap) {
					for _, v := range e.bitmap[y] {
						lines[y+1].WriteRune(shades[int(v)*(len(shades)-1)/maxIndex])
						n++
					}
				}
				lines[y+1].WriteString(strings.Repeat(" ", cellWidth-n))
			}
		}
		for i := range lines {
			fmt.Fprintln(w, strings.TrimRight(lines[i].String(), " "))
		}
		fmt.Fprintln(w)
	}
}

// terminalWidth returns the width of the terminal connected to w,
// or 0 if w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
