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

// nftr-dump exports the glyphs of a Nitro font resource.
//
// By default the font is written as a compact "Kermalis font file".
// With the -png option every mapped glyph is written to a separate image
// file instead, using the given colors for the palette indices.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/nftr"
	"seehuhn.de/go/nftr/kermfont"
	"seehuhn.de/go/nftr/raster"
	"seehuhn.de/go/nftr/tools/internal/cli"
	"seehuhn.de/go/nftr/tools/internal/profile"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "nftr-dump:", msg)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	flags := flag.NewFlagSet("nftr-dump", flag.ContinueOnError)
	flags.SetOutput(stderr)
	colors := flags.String("png", "", "write one image per glyph, using the comma-separated ARGB `colors`")
	formatName := flags.String("format", "png", "image `format` for -png (png or bmp)")
	verbose := flags.Bool("v", false, "log decoding progress")
	cpuprofile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flags.String("memprofile", "", "write memory profile to `file`")
	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintf(out, "nftr-dump \u2014 export the glyphs of an NFTR font\n")
		fmt.Fprintf(out, "%s\n\n", cli.Version("nftr-dump"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  nftr-dump [options] <input.nftr> <output>\n\n")
		fmt.Fprintf(out, "Arguments:\n")
		fmt.Fprintf(out, "  input.nftr   the font file to read\n")
		fmt.Fprintf(out, "  output       the compact font file, or the image directory with -png\n\n")
		fmt.Fprintf(out, "Options may be given before or after the arguments.\n\n")
		fmt.Fprintf(out, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  nftr-dump 0.nftr 0.kermfont\n")
		fmt.Fprintf(out, "  nftr-dump -png 00000000,FFFFFFFF,FF000000,FF808080 0.nftr glyphs/\n")
		fmt.Fprintf(out, "  nftr-dump 0.nftr glyphs/ -png 00000000,FFFFFFFF -format bmp\n")
	}

	files, err := cli.Parse(flags, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		// the flag package has already reported the problem
		return &cli.UsageError{}
	}
	if len(files) != 2 {
		flags.Usage()
		return &cli.UsageError{}
	}
	inName, outName := files[0], files[1]

	// check all arguments before any file is touched
	var job func(*nftr.Font) error
	if *colors != "" {
		pal, err := raster.ParsePalette(*colors)
		if err != nil {
			return cli.Usagef("-png: %v", err)
		}
		format, err := raster.ParseFormat(*formatName)
		if err != nil {
			return cli.Usagef("-format: %v", err)
		}
		job = func(font *nftr.Font) error {
			n, err := raster.WriteDir(outName, font, pal, format)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %d glyph images to %s\n", n, outName)
			return nil
		}
	} else {
		job = func(font *nftr.Font) error {
			err := kermfont.WriteFile(outName, font)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %d glyphs to %s\n", len(font.CMap), outName)
			return nil
		}
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
	font, err := nftr.Open(inName)
	if err != nil {
		return err
	}
	return job(font)
}
