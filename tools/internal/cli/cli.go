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

// Package cli contains helpers shared by the command line tools.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"seehuhn.de/go/nftr"
)

// Version returns a version string for a tool, e.g.
// "nftr-dump (seehuhn.de/go/nftr v0.1.0)".
// Without module version information, the VCS revision is used.
func Version(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	return toolName + describe(info)
}

func describe(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return " (" + info.Main.Path + " " + v + ")"
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	rev = rev[:min(len(rev), 8)]
	if dirty {
		rev += "+dirty"
	}
	return " (" + info.Main.Path + " " + rev + ")"
}

// Parse parses args using flags and returns the positional arguments.
// Unlike [flag.FlagSet.Parse], options may also follow positional arguments,
// so that "in out -png colors" works as well as "-png colors in out".
// All arguments after "--" are positional.
func Parse(flags *flag.FlagSet, args []string) ([]string, error) {
	var res []string
	for {
		err := flags.Parse(args)
		if err != nil {
			return nil, err
		}
		rest := flags.Args()
		used := len(args) - len(rest)
		if used > 0 && args[used-1] == "--" {
			return append(res, rest...), nil
		}
		if len(rest) == 0 {
			return res, nil
		}
		res = append(res, rest[0])
		args = rest[1:]
	}
}

// SetupLogging sends the log output of the nftr packages to w.
// If verbose is false, only warnings and errors are shown.
func SetupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	nftr.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// UsageError indicates missing or malformed command line arguments.
type UsageError struct {
	Msg string
}

func (err *UsageError) Error() string {
	return err.Msg
}

// Usagef returns a [*UsageError] with a formatted message.
func Usagef(format string, a ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// Exit codes used by the tools.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode returns the process exit code for the error returned by a tool.
func ExitCode(err error) int {
	var uerr *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &uerr):
		return ExitUsage
	default:
		return ExitError
	}
}
