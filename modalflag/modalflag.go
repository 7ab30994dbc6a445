// This file is part of sdl4go.
//
// sdl4go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl4go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl4go.  If not, see <https://www.gnu.org/licenses/>.


package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/sdl4go/sdlerr"
)

// Sentinal error patterns.
const (
	ParseFailed = "modalflag: %v"
)

// ParseResult is returned by Parse() and says how the caller should proceed.
type ParseResult int

// List of valid ParseResult values.
const (
	// arguments were parsed and a mode (if any) was selected.
	ParseContinue ParseResult = iota

	// the help flag was given and help has been written to Output. the
	// program should normally end.
	ParseHelp

	// there was an error parsing the arguments. the error value returned by
	// Parse() has the detail.
	ParseError
)

// Modes is the state of the mode parser. The zero value is usable once
// NewArgs() has been called.
type Modes struct {
	// where help is written. if nil then os.Stdout is used.
	Output io.Writer

	// an optional line written at the top of the help output
	Usage string

	args []string
	path []string

	flags       *flag.FlagSet
	subModes    []string
	defaultMode string

	mode      string
	remaining []string
}

// NewArgs sets the arguments to be parsed. It resets any existing mode path.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.path = md.path[:0]
	md.mode = ""
	md.remaining = nil
	md.reset()
}

// NewMode readies the parser for the selected mode. The arguments for the
// new mode are the arguments that remained after the previous Parse().
func (md *Modes) NewMode() {
	md.args = md.remaining
	md.mode = ""
	md.remaining = nil
	md.reset()
}

func (md *Modes) reset() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.subModes = md.subModes[:0]
	md.defaultMode = ""
}

func (md *Modes) output() io.Writer {
	if md.Output == nil {
		return os.Stdout
	}
	return md.Output
}

// AddSubModes adds the named modes to the list of modes that can be selected
// by the next Parse(). The first mode ever added is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
	if md.defaultMode == "" && len(md.subModes) > 0 {
		md.defaultMode = md.subModes[0]
	}
}

// AddDefaultSubMode adds a mode and makes it the default.
func (md *Modes) AddDefaultSubMode(mode string) {
	md.AddSubModes(mode)
	md.defaultMode = strings.ToUpper(mode)
}

// Parse the arguments set by NewArgs() or NewMode(). Flags are parsed first
// and then, if any sub-modes have been added, the first remaining argument is
// checked against the list of modes. An argument that isn't a mode is left in
// place and the default mode is selected.
func (md *Modes) Parse() (ParseResult, error) {
	if md.flags == nil {
		md.reset()
	}

	err := md.flags.Parse(md.args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, sdlerr.Errorf(ParseFailed, err)
	}

	md.remaining = md.flags.Args()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	md.mode = md.defaultMode
	if len(md.remaining) > 0 {
		arg := strings.ToUpper(md.remaining[0])
		for _, m := range md.subModes {
			if m == arg {
				md.mode = m
				md.remaining = md.remaining[1:]
				break // for loop
			}
		}
	}
	md.path = append(md.path, md.mode)

	return ParseContinue, nil
}

// help writes the flag defaults and the list of sub-modes to Output.
func (md *Modes) help() {
	w := md.output()

	hasFlags := false
	md.flags.VisitAll(func(_ *flag.Flag) {
		hasFlags = true
	})

	if !hasFlags && len(md.subModes) == 0 {
		fmt.Fprintln(w, "No help available")
		return
	}

	if md.Usage != "" {
		fmt.Fprintf(w, "Usage: %s\n", md.Usage)
	} else {
		fmt.Fprintln(w, "Usage:")
	}

	if hasFlags {
		md.flags.SetOutput(w)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if len(md.subModes) > 0 {
		if hasFlags {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(w, "    default: %s\n", md.defaultMode)
	}
}

// Mode returns the mode selected by the most recent Parse(). It is empty if
// no sub-modes were added.
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns every mode selected since NewArgs(), separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// RemainingArgs returns the arguments after the flags and the mode selector.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns the remaining argument at index i or the empty string if
// there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.remaining) {
		return ""
	}
	return md.remaining[i]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	if md.flags == nil {
		md.reset()
	}
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	if md.flags == nil {
		md.reset()
	}
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	if md.flags == nil {
		md.reset()
	}
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	if md.flags == nil {
		md.reset()
	}
	return md.flags.Float64(name, value, usage)
}
