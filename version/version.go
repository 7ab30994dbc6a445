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


// Package version reports the build information of the program and of the
// go-sdl2 binding it was built against.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "sdl4go"

// set with -ldflags "-X github.com/jetsetilly/sdl4go/version.number=v0.1.0"
var number string

// Info is the build information gathered at startup.
type Info struct {
	// the release number, "unreleased" if built from a vcs checkout without a
	// number, or "local" if there is no vcs information at all
	Number string

	// vcs revision, suffixed with "+dirty" when the tree was modified
	Revision string

	// true if Number came from the linker
	Release bool

	// module version of github.com/veandco/go-sdl2, empty if not known
	Binding string
}

func (inf Info) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s %s", ApplicationName, inf.Number))
	if !inf.Release {
		s.WriteString(fmt.Sprintf(" (%s)", inf.Revision))
	}
	if inf.Binding != "" {
		s.WriteString(fmt.Sprintf(" go-sdl2 %s", inf.Binding))
	}
	return s.String()
}

var info Info

// Version returns the build information.
func Version() Info {
	return info
}

func init() {
	info = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var inf Info
	var vcs bool
	var modified bool

	bi, ok := read()
	if ok {
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
		for _, d := range bi.Deps {
			if d.Path == "github.com/veandco/go-sdl2" {
				inf.Binding = d.Version
			}
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Number = number
		inf.Release = true
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}
