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

package system

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Version of the SDL library.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast returns true if the version is the same as or later than the
// version numbers.
func (v Version) AtLeast(major, minor, patch uint8) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// LinkedVersion returns the version of the SDL library in use.
func LinkedVersion() Version {
	var v sdl.Version
	sdl.GetVersion(&v)
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

// CompiledVersion returns the version of the SDL headers the library was
// built with.
func CompiledVersion() Version {
	var v sdl.Version
	sdl.VERSION(&v)
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}
