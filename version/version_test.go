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


package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/sdl4go/test"
)

func TestNoBuildInfo(t *testing.T) {
	inf := fromBuildInfo("", func() (*debug.BuildInfo, bool) { return nil, false })
	test.ExpectEquality(t, inf.Number, "local")
	test.ExpectEquality(t, inf.Release, false)
	test.ExpectEquality(t, inf.Revision, "no revision information")
	test.ExpectEquality(t, inf.String(), "sdl4go local (no revision information)")
}

func TestBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "github.com/veandco/go-sdl2", Version: "v0.4.8"},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	read := func() (*debug.BuildInfo, bool) { return bi, true }

	inf := fromBuildInfo("", read)
	test.ExpectEquality(t, inf.Number, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")
	test.ExpectEquality(t, inf.Binding, "v0.4.8")

	inf = fromBuildInfo("v1.0.0", read)
	test.ExpectEquality(t, inf.Release, true)
	test.ExpectEquality(t, inf.String(), "sdl4go v1.0.0 go-sdl2 v0.4.8")
}
