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


// Package modalflag extends the flag package with the idea of modes. A mode
// is a bare word following the flags that selects what the program does
// next, each mode having its own flags and possibly its own sub-modes.
//
// Modes are chained by calling NewMode() after a successful Parse(). The
// arguments that remained after the first Parse() become the arguments for
// the next one:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "VIDEO", "AUDIO")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "VIDEO":
//		md.NewMode()
//		fullscreen := md.AddBool("fullscreen", false, "open a fullscreen window")
//		...
//	}
//
// Mode names are compared case insensitively and are always reported in
// upper case. The first mode given to AddSubModes() is the default mode.
package modalflag
