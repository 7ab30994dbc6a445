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

// Package prefs holds typed preference values that can be saved to and loaded
// from disk. The Bool, String and Int types are safe to use from more than one
// goroutine.
//
// A preference value is created as a normal variable and then added to a Disk
// instance with a key:
//
//	var repeat prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("event.keyrepeat.delay", &repeat)
//	dsk.Load(true)
//
// Preference files start with a warning line (WarningBoilerPlate) which is
// followed by one key/value pair per line, separated by KeySep. Keys in the
// file that are not known to the Disk instance are preserved when the file is
// saved.
//
// Values can also be supplied on the command line. A command line preference
// string is pushed onto a stack with PushCommandLineStack(). When a Disk is
// loaded, values on the top of the stack override values from the file. See
// PushCommandLineStack() for the format of the string.
package prefs
