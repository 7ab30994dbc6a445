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

// Package logger is the central log for sdl4go. All packages log to the same
// central logger and the log can be written to any io.Writer at any time.
//
// Entries are made up of a tag and a detail string. By convention the tag is
// the name of the package making the entry. Adjacent entries with the same tag
// and detail are collapsed into one entry with a repeat count.
//
// Logging requires a Permission. Most callers will use logger.Allow but any
// type that implements the Permission interface can be used to decide whether
// logging should take place. For example, a package that opens many devices
// can suppress logging while it is probing.
package logger
