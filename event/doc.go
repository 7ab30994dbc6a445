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

// Package event reads events from SDL and dispatches them to a Handler.
//
// SDL2 events are presented as the SDL 1.2 set of event kinds. Window events
// become Active, VideoResize and VideoExpose events, and mouse wheel events
// become presses and releases of mouse buttons 4 and 5.
//
// Events are taken from SDL and held by a Queue until they are consumed. This
// allows the Pop() and Peek() functions to select the first event that
// matches a mask while leaving the order of the other events unchanged.
//
//	q := event.NewQueue()
//	for running {
//		q.Poll(handler)
//	}
//
// A Handler will usually embed the Unhandled type and implement only the
// functions it needs.
package event
