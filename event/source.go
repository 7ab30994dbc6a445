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

package event

import (
	"github.com/veandco/go-sdl2/sdl"
)

// source of events for a Queue
type source interface {
	pump()

	// returns nil if there are no events
	poll() sdl.Event

	// a negative timeout waits forever. returns nil if the timeout expires
	wait(timeout int) sdl.Event

	push(ev sdl.Event) error
}

// the SDL event queue
type sdlSource struct{}

func (sdlSource) pump() {
	sdl.PumpEvents()
}

func (sdlSource) poll() sdl.Event {
	return sdl.PollEvent()
}

func (sdlSource) wait(timeout int) sdl.Event {
	if timeout < 0 {
		return sdl.WaitEvent()
	}
	return sdl.WaitEventTimeout(timeout)
}

func (sdlSource) push(ev sdl.Event) error {
	_, err := sdl.PushEvent(ev)
	return err
}
