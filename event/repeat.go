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

// Default key repeat values in milliseconds.
const (
	DefaultRepeatDelay    = 500
	DefaultRepeatInterval = 30
)

// keyRepeat decides which of the repeated key events from SDL are kept.
// repeats are disabled when delay is zero
type keyRepeat struct {
	delay    uint32
	interval uint32

	// time the key was pressed and the time of the last accepted repeat
	down map[sdl.Keycode]uint32
	last map[sdl.Keycode]uint32
}

func (r *keyRepeat) set(delay, interval int) {
	r.delay = uint32(delay)
	r.interval = uint32(interval)
	r.down = make(map[sdl.Keycode]uint32)
	r.last = make(map[sdl.Keycode]uint32)
}

// accept returns false if the keyboard event is a repeat that should be
// dropped
func (r *keyRepeat) accept(ev *sdl.KeyboardEvent) bool {
	if r.down == nil {
		r.set(0, 0)
	}

	key := ev.Keysym.Sym

	if ev.Type == sdl.KEYUP {
		delete(r.down, key)
		delete(r.last, key)
		return true
	}

	if ev.Repeat == 0 {
		r.down[key] = ev.Timestamp
		r.last[key] = ev.Timestamp
		return true
	}

	if r.delay == 0 {
		return false
	}

	down, ok := r.down[key]
	if !ok {
		// the key went down before repeats were enabled
		r.down[key] = ev.Timestamp
		r.last[key] = ev.Timestamp
		return false
	}

	if ev.Timestamp-down < r.delay {
		return false
	}

	// the first repeat only needs to wait for the delay
	if r.last[key] != down && ev.Timestamp-r.last[key] < r.interval {
		return false
	}

	r.last[key] = ev.Timestamp
	return true
}
