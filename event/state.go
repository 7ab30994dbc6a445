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
	"github.com/jetsetilly/sdl4go/video"
	"github.com/veandco/go-sdl2/sdl"
)

// AppState is the visibility and focus of the application.
type AppState uint8

// List of valid AppState bits.
const (
	MouseFocus AppState = 0x01
	InputFocus AppState = 0x02
	AppActive  AppState = 0x04
)

// GetAppState returns the current state of the application window. Returns
// zero if there is no window.
func GetAppState() AppState {
	w := video.CurrentWindow()
	if w == nil {
		return 0
	}
	return appState(w.GetFlags())
}

func appState(flags uint32) AppState {
	var s AppState
	if flags&sdl.WINDOW_MOUSE_FOCUS == sdl.WINDOW_MOUSE_FOCUS {
		s |= MouseFocus
	}
	if flags&sdl.WINDOW_INPUT_FOCUS == sdl.WINDOW_INPUT_FOCUS {
		s |= InputFocus
	}
	if flags&sdl.WINDOW_MINIMIZED != sdl.WINDOW_MINIMIZED && flags&sdl.WINDOW_HIDDEN != sdl.WINDOW_HIDDEN {
		s |= AppActive
	}
	return s
}

// KeyState returns the state of every key, indexed by scancode. A value of one
// means the key is pressed.
func KeyState() []uint8 {
	return sdl.GetKeyboardState()
}

// ModState returns the current state of the modifier keys.
func ModState() sdl.Keymod {
	return sdl.GetModState()
}

// SetModState sets the state of the modifier keys.
func SetModState(mod sdl.Keymod) {
	sdl.SetModState(mod)
}

// KeyName returns the name of the key.
func KeyName(key sdl.Keycode) string {
	return sdl.GetKeyName(key)
}

// State values for EnableUnicode(), JoystickEventState() and
// Queue.EventState().
const (
	Query  = -1
	Ignore = 0
	Enable = 1
)

var unicode bool

// EnableUnicode turns text input events on or off. Returns the previous
// state. A value of Query changes nothing.
func EnableUnicode(enable int) bool {
	prev := unicode
	switch enable {
	case Enable:
		sdl.StartTextInput()
		unicode = true
	case Ignore:
		sdl.StopTextInput()
		unicode = false
	}
	return prev
}

// MouseState returns the position of the mouse and the state of the mouse
// buttons. Use ButtonMask() to test the state of a button.
func MouseState() (x, y int32, state uint32) {
	return sdl.GetMouseState()
}

// RelativeMouseState returns the distance the mouse has moved since the last
// call and the state of the mouse buttons.
func RelativeMouseState() (x, y int32, state uint32) {
	return sdl.GetRelativeMouseState()
}

// JoystickEventState turns joystick events on or off. Returns the resulting
// state, or the current state if the argument is Query.
func JoystickEventState(state int) int {
	return sdl.JoystickEventState(state)
}
