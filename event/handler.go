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
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Keysym describes a key in a keyboard event.
type Keysym = sdl.Keysym

// Handler is implemented by types that respond to events. Each function
// returns true if the event was handled.
type Handler interface {
	Active(gain bool, state AppState) bool
	KeyPressed(key Keysym) bool
	KeyReleased(key Keysym) bool
	MouseMotion(state uint32, x, y, xrel, yrel int32) bool
	MouseButtonPressed(button uint8, x, y int32) bool
	MouseButtonReleased(button uint8, x, y int32) bool
	JoyAxis(which int32, axis uint8, value int16) bool
	JoyBall(which int32, ball uint8, xrel, yrel int16) bool
	JoyHat(which int32, hat uint8, value uint8) bool
	JoyButtonPressed(which int32, button uint8) bool
	JoyButtonReleased(which int32, button uint8) bool
	VideoResize(w, h int32) bool
	VideoExpose() bool
	SysWM(msg *sdl.SysWMmsg) bool
	User(code int32, data1, data2 unsafe.Pointer) bool
	Quit() bool

	// All is called by Queue.Poll() for events that were not handled by any
	// of the other functions
	All(ev sdl.Event) bool
}

// Unhandled implements the Handler interface and handles nothing. It is
// intended to be embedded in other types.
type Unhandled struct{}

func (Unhandled) Active(bool, AppState) bool { return false }
func (Unhandled) KeyPressed(Keysym) bool { return false }
func (Unhandled) KeyReleased(Keysym) bool { return false }
func (Unhandled) MouseMotion(uint32, int32, int32, int32, int32) bool { return false }
func (Unhandled) MouseButtonPressed(uint8, int32, int32) bool { return false }
func (Unhandled) MouseButtonReleased(uint8, int32, int32) bool { return false }
func (Unhandled) JoyAxis(int32, uint8, int16) bool { return false }
func (Unhandled) JoyBall(int32, uint8, int16, int16) bool { return false }
func (Unhandled) JoyHat(int32, uint8, uint8) bool { return false }
func (Unhandled) JoyButtonPressed(int32, uint8) bool { return false }
func (Unhandled) JoyButtonReleased(int32, uint8) bool { return false }
func (Unhandled) VideoResize(int32, int32) bool { return false }
func (Unhandled) VideoExpose() bool { return false }
func (Unhandled) SysWM(*sdl.SysWMmsg) bool { return false }
func (Unhandled) User(int32, unsafe.Pointer, unsafe.Pointer) bool { return false }
func (Unhandled) Quit() bool { return false }
func (Unhandled) All(sdl.Event) bool { return false }

// Mouse buttons. The wheel buttons are reported for mouse wheel events.
const (
	ButtonLeft      = sdl.BUTTON_LEFT
	ButtonMiddle    = sdl.BUTTON_MIDDLE
	ButtonRight     = sdl.BUTTON_RIGHT
	ButtonWheelUp   = 4
	ButtonWheelDown = 5
)

// ButtonMask returns the bit for the mouse button in the state value of
// MouseMotion() and MouseState().
func ButtonMask(button uint8) uint32 {
	return 1 << (button - 1)
}

// activeState translates a window event to the SDL 1.2 gain and state
// values. the ok value is false if the window event has no equivalent
func activeState(ev *sdl.WindowEvent) (gain bool, state AppState, ok bool) {
	switch ev.Event {
	case sdl.WINDOWEVENT_ENTER:
		return true, MouseFocus, true
	case sdl.WINDOWEVENT_LEAVE:
		return false, MouseFocus, true
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		return true, InputFocus, true
	case sdl.WINDOWEVENT_FOCUS_LOST:
		return false, InputFocus, true
	case sdl.WINDOWEVENT_RESTORED:
		return true, AppActive, true
	case sdl.WINDOWEVENT_MINIMIZED:
		return false, AppActive, true
	}
	return false, 0, false
}

// Dispatch calls the function of the handler for the event. Returns the
// value returned by that function, or false if there is no function for the
// event. The All() function of the handler is not called.
func Dispatch(ev sdl.Event, h Handler) bool {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return h.Quit()

	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN {
			return h.KeyPressed(ev.Keysym)
		}
		return h.KeyReleased(ev.Keysym)

	case *sdl.MouseMotionEvent:
		return h.MouseMotion(ev.State, ev.X, ev.Y, ev.XRel, ev.YRel)

	case *sdl.MouseButtonEvent:
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return h.MouseButtonPressed(ev.Button, ev.X, ev.Y)
		}
		return h.MouseButtonReleased(ev.Button, ev.X, ev.Y)

	case *sdl.MouseWheelEvent:
		var button uint8
		switch {
		case ev.Y > 0:
			button = ButtonWheelUp
		case ev.Y < 0:
			button = ButtonWheelDown
		default:
			return false
		}
		x, y, _ := sdl.GetMouseState()
		pressed := h.MouseButtonPressed(button, x, y)
		released := h.MouseButtonReleased(button, x, y)
		return pressed || released

	case *sdl.JoyAxisEvent:
		return h.JoyAxis(int32(ev.Which), ev.Axis, ev.Value)

	case *sdl.JoyBallEvent:
		return h.JoyBall(int32(ev.Which), ev.Ball, ev.XRel, ev.YRel)

	case *sdl.JoyHatEvent:
		return h.JoyHat(int32(ev.Which), ev.Hat, ev.Value)

	case *sdl.JoyButtonEvent:
		if ev.Type == sdl.JOYBUTTONDOWN {
			return h.JoyButtonPressed(int32(ev.Which), ev.Button)
		}
		return h.JoyButtonReleased(int32(ev.Which), ev.Button)

	case *sdl.SysWMEvent:
		return h.SysWM(ev.Msg)

	case *sdl.UserEvent:
		return h.User(ev.Code, ev.Data1, ev.Data2)

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_RESIZED:
			return h.VideoResize(ev.Data1, ev.Data2)
		case sdl.WINDOWEVENT_EXPOSED:
			return h.VideoExpose()
		}
		if gain, state, ok := activeState(ev); ok {
			return h.Active(gain, state)
		}
	}

	return false
}
