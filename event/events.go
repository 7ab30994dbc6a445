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

// NewQuit creates a quit event.
func NewQuit() sdl.Event {
	return &sdl.QuitEvent{Type: sdl.QUIT, Timestamp: sdl.GetTicks()}
}

// NewUser creates a user event. The data pointers are not used by SDL.
func NewUser(code int32, data1, data2 unsafe.Pointer) sdl.Event {
	return &sdl.UserEvent{
		Type:      sdl.USEREVENT,
		Timestamp: sdl.GetTicks(),
		Code:      code,
		Data1:     data1,
		Data2:     data2,
	}
}

// NewActive creates an event that reports a change of focus or visibility.
// Only one bit of the state should be set.
func NewActive(gain bool, state AppState) sdl.Event {
	ev := &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Timestamp: sdl.GetTicks()}
	switch state {
	case MouseFocus:
		ev.Event = sdl.WINDOWEVENT_LEAVE
		if gain {
			ev.Event = sdl.WINDOWEVENT_ENTER
		}
	case InputFocus:
		ev.Event = sdl.WINDOWEVENT_FOCUS_LOST
		if gain {
			ev.Event = sdl.WINDOWEVENT_FOCUS_GAINED
		}
	default:
		ev.Event = sdl.WINDOWEVENT_MINIMIZED
		if gain {
			ev.Event = sdl.WINDOWEVENT_RESTORED
		}
	}
	return ev
}

// NewResize creates a video resize event.
func NewResize(w, h int32) sdl.Event {
	return &sdl.WindowEvent{
		Type:      sdl.WINDOWEVENT,
		Timestamp: sdl.GetTicks(),
		Event:     sdl.WINDOWEVENT_RESIZED,
		Data1:     w,
		Data2:     h,
	}
}

// NewExpose creates a video expose event.
func NewExpose() sdl.Event {
	return &sdl.WindowEvent{
		Type:      sdl.WINDOWEVENT,
		Timestamp: sdl.GetTicks(),
		Event:     sdl.WINDOWEVENT_EXPOSED,
	}
}
