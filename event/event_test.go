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
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
	"github.com/veandco/go-sdl2/sdl"
)

// fakeSource replaces the SDL event queue
type fakeSource struct {
	events  []sdl.Event
	failing bool
}

func (f *fakeSource) pump() {}

func (f *fakeSource) poll() sdl.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func (f *fakeSource) wait(timeout int) sdl.Event {
	return f.poll()
}

func (f *fakeSource) push(ev sdl.Event) error {
	if f.failing {
		return errors.New("queue full")
	}
	f.events = append(f.events, ev)
	return nil
}

// recorder is a Handler that records the events it receives
type recorder struct {
	Unhandled
	calls []string

	// if false then KeyPressed() returns false
	handleKeys bool
}

func (r *recorder) KeyPressed(key Keysym) bool {
	r.calls = append(r.calls, "key "+sdl.GetKeyName(key.Sym))
	return r.handleKeys
}

func (r *recorder) MouseButtonPressed(button uint8, x, y int32) bool {
	r.calls = append(r.calls, "press "+string('0'+button))
	return true
}

func (r *recorder) MouseButtonReleased(button uint8, x, y int32) bool {
	r.calls = append(r.calls, "release "+string('0'+button))
	return true
}

func (r *recorder) Active(gain bool, state AppState) bool {
	if gain {
		r.calls = append(r.calls, "gain "+string('0'+byte(state)))
	} else {
		r.calls = append(r.calls, "lose "+string('0'+byte(state)))
	}
	return true
}

func (r *recorder) VideoResize(w, h int32) bool {
	r.calls = append(r.calls, "resize")
	return true
}

func (r *recorder) VideoExpose() bool {
	r.calls = append(r.calls, "expose")
	return true
}

func (r *recorder) JoyHat(which int32, hat uint8, value uint8) bool {
	r.calls = append(r.calls, "hat")
	return true
}

func (r *recorder) User(code int32, data1, data2 unsafe.Pointer) bool {
	r.calls = append(r.calls, "user "+string('0'+byte(code)))
	return true
}

func (r *recorder) Quit() bool {
	r.calls = append(r.calls, "quit")
	return true
}

func (r *recorder) All(ev sdl.Event) bool {
	r.calls = append(r.calls, "all "+KindOf(ev).String())
	return true
}

func (r *recorder) String() string {
	s := ""
	for i, c := range r.calls {
		if i > 0 {
			s += "; "
		}
		s += c
	}
	return s
}

func key(typ uint32, sym sdl.Keycode, repeat uint8, ts uint32) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:      typ,
		Timestamp: ts,
		Repeat:    repeat,
		Keysym:    sdl.Keysym{Sym: sym},
	}
}

func user(code int32) sdl.Event {
	return &sdl.UserEvent{Type: sdl.USEREVENT, Code: code}
}

func TestKinds(t *testing.T) {
	test.ExpectEquality(t, KindOf(&sdl.QuitEvent{Type: sdl.QUIT}), Quit)
	test.ExpectEquality(t, KindOf(key(sdl.KEYDOWN, sdl.K_a, 0, 0)), KeyDown)
	test.ExpectEquality(t, KindOf(key(sdl.KEYUP, sdl.K_a, 0, 0)), KeyUp)
	test.ExpectEquality(t, KindOf(&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONUP}), JoyButtonUp)
	test.ExpectEquality(t, KindOf(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST}), Active)
	test.ExpectEquality(t, KindOf(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED}), VideoResize)
	test.ExpectEquality(t, KindOf(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_EXPOSED}), VideoExpose)
	test.ExpectEquality(t, KindOf(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}), Other)
	test.ExpectEquality(t, KindOf(&sdl.TextInputEvent{}), Other)

	test.ExpectEquality(t, MaskFor(&sdl.MouseWheelEvent{}), MouseButtonDownMask|MouseButtonUpMask)
	test.ExpectEquality(t, MaskOf(JoyHatMotion)&JoyMask, JoyHatMotionMask)
	test.ExpectEquality(t, MaskOf(KeyDown)&MouseMask, 0)
}

func TestDispatch(t *testing.T) {
	var r recorder

	test.ExpectSuccess(t, Dispatch(&sdl.QuitEvent{Type: sdl.QUIT}, &r))
	test.ExpectSuccess(t, Dispatch(NewActive(true, InputFocus), &r))
	test.ExpectSuccess(t, Dispatch(NewActive(false, MouseFocus), &r))
	test.ExpectSuccess(t, Dispatch(NewActive(false, AppActive), &r))
	test.ExpectSuccess(t, Dispatch(NewResize(100, 200), &r))
	test.ExpectSuccess(t, Dispatch(NewExpose(), &r))
	test.ExpectSuccess(t, Dispatch(NewUser(5, nil, nil), &r))
	test.ExpectSuccess(t, Dispatch(&sdl.JoyHatEvent{Type: sdl.JOYHATMOTION}, &r))

	// unhandled events
	test.ExpectFailure(t, Dispatch(&sdl.JoyAxisEvent{Type: sdl.JOYAXISMOTION}, &r))
	test.ExpectFailure(t, Dispatch(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}, &r))
	test.ExpectFailure(t, Dispatch(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL}, &r))

	test.ExpectEquality(t, r.String(), "quit; gain 2; lose 1; lose 4; resize; expose; user 5; hat")
}

func TestMouseWheel(t *testing.T) {
	var r recorder
	test.ExpectSuccess(t, Dispatch(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1}, &r))
	test.ExpectSuccess(t, Dispatch(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2}, &r))
	test.ExpectEquality(t, r.String(), "press 4; release 4; press 5; release 5")
}

func TestPoll(t *testing.T) {
	src := &fakeSource{}
	q := newQueue(src)

	test.DemandSuccess(t, q.Push(user(1)))
	test.DemandSuccess(t, q.Push(&sdl.JoyAxisEvent{Type: sdl.JOYAXISMOTION}))
	test.DemandSuccess(t, q.Push(&sdl.QuitEvent{Type: sdl.QUIT}))
	test.ExpectEquality(t, q.Len(), 3)

	var r recorder
	q.Poll(&r)
	test.ExpectEquality(t, r.String(), "user 1; all joystick axis; quit")
	test.ExpectEquality(t, q.Len(), 0)

	src.failing = true
	err := q.Push(user(1))
	test.ExpectSuccess(t, sdlerr.Is(err, PushError))
	test.ExpectFailure(t, q.Push(nil))
}

func TestPopAndPeek(t *testing.T) {
	src := &fakeSource{}
	q := newQueue(src)

	src.events = []sdl.Event{
		user(1),
		&sdl.QuitEvent{Type: sdl.QUIT},
		user(2),
		&sdl.QuitEvent{Type: sdl.QUIT},
	}

	var r recorder

	// peek doesn't remove the event
	test.ExpectSuccess(t, q.Peek(&r, QuitMask))
	test.ExpectSuccess(t, q.Peek(&r, UserMask))
	test.ExpectEquality(t, q.Len(), 4)
	test.ExpectEquality(t, r.String(), "quit; user 1")

	// pop removes the first matching event and leaves the order of the others
	r = recorder{}
	test.ExpectSuccess(t, q.Pop(&r, QuitMask))
	test.ExpectEquality(t, q.Len(), 3)
	test.ExpectSuccess(t, q.Pop(&r, UserMask))
	test.ExpectSuccess(t, q.Pop(&r, UserMask))
	test.ExpectFailure(t, q.Pop(&r, UserMask))
	test.ExpectFailure(t, q.Peek(&r, KeyMask))
	test.ExpectEquality(t, r.String(), "quit; user 1; user 2")

	// pop does not pass unhandled events to All()
	r = recorder{}
	src.events = append(src.events, &sdl.JoyAxisEvent{Type: sdl.JOYAXISMOTION})
	test.ExpectSuccess(t, q.Pop(&r, JoyMask))
	test.ExpectEquality(t, r.String(), "")

	test.ExpectSuccess(t, q.Pop(&r, AllMask))
	test.ExpectEquality(t, q.Len(), 0)
}

func TestFilterAndFlush(t *testing.T) {
	src := &fakeSource{}
	q := newQueue(src)

	q.SetFilter(func(ev sdl.Event) bool {
		_, ok := ev.(*sdl.QuitEvent)
		return !ok
	})
	test.ExpectInequality(t, q.Filter() == nil, true)

	src.events = []sdl.Event{user(1), &sdl.QuitEvent{Type: sdl.QUIT}, user(2), key(sdl.KEYDOWN, sdl.K_a, 0, 0)}
	test.ExpectEquality(t, q.Len(), 3)

	q.Flush(UserMask)
	test.ExpectEquality(t, q.Len(), 1)

	q.SetFilter(nil)
	src.events = []sdl.Event{&sdl.QuitEvent{Type: sdl.QUIT}}
	test.ExpectEquality(t, q.Len(), 2)

	q.Flush(AllMask)
	test.ExpectEquality(t, q.Len(), 0)
}

func TestEventState(t *testing.T) {
	src := &fakeSource{}
	q := newQueue(src)

	src.events = []sdl.Event{user(1)}
	test.ExpectEquality(t, q.Len(), 1)

	// ignoring a kind removes events of that kind already in the queue
	test.ExpectEquality(t, q.EventState(User, Ignore), Ignore)
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, q.EventState(User, Query), Ignore)

	src.events = []sdl.Event{user(1), &sdl.QuitEvent{Type: sdl.QUIT}}
	test.ExpectEquality(t, q.Len(), 1)

	test.ExpectEquality(t, q.EventState(User, Enable), Enable)
	src.events = []sdl.Event{user(1)}
	test.ExpectEquality(t, q.Len(), 2)
}

func TestKeyRepeat(t *testing.T) {
	src := &fakeSource{}
	q := newQueue(src)

	// repeats are disabled by default
	src.events = []sdl.Event{
		key(sdl.KEYDOWN, sdl.K_a, 0, 1000),
		key(sdl.KEYDOWN, sdl.K_a, 1, 1600),
		key(sdl.KEYUP, sdl.K_a, 0, 1700),
	}
	test.ExpectEquality(t, q.Len(), 2)
	q.Flush(AllMask)

	test.DemandSuccess(t, q.EnableKeyRepeat(500, 100))
	d, i := q.KeyRepeat()
	test.ExpectEquality(t, d, 500)
	test.ExpectEquality(t, i, 100)

	src.events = []sdl.Event{
		key(sdl.KEYDOWN, sdl.K_a, 0, 2000),
		key(sdl.KEYDOWN, sdl.K_a, 1, 2300), // before delay
		key(sdl.KEYDOWN, sdl.K_a, 1, 2500), // accepted
		key(sdl.KEYDOWN, sdl.K_a, 1, 2550), // before interval
		key(sdl.KEYDOWN, sdl.K_a, 1, 2600), // accepted
		key(sdl.KEYUP, sdl.K_a, 0, 2650),
	}
	test.ExpectEquality(t, q.Len(), 4)

	var r recorder
	r.handleKeys = true
	for q.Pop(&r, KeyDownMask) {
	}
	test.ExpectEquality(t, len(r.calls), 3)

	test.ExpectFailure(t, q.EnableKeyRepeat(-1, 0))
}

func TestWait(t *testing.T) {
	src := &fakeSource{}
	q := newQueue(src)

	var r recorder
	test.ExpectFailure(t, q.WaitTimeout(&r, time.Millisecond))

	src.events = []sdl.Event{key(sdl.KEYDOWN, sdl.K_a, 0, 0)}
	test.ExpectSuccess(t, q.Wait(&r))

	// key was not handled so it was also passed to All()
	test.ExpectEquality(t, len(r.calls), 2)
	test.ExpectEquality(t, r.calls[1], "all key down")
}

func TestAppState(t *testing.T) {
	test.ExpectEquality(t, appState(sdl.WINDOW_SHOWN), AppActive)
	test.ExpectEquality(t, appState(sdl.WINDOW_SHOWN|sdl.WINDOW_INPUT_FOCUS|sdl.WINDOW_MOUSE_FOCUS), AppActive|InputFocus|MouseFocus)
	test.ExpectEquality(t, appState(sdl.WINDOW_MINIMIZED|sdl.WINDOW_INPUT_FOCUS), InputFocus)
	test.ExpectEquality(t, GetAppState(), 0)
	test.ExpectEquality(t, ButtonMask(ButtonRight), 4)
}
