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
	"fmt"
	"time"

	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	PushError   = "event: push: %v"
	RepeatError = "event: key repeat: %v"
)

// Filter is called for every event before it is added to the Queue. Events
// for which the filter returns false are dropped.
type Filter func(ev sdl.Event) bool

// Queue holds events taken from SDL until they are consumed.
//
// Queue must only be used from the main thread.
type Queue struct {
	src     source
	pending []sdl.Event

	filter Filter
	repeat keyRepeat

	// kinds that are dropped as they are taken from SDL
	ignored Mask
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return newQueue(sdlSource{})
}

func newQueue(src source) *Queue {
	q := &Queue{src: src}
	q.repeat.set(0, 0)
	return q
}

// accept returns true if the event should be added to the queue
func (q *Queue) accept(ev sdl.Event) bool {
	if q.ignored&MaskFor(ev) != 0 {
		return false
	}
	if kev, ok := ev.(*sdl.KeyboardEvent); ok {
		if !q.repeat.accept(kev) {
			return false
		}
	}
	if q.filter != nil && !q.filter(ev) {
		return false
	}
	return true
}

// fill the pending list with every event waiting in SDL
func (q *Queue) fill() {
	for ev := q.src.poll(); ev != nil; ev = q.src.poll() {
		if q.accept(ev) {
			q.pending = append(q.pending, ev)
		}
	}
}

// Pump gathers events from the input devices. It is called by Poll(), Pop()
// and Peek() so it is rarely necessary to call it directly.
func (q *Queue) Pump() {
	q.src.pump()
	q.fill()
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	q.Pump()
	return len(q.pending)
}

// Poll dispatches every event in the queue to the handler. Events that are
// not handled are passed to the All() function of the handler.
func (q *Queue) Poll(h Handler) {
	q.Pump()
	for len(q.pending) > 0 {
		ev := q.pending[0]
		q.pending = q.pending[1:]
		if !Dispatch(ev, h) {
			h.All(ev)
		}
	}
}

// find the first event that matches the mask. returns -1 if there is no
// match
func (q *Queue) find(mask Mask) int {
	for i, ev := range q.pending {
		if MaskFor(ev)&mask != 0 {
			return i
		}
	}
	return -1
}

// Pop removes the first event that matches the mask and dispatches it to the
// handler. Returns false if no event matched.
func (q *Queue) Pop(h Handler, mask Mask) bool {
	q.Pump()
	i := q.find(mask)
	if i < 0 {
		return false
	}
	ev := q.pending[i]
	q.pending = append(q.pending[:i], q.pending[i+1:]...)
	Dispatch(ev, h)
	return true
}

// Peek dispatches the first event that matches the mask to the handler but
// does not remove it from the queue. Returns false if no event matched.
func (q *Queue) Peek(h Handler, mask Mask) bool {
	q.Pump()
	i := q.find(mask)
	if i < 0 {
		return false
	}
	Dispatch(q.pending[i], h)
	return true
}

// Wait for the next event and dispatch it to the handler. If the event is not
// handled it is passed to the All() function of the handler. Returns false if
// there was an error while waiting.
func (q *Queue) Wait(h Handler) bool {
	return q.wait(h, -1)
}

// WaitTimeout is like Wait() but gives up after the timeout. Returns false if
// no event arrived in time.
func (q *Queue) WaitTimeout(h Handler, timeout time.Duration) bool {
	return q.wait(h, int(timeout.Milliseconds()))
}

func (q *Queue) wait(h Handler, timeout int) bool {
	q.fill()

	deadline := time.Now().Add(time.Duration(timeout) * time.Millisecond)

	for len(q.pending) == 0 {
		t := timeout
		if timeout >= 0 {
			t = int(time.Until(deadline).Milliseconds())
			if t < 0 {
				return false
			}
		}

		ev := q.src.wait(t)
		if ev == nil {
			if timeout < 0 {
				logger.Logf(logger.Allow, "event", "wait: %v", sdl.GetError())
			}
			return false
		}

		if q.accept(ev) {
			q.pending = append(q.pending, ev)
		}
	}

	ev := q.pending[0]
	q.pending = q.pending[1:]
	if !Dispatch(ev, h) {
		h.All(ev)
	}

	return true
}

// Push adds an event to the end of the SDL event queue.
func (q *Queue) Push(ev sdl.Event) error {
	if ev == nil {
		return sdlerr.Errorf(PushError, "nil event")
	}
	if err := q.src.push(ev); err != nil {
		return sdlerr.Errorf(PushError, err)
	}
	return nil
}

// SetFilter sets the function that decides which events are added to the
// queue. A nil filter accepts every event.
func (q *Queue) SetFilter(f Filter) {
	q.filter = f
}

// Filter returns the current filter function.
func (q *Queue) Filter() Filter {
	return q.filter
}

// Flush removes every event that matches the mask from the queue.
func (q *Queue) Flush(mask Mask) {
	q.Pump()
	n := 0
	for _, ev := range q.pending {
		if MaskFor(ev)&mask == 0 {
			q.pending[n] = ev
			n++
		}
	}
	q.pending = q.pending[:n]
}

// EventState changes how events of the kind are processed. Ignored events
// are dropped before they reach the queue. Returns the resulting state or the
// current state if the state argument is Query.
func (q *Queue) EventState(kind Kind, state int) int {
	m := MaskOf(kind)
	switch state {
	case Ignore:
		q.ignored |= m
		q.Flush(m)
	case Enable:
		q.ignored &^= m
	}
	if q.ignored&m != 0 {
		return Ignore
	}
	return Enable
}

// EnableKeyRepeat sets how repeated key presses are reported. The delay is
// the time in milliseconds before the first repeat and the interval is the
// time between subsequent repeats. A delay of zero disables key repeat,
// which is the default.
func (q *Queue) EnableKeyRepeat(delay, interval int) error {
	if delay < 0 || interval < 0 {
		return sdlerr.Errorf(RepeatError, fmt.Sprintf("invalid values (%d, %d)", delay, interval))
	}
	q.repeat.set(delay, interval)
	return nil
}

// KeyRepeat returns the current key repeat delay and interval.
func (q *Queue) KeyRepeat() (delay, interval int) {
	return int(q.repeat.delay), int(q.repeat.interval)
}
