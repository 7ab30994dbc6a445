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


package main

import (
	"time"

	"github.com/jetsetilly/sdl4go/event"
	"github.com/veandco/go-sdl2/sdl"
)

// the longest time between calls to the frame function of run()
const framePeriod = 20 * time.Millisecond

// quitter handles the quit event and the escape key. it is embedded in the
// handlers of the interactive modes.
type quitter struct {
	event.Unhandled
	done bool
}

func (h *quitter) Quit() bool {
	h.done = true
	return true
}

func (h *quitter) KeyPressed(key event.Keysym) bool {
	if key.Sym == sdl.K_ESCAPE {
		h.done = true
		return true
	}
	return false
}

func (h *quitter) finished() bool {
	return h.done
}

type finisher interface {
	event.Handler
	finished() bool
}

// run dispatches events to the handler until it is finished. the frame
// function is called at least once per period and can be nil.
func run(q *event.Queue, h finisher, period time.Duration, frame func() error) error {
	for !h.finished() {
		if frame == nil {
			q.Wait(h)
			continue // for loop
		}

		q.WaitTimeout(h, period)
		q.Poll(h)
		if err := frame(); err != nil {
			return err
		}
	}
	return nil
}
