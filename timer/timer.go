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

// Package timer measures time and runs functions after an interval.
//
// Timer callbacks run in their own goroutine. A callback returns the interval
// until it should next be called, or zero to stop the timer. Intervals are
// rounded up to a multiple of Resolution milliseconds.
package timer

import (
	"sync"
	"time"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// Error patterns.
const (
	NoCallback = "timer: callback is nil"
)

// Resolution is the granularity of timer intervals in milliseconds.
const Resolution = 10

// ID identifies a timer added with AddTimer().
type ID uint32

// Callback is called when a timer expires. The interval is the one that
// caused the call and param is the value given to AddTimer(). The return
// value is the next interval.
type Callback func(interval uint32, param any) uint32

// Ticks returns the number of milliseconds since the library was initialised.
func Ticks() uint32 {
	return sdl.GetTicks()
}

// Delay waits for the number of milliseconds.
func Delay(ms uint32) {
	sdl.Delay(ms)
}

func round(ms uint32) uint32 {
	return (ms + Resolution - 1) / Resolution * Resolution
}

type entry struct {
	t        *time.Timer
	cb       Callback
	param    any
	interval uint32
}

var (
	crit   sync.Mutex
	timers = make(map[ID]*entry)
	nextID ID
)

// AddTimer calls the callback after the interval in milliseconds. The ID
// returned can be used to remove the timer.
func AddTimer(interval uint32, cb Callback, param any) (ID, error) {
	if cb == nil {
		return 0, sdlerr.Logicf(NoCallback)
	}

	crit.Lock()
	defer crit.Unlock()

	nextID++
	if nextID == 0 {
		nextID++
	}
	id := nextID

	e := &entry{
		cb:       cb,
		param:    param,
		interval: interval,
	}
	timers[id] = e
	e.t = time.AfterFunc(time.Duration(round(interval))*time.Millisecond, func() {
		expire(id, e)
	})

	return id, nil
}

func expire(id ID, e *entry) {
	crit.Lock()
	if timers[id] != e {
		crit.Unlock()
		return
	}
	interval := e.interval
	crit.Unlock()

	next := e.cb(interval, e.param)

	crit.Lock()
	defer crit.Unlock()

	// the timer may have been removed by the callback
	if timers[id] != e {
		return
	}
	if next == 0 {
		delete(timers, id)
		return
	}
	e.interval = next
	e.t.Reset(time.Duration(round(next)) * time.Millisecond)
}

// RemoveTimer stops the timer. Returns false if the timer does not exist. A
// callback that is already running is not interrupted.
func RemoveTimer(id ID) bool {
	crit.Lock()
	defer crit.Unlock()

	e, ok := timers[id]
	if !ok {
		return false
	}
	e.t.Stop()
	delete(timers, id)
	return true
}

// Active returns true if the timer exists.
func Active(id ID) bool {
	crit.Lock()
	defer crit.Unlock()
	_, ok := timers[id]
	return ok
}

// the timer started by SetTimer()
var legacy struct {
	crit sync.Mutex
	id   ID
}

// SetTimer sets the single legacy timer. An interval of zero or a nil
// callback cancels the timer. SetTimer() can be called from any goroutine.
func SetTimer(interval uint32, cb func(interval uint32) uint32) {
	legacy.crit.Lock()
	defer legacy.crit.Unlock()

	if legacy.id != 0 {
		RemoveTimer(legacy.id)
		legacy.id = 0
	}
	if interval == 0 || cb == nil {
		return
	}
	legacy.id, _ = AddTimer(interval, func(interval uint32, _ any) uint32 {
		return cb(interval)
	}, nil)
}
