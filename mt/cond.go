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

package mt

import (
	"slices"
	"sync"
	"time"

	"github.com/jetsetilly/sdl4go/sdlerr"
)

// Cond is a condition variable.
type Cond struct {
	crit    sync.Mutex
	waiting []chan struct{}
}

// NewCond is the preferred method of initialisation for the Cond type.
func NewCond() *Cond {
	return &Cond{}
}

// Signal wakes one of the threads waiting on the condition.
func (c *Cond) Signal() {
	c.crit.Lock()
	defer c.crit.Unlock()
	if len(c.waiting) > 0 {
		close(c.waiting[0])
		c.waiting = c.waiting[1:]
	}
}

// Broadcast wakes all the threads waiting on the condition.
func (c *Cond) Broadcast() {
	c.crit.Lock()
	defer c.crit.Unlock()
	for _, w := range c.waiting {
		close(w)
	}
	c.waiting = nil
}

func (c *Cond) add() chan struct{} {
	c.crit.Lock()
	defer c.crit.Unlock()
	w := make(chan struct{})
	c.waiting = append(c.waiting, w)
	return w
}

// remove the channel from the list of waiting threads. returns false if the
// channel has already been removed by Signal() or Broadcast()
func (c *Cond) remove(w chan struct{}) bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	i := slices.Index(c.waiting, w)
	if i < 0 {
		return false
	}
	c.waiting = slices.Delete(c.waiting, i, i+1)
	return true
}

// Wait unlocks the mutex and waits for the condition to be signalled. The
// mutex is locked again before returning. The mutex must be locked by the
// current thread.
func (c *Cond) Wait(m *Mutex) error {
	w := c.add()
	if err := m.Unlock(); err != nil {
		c.remove(w)
		return err
	}
	<-w
	m.Lock()
	return nil
}

// WaitTimeout is like Wait() but gives up after the timeout in milliseconds.
// The mutex is locked again whether or not the timeout expired.
func (c *Cond) WaitTimeout(m *Mutex, ms uint32) error {
	w := c.add()
	if err := m.Unlock(); err != nil {
		c.remove(w)
		return err
	}

	timeout := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timeout.Stop()

	var err error
	select {
	case <-w:
	case <-timeout.C:
		// a signal may have arrived at the same time as the timeout
		if c.remove(w) {
			err = sdlerr.Errorf(TimedOut)
		}
	}

	m.Lock()
	return err
}
