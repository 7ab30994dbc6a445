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
	"math"
	"sync"
	"time"

	"github.com/jetsetilly/sdl4go/sdlerr"
)

// Sem is a counting semaphore. The zero value is a semaphore with a value of
// zero.
type Sem struct {
	crit  sync.Mutex
	value uint32

	// closed and replaced every time the semaphore is posted
	posted chan struct{}
}

// NewSem is the preferred method of initialisation for the Sem type.
func NewSem(initial uint32) *Sem {
	return &Sem{
		value:  initial,
		posted: make(chan struct{}),
	}
}

// wake returns the channel that is closed on the next post. the semaphore
// must be locked
func (s *Sem) wake() chan struct{} {
	if s.posted == nil {
		s.posted = make(chan struct{})
	}
	return s.posted
}

// take decrements the value if it is above zero. if it is not then the
// channel that will be closed on the next post is returned
func (s *Sem) take() (bool, chan struct{}) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if s.value > 0 {
		s.value--
		return true, nil
	}
	return false, s.wake()
}

// Wait blocks until the value of the semaphore is above zero and then
// decrements it.
func (s *Sem) Wait() {
	for {
		ok, posted := s.take()
		if ok {
			return
		}
		<-posted
	}
}

// TryWait decrements the semaphore if that can be done without blocking. If
// it cannot, a TimedOut error is returned.
func (s *Sem) TryWait() error {
	if ok, _ := s.take(); ok {
		return nil
	}
	return sdlerr.Errorf(TimedOut)
}

// WaitTimeout is like Wait() but gives up after the timeout in milliseconds.
func (s *Sem) WaitTimeout(ms uint32) error {
	timeout := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timeout.Stop()

	for {
		ok, posted := s.take()
		if ok {
			return nil
		}
		select {
		case <-posted:
		case <-timeout.C:
			return sdlerr.Errorf(TimedOut)
		}
	}
}

// Post increments the value of the semaphore and wakes any waiting threads.
func (s *Sem) Post() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.value == math.MaxUint32 {
		return sdlerr.Errorf(Overflow)
	}
	s.value++

	close(s.wake())
	s.posted = make(chan struct{})

	return nil
}

// Value returns the current value of the semaphore.
func (s *Sem) Value() uint32 {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.value
}
