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
	"sync"

	"github.com/jetsetilly/sdl4go/assert"
	"github.com/jetsetilly/sdl4go/sdlerr"
)

// Mutex is a recursive mutex. The thread that has locked the mutex can lock
// it again without blocking. It must be unlocked as many times as it was
// locked. The zero value is an unlocked mutex.
type Mutex struct {
	crit  sync.Mutex
	free  *sync.Cond
	owner assert.Owner
	count int
}

// NewMutex is the preferred method of initialisation for the Mutex type.
func NewMutex() *Mutex {
	return &Mutex{}
}

// Lock the mutex, blocking until it is available.
func (m *Mutex) Lock() {
	m.crit.Lock()
	defer m.crit.Unlock()

	if m.owner.Current() {
		m.count++
		return
	}

	if m.free == nil {
		m.free = sync.NewCond(&m.crit)
	}
	for m.owner.Owned() {
		m.free.Wait()
	}

	m.owner.Claim()
	m.count = 1
}

// Unlock the mutex. It is an error to unlock a mutex that is not locked by
// the current thread.
func (m *Mutex) Unlock() error {
	m.crit.Lock()
	defer m.crit.Unlock()

	if !m.owner.Current() {
		return sdlerr.Errorf(NotOwner)
	}

	m.count--
	if m.count == 0 {
		m.owner.Release()
		if m.free != nil {
			m.free.Signal()
		}
	}

	return nil
}
