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

// Package assert identifies goroutines. It is used to decide which goroutine
// owns a lock.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GoroutineID returns an identifier for the current goroutine. It returns a
// result that is different between goroutines and consistent for a given
// goroutine. The value zero is never returned.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that has claimed a resource. The zero value
// has no owner.
type Owner struct {
	id atomic.Uint64
}

// Claim the resource for the current goroutine.
func (o *Owner) Claim() {
	o.id.Store(GoroutineID())
}

// Release the resource.
func (o *Owner) Release() {
	o.id.Store(0)
}

// Current returns true if the resource is owned by the current goroutine.
func (o *Owner) Current() bool {
	id := o.id.Load()
	return id != 0 && id == GoroutineID()
}

// Owned returns true if the resource is owned by any goroutine.
func (o *Owner) Owned() bool {
	return o.id.Load() != 0
}
