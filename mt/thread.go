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
	"context"
	"sync/atomic"

	"github.com/jetsetilly/sdl4go/assert"
)

// Thread is a function running in its own goroutine.
type Thread struct {
	id     atomic.Uint64
	cancel context.CancelFunc
	done   chan struct{}
	status int
}

// CreateThread runs the function in a new thread. The value returned by the
// function is returned by Wait().
func CreateThread(fn func(ctx context.Context) int) *Thread {
	ctx, cancel := context.WithCancel(context.Background())

	th := &Thread{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	started := make(chan struct{})
	go func() {
		defer close(th.done)
		defer cancel()
		th.id.Store(assert.GoroutineID())
		close(started)
		th.status = fn(ctx)
	}()

	// the ID is always available when CreateThread() returns
	<-started

	return th
}

// ThreadID returns the identifier of the current thread.
func ThreadID() uint64 {
	return assert.GoroutineID()
}

// ID returns the identifier of the thread.
func (th *Thread) ID() uint64 {
	return th.id.Load()
}

// Wait for the thread to finish and return the value returned by the thread
// function.
func (th *Thread) Wait() int {
	<-th.done
	return th.status
}

// Kill asks the thread to finish by cancelling its context. It does not
// wait for the thread to finish.
func (th *Thread) Kill() {
	th.cancel()
}

// Done returns a channel that is closed when the thread has finished.
func (th *Thread) Done() <-chan struct{} {
	return th.done
}
