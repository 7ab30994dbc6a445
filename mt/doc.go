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

// Package mt provides threads, recursive mutexes, semaphores and condition
// variables.
//
// Threads are goroutines. A thread cannot be terminated from outside, so the
// function run by a thread is given a context that is cancelled by Kill().
// Functions that run for a long time should watch the context and return
// when it is done.
//
// Video and event functions must only be called from the main thread.
//
// Functions that wait with a timeout return an error matching the TimedOut
// pattern when the timeout expires.
package mt

// Error patterns.
const (
	TimedOut = "mt: timed out"
	NotOwner = "mt: mutex not owned by this thread"
	Overflow = "mt: semaphore overflow"
)
