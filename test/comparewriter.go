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

package test

import (
	"strings"
	"sync"
)

// CompareWriter collects everything written to it so that it can be compared
// with the expected output. It is safe to write to from more than one
// goroutine.
type CompareWriter struct {
	crit sync.Mutex
	sb   strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.sb.Write(p)
}

// Clear forgets everything written so far.
func (cw *CompareWriter) Clear() {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	cw.sb.Reset()
}

// Compare returns true if the output so far is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}

// Lines returns the output split into lines. A final newline does not
// produce an empty line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.sb.String()
}
