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

package timer

// Group is a collection of timers that are removed together.
type Group struct {
	ids []ID
}

// Add a timer to the group.
func (g *Group) Add(interval uint32, cb Callback, param any) error {
	id, err := AddTimer(interval, cb, param)
	if err != nil {
		return err
	}
	g.ids = append(g.ids, id)
	return nil
}

// Remove the most recently added timer. Returns false if the group is empty
// or if the timer had already stopped.
func (g *Group) Remove() bool {
	if len(g.ids) == 0 {
		return false
	}
	id := g.ids[len(g.ids)-1]
	g.ids = g.ids[:len(g.ids)-1]
	return RemoveTimer(id)
}

// RemoveAll removes every timer in the group.
func (g *Group) RemoveAll() {
	for len(g.ids) > 0 {
		g.Remove()
	}
}

// Len returns the number of timers in the group.
func (g *Group) Len() int {
	return len(g.ids)
}
