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

package mixer

import (
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/mix"
)

// Music is a piece of music. Only one piece of music plays at any one time.
type Music struct {
	music *mix.Music
	name  string
}

// LoadMusic loads music from a file.
func LoadMusic(filename string) (*Music, error) {
	if !opened {
		return nil, sdlerr.Logicf(NotOpened, "LoadMusic")
	}
	m, err := mix.LoadMUS(filename)
	if err != nil {
		return nil, sdlerr.Errorf(LoadError, err)
	}
	logger.Logf(logger.Allow, "mixer", "loaded music %s", filename)
	return &Music{music: m, name: filename}, nil
}

// Name returns the filename the music was loaded from.
func (m *Music) Name() string {
	return m.name
}

// Play the music. Any music already playing is stopped.
func (m *Music) Play(loops int) error {
	if m.music == nil {
		return sdlerr.Logicf(Freed, "Music.Play")
	}
	if !opened {
		return sdlerr.Logicf(NotOpened, "Music.Play")
	}
	if err := m.music.Play(loops); err != nil {
		return sdlerr.Errorf(PlayError, err)
	}
	return nil
}

// Free the music. Music that is playing is stopped first.
func (m *Music) Free() {
	if m.music != nil {
		m.music.Free()
		m.music = nil
	}
}
