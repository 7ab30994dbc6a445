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

// Chunk is a sound effect.
type Chunk struct {
	chunk *mix.Chunk
	name  string
}

// LoadChunk loads a sound effect from a file. WAV files are always supported.
// Other formats depend on how SDL_mixer was built.
func LoadChunk(filename string) (*Chunk, error) {
	if !opened {
		return nil, sdlerr.Logicf(NotOpened, "LoadChunk")
	}
	c, err := mix.LoadWAV(filename)
	if err != nil {
		return nil, sdlerr.Errorf(LoadError, err)
	}
	logger.Logf(logger.Allow, "mixer", "loaded chunk %s", filename)
	return &Chunk{chunk: c, name: filename}, nil
}

// Name returns the filename the chunk was loaded from.
func (c *Chunk) Name() string {
	return c.name
}

// Play the chunk on a channel. The chunk is played loops times after the
// first time. If the channel is AllChannels then the first free channel is
// used. The channel that was used is returned.
func (c *Chunk) Play(channel int, loops int) (int, error) {
	if c.chunk == nil {
		return -1, sdlerr.Logicf(Freed, "Chunk.Play")
	}
	if !opened {
		return -1, sdlerr.Logicf(NotOpened, "Chunk.Play")
	}
	ch, err := c.chunk.Play(channel, loops)
	if err != nil {
		return -1, sdlerr.Errorf(PlayError, err)
	}
	return ch, nil
}

// Volume sets the volume of the chunk and returns the previous volume. A
// negative volume changes nothing.
func (c *Chunk) Volume(volume int) int {
	if c.chunk == nil {
		return 0
	}
	return c.chunk.Volume(min(volume, MaxVolume))
}

// Free the chunk. It is safe to call more than once.
func (c *Chunk) Free() {
	if c.chunk != nil {
		c.chunk.Free()
		c.chunk = nil
	}
}
