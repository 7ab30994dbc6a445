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

package mixer_test

import (
	"testing"

	"github.com/jetsetilly/sdl4go/mixer"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
)

func TestNotOpened(t *testing.T) {
	test.ExpectFailure(t, mixer.Opened())

	_, err := mixer.LoadChunk("sound.wav")
	test.ExpectSuccess(t, sdlerr.Is(err, mixer.NotOpened))
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	_, err = mixer.LoadMusic("music.ogg")
	test.ExpectSuccess(t, sdlerr.Is(err, mixer.NotOpened))

	test.ExpectFailure(t, mixer.Playing(mixer.AllChannels))
	test.ExpectFailure(t, mixer.PlayingMusic())
	test.ExpectEquality(t, mixer.AllocateChannels(8), 0)

	// these do nothing without an open device
	mixer.HaltChannel(mixer.AllChannels)
	mixer.HaltMusic()
	mixer.CloseAudio()
}

func TestFreedChunk(t *testing.T) {
	var c mixer.Chunk
	_, err := c.Play(mixer.AllChannels, mixer.PlayOnce)
	test.ExpectSuccess(t, sdlerr.Is(err, mixer.Freed))
	test.ExpectEquality(t, c.Volume(mixer.MaxVolume), 0)
	c.Free()

	var m mixer.Music
	test.ExpectSuccess(t, sdlerr.Is(m.Play(mixer.LoopForever), mixer.Freed))
	m.Free()
}
