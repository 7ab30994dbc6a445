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

// Package mixer plays sound effects and music with SDL_mixer.
//
// Sound effects are loaded into a Chunk and played on one of several mixing
// channels. Music is loaded into a Music instance and played on its own
// channel. The audio device must be opened with OpenAudio() before anything
// is loaded or played.
package mixer

import (
	"github.com/jetsetilly/sdl4go/audio"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/mix"
)

// Error patterns.
const (
	OpenError = "mixer: open: %v"
	LoadError = "mixer: load: %v"
	PlayError = "mixer: play: %v"
	NotOpened = "mixer: %s: audio is not opened"
	Freed     = "mixer: %s: already freed"
)

// Default values for OpenAudio().
const (
	DefaultFrequency = 22050
	DefaultChannels  = 2
	DefaultChunkSize = 4096
)

// DefaultFormat is the default sample format for OpenAudio().
var DefaultFormat = audio.S16SYS

// MaxVolume is the loudest volume for a channel or chunk.
const MaxVolume = 128

// AllChannels can be used with any function that takes a channel number.
const AllChannels = -1

// Loops values for Play() functions.
const (
	PlayOnce    = 0
	LoopForever = -1
)

var opened bool

// Opened returns true if the mixer has been opened.
func Opened() bool {
	return opened
}

// OpenAudio opens the audio device for mixing.
func OpenAudio(frequency int, format audio.Format, channels int, chunkSize int) error {
	if opened {
		return nil
	}
	if !format.Valid() {
		return sdlerr.Errorf(OpenError, sdlerr.Errorf(audio.FormatError, format))
	}
	if err := mix.OpenAudio(frequency, uint16(format), channels, chunkSize); err != nil {
		return sdlerr.Errorf(OpenError, err)
	}
	opened = true
	logger.Logf(logger.Allow, "mixer", "opened %dHz %s %dch", frequency, format, channels)
	return nil
}

// CloseAudio stops all sound and closes the audio device.
func CloseAudio() {
	if !opened {
		return
	}
	mix.CloseAudio()
	opened = false
	logger.Log(logger.Allow, "mixer", "closed")
}

// AllocateChannels sets the number of mixing channels and returns the number
// of channels allocated. A negative value queries the current number.
func AllocateChannels(n int) int {
	if !opened {
		return 0
	}
	return mix.AllocateChannels(n)
}

// Volume sets the volume of the channel. The previous volume is returned. A
// negative volume changes nothing.
func Volume(channel int, volume int) int {
	if !opened {
		return 0
	}
	return mix.Volume(channel, min(volume, MaxVolume))
}

// Playing returns true if the channel is playing. For AllChannels, true is
// returned if any channel is playing.
func Playing(channel int) bool {
	if !opened {
		return false
	}
	return mix.Playing(channel) > 0
}

// HaltChannel stops the channel.
func HaltChannel(channel int) {
	if opened {
		mix.HaltChannel(channel)
	}
}

// Pause the channel.
func Pause(channel int) {
	if opened {
		mix.Pause(channel)
	}
}

// Resume a paused channel.
func Resume(channel int) {
	if opened {
		mix.Resume(channel)
	}
}

// HaltMusic stops the music.
func HaltMusic() {
	if opened {
		mix.HaltMusic()
	}
}

// PauseMusic pauses the music.
func PauseMusic() {
	if opened {
		mix.PauseMusic()
	}
}

// ResumeMusic resumes paused music.
func ResumeMusic() {
	if opened {
		mix.ResumeMusic()
	}
}

// PlayingMusic returns true if music is playing.
func PlayingMusic() bool {
	return opened && mix.PlayingMusic()
}

// VolumeMusic sets the volume of the music and returns the previous volume.
func VolumeMusic(volume int) int {
	if !opened {
		return 0
	}
	return mix.VolumeMusic(min(volume, MaxVolume))
}
