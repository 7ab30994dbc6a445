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

// Package audio plays sound through SDL and loads, converts and mixes audio
// data.
//
// Sound is played by queueing data on an audio device. The legacy device is
// opened with OpenAudio() and fed with QueueAudio(). Named devices are
// opened with OpenDevice() and are double buffered, with silence filling any
// gaps when the buffers are not written quickly enough.
//
// Audio data can be loaded by SDL with LoadWAV() or decoded in Go with
// DecodeWAV() and DecodeMP3(). Data in one format can be converted to another
// with a CVT created by BuildAudioCVT().
package audio
