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

package cdrom

// FPS is the number of frames in one second of audio.
const FPS = 75

// FramesToMSF converts a frame count to minutes, seconds and frames.
func FramesToMSF(frames int32) (m, s, f int32) {
	f = frames % FPS
	frames /= FPS
	s = frames % 60
	frames /= 60
	m = frames
	return m, s, f
}

// MSFToFrames converts minutes, seconds and frames to a frame count.
func MSFToFrames(m, s, f int32) int32 {
	return m*60*FPS + s*FPS + f
}
