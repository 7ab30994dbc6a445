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

package audio

import (
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// MaxVolume is the volume at which MixAudio() adds the source data without
// any change.
const MaxVolume = 128

// MixAudio adds the source samples to the destination samples, clipping the
// result. The volume ranges from zero to MaxVolume. Only as many samples as
// there are in the shorter of the two slices are mixed.
func MixAudio(dst []byte, src []byte, format Format, volume int) error {
	if !format.Valid() {
		return sdlerr.Errorf(FormatError, format)
	}

	if volume <= 0 {
		return nil
	}

	sz := format.ByteSize()
	n := min(len(dst), len(src)) / sz * sz
	if n == 0 {
		return nil
	}

	sdl.MixAudioFormat(&dst[0], &src[0], sdl.AudioFormat(format), uint32(n), min(volume, MaxVolume))

	return nil
}
