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


package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/video"
)

// Video creates a fingerprint of a sequence of frames. Frames are converted
// to RGBA before hashing so the pixel format of the surface does not matter.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Frame adds the current contents of the surface to the digest.
func (dig *Video) Frame(s *video.Surface) error {
	img, err := s.Image()
	if err != nil {
		return sdlerr.Errorf(DigestError, err)
	}

	// the size of the frame is part of the digest. the previous digest value
	// is at the start of the buffer
	w, h := s.Size()
	l := len(dig.digest) + 8 + len(img.Pix)
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	n := copy(dig.pixels, dig.digest[:])
	n += copy(dig.pixels[n:], []byte{
		byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	})

	// the image may have a stride longer than the width
	rowLen := int(w) * 4
	for y := 0; y < int(h); y++ {
		i := img.PixOffset(0, y)
		n += copy(dig.pixels[n:], img.Pix[i:i+rowLen])
	}

	dig.digest = sha1.Sum(dig.pixels[:n])
	dig.frames++

	return nil
}
