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
)

// the length of the buffer isn't important but it must leave room after the
// previous digest value
const audioBufferLength = 1024 + sha1.Size

// the previous digest value is stored at the start of the buffer so that
// streams longer than the buffer are chained
const audioBufferStart = sha1.Size

// Audio creates a fingerprint of the bytes written to it. It implements the
// io.Writer interface and can be used with io.MultiWriter() alongside an
// audio device.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface. The hash does not include data that
// has been written since the most recent call to Flush().
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
}

// Write implements the io.Writer interface.
func (dig *Audio) Write(data []byte) (int, error) {
	l := len(data)
	for len(data) > 0 {
		n := copy(dig.buffer[dig.bufferCt:], data)
		dig.bufferCt += n
		data = data[n:]

		if dig.bufferCt >= audioBufferLength {
			dig.Flush()
		}
	}
	return l, nil
}

// Flush includes any buffered data in the digest.
func (dig *Audio) Flush() {
	if dig.bufferCt == audioBufferStart {
		return
	}
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
