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
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Format is the format of audio samples.
type Format uint16

// List of valid Format values.
const (
	U8     Format = 0x0008
	S8     Format = 0x8008
	U16LSB Format = 0x0010
	S16LSB Format = 0x8010
	U16MSB Format = 0x1010
	S16MSB Format = 0x9010
	S32LSB Format = 0x8020
	S32MSB Format = 0x9020
	F32LSB Format = 0x8120
	F32MSB Format = 0x9120

	// native byte order
	S16SYS = Format(sdl.AUDIO_S16SYS)
	U16SYS = U16LSB | S16SYS&bigEndianBit
	S32SYS = S32LSB | S16SYS&bigEndianBit
	F32SYS = F32LSB | S16SYS&bigEndianBit
)

const (
	bitSizeMask  Format = 0x00ff
	floatBit     Format = 0x0100
	bigEndianBit Format = 0x1000
	signedBit    Format = 0x8000
)

// BitSize returns the number of bits in a sample.
func (f Format) BitSize() int {
	return int(f & bitSizeMask)
}

// ByteSize returns the number of bytes in a sample.
func (f Format) ByteSize() int {
	return f.BitSize() / 8
}

// Signed returns true for signed formats.
func (f Format) Signed() bool {
	return f&signedBit == signedBit
}

// BigEndian returns true for formats with the most significant byte first.
func (f Format) BigEndian() bool {
	return f&bigEndianBit == bigEndianBit
}

// Float returns true for floating point formats.
func (f Format) Float() bool {
	return f&floatBit == floatBit
}

// Valid returns true if the format is one of the formats listed above.
func (f Format) Valid() bool {
	switch f {
	case U8, S8, U16LSB, S16LSB, U16MSB, S16MSB, S32LSB, S32MSB, F32LSB, F32MSB:
		return true
	}
	return false
}

// Silence returns the sample value for silence.
func (f Format) Silence() uint8 {
	switch f {
	case U8:
		return 0x80
	}
	return 0x00
}

func (f Format) String() string {
	switch f {
	case U8:
		return "U8"
	case S8:
		return "S8"
	case U16LSB:
		return "U16LSB"
	case S16LSB:
		return "S16LSB"
	case U16MSB:
		return "U16MSB"
	case S16MSB:
		return "S16MSB"
	case S32LSB:
		return "S32LSB"
	case S32MSB:
		return "S32MSB"
	case F32LSB:
		return "F32LSB"
	case F32MSB:
		return "F32MSB"
	}
	return fmt.Sprintf("unknown (%#04x)", uint16(f))
}

// Spec describes audio data or the configuration of an audio device.
type Spec struct {
	Freq     int32
	Format   Format
	Channels uint8

	// the silence value and buffer size are calculated by SDL when a device
	// is opened
	Silence uint8
	Samples uint16
	Size    uint32
}

func (s Spec) String() string {
	return fmt.Sprintf("%dHz %s %dch", s.Freq, s.Format, s.Channels)
}

// FrameSize returns the number of bytes in one sample of every channel.
func (s Spec) FrameSize() int {
	return s.Format.ByteSize() * int(s.Channels)
}

func (s Spec) sdl() sdl.AudioSpec {
	return sdl.AudioSpec{
		Freq:     s.Freq,
		Format:   sdl.AudioFormat(s.Format),
		Channels: s.Channels,
		Samples:  s.Samples,
	}
}

func fromSDL(s *sdl.AudioSpec) Spec {
	return Spec{
		Freq:     s.Freq,
		Format:   Format(s.Format),
		Channels: s.Channels,
		Silence:  s.Silence,
		Samples:  s.Samples,
		Size:     s.Size,
	}
}
