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
	"encoding/binary"
	"math"
)

func byteOrder(f Format) binary.ByteOrder {
	if f.BigEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// decodeSample returns the sample at the start of b as a value between -1.0
// and 1.0
func decodeSample(b []byte, f Format) float64 {
	o := byteOrder(f)
	switch f {
	case U8:
		return (float64(b[0]) - 128) / 128
	case S8:
		return float64(int8(b[0])) / 128
	case U16LSB, U16MSB:
		return (float64(o.Uint16(b)) - 32768) / 32768
	case S16LSB, S16MSB:
		return float64(int16(o.Uint16(b))) / 32768
	case S32LSB, S32MSB:
		return float64(int32(o.Uint32(b))) / 2147483648
	case F32LSB, F32MSB:
		return float64(math.Float32frombits(o.Uint32(b)))
	}
	return 0
}

func clamp(v float64, lo float64, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// encodeSample writes the value to the start of b. values outside the range
// -1.0 to 1.0 are clipped
func encodeSample(b []byte, f Format, v float64) {
	o := byteOrder(f)
	switch f {
	case U8:
		b[0] = uint8(clamp(math.Round(v*128), -128, 127) + 128)
	case S8:
		b[0] = uint8(int8(clamp(math.Round(v*128), -128, 127)))
	case U16LSB, U16MSB:
		o.PutUint16(b, uint16(clamp(math.Round(v*32768), -32768, 32767)+32768))
	case S16LSB, S16MSB:
		o.PutUint16(b, uint16(int16(clamp(math.Round(v*32768), -32768, 32767))))
	case S32LSB, S32MSB:
		o.PutUint32(b, uint32(int32(clamp(math.Round(v*2147483648), -2147483648, 2147483647))))
	case F32LSB, F32MSB:
		o.PutUint32(b, math.Float32bits(float32(clamp(v, -1, 1))))
	}
}
