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
	"unsafe"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// CVT converts audio data from one format to another.
type CVT struct {
	SrcFormat   Format
	SrcChannels uint8
	SrcRate     int32
	DstFormat   Format
	DstChannels uint8
	DstRate     int32

	// the size of the converted data in relation to the source data
	LenRatio float64

	cvt sdl.AudioCVT
}

// BuildAudioCVT prepares a conversion between the two descriptions of audio
// data.
func BuildAudioCVT(srcFormat Format, srcChannels uint8, srcRate int32,
	dstFormat Format, dstChannels uint8, dstRate int32) (*CVT, error) {

	cvt := &CVT{
		SrcFormat:   srcFormat,
		SrcChannels: srcChannels,
		SrcRate:     srcRate,
		DstFormat:   dstFormat,
		DstChannels: dstChannels,
		DstRate:     dstRate,
	}

	_, err := sdl.BuildAudioCVT(&cvt.cvt,
		sdl.AudioFormat(srcFormat), srcChannels, int(srcRate),
		sdl.AudioFormat(dstFormat), dstChannels, int(dstRate))
	if err != nil {
		return nil, sdlerr.Errorf(CVTError, err)
	}
	cvt.LenRatio = cvt.cvt.LenRatio

	return cvt, nil
}

// Needed returns true if the conversion changes the data.
func (cvt *CVT) Needed() bool {
	return cvt.cvt.Needed != 0
}

// Convert returns a converted copy of the data. An incomplete frame at the
// end of the data is ignored.
func (cvt *CVT) Convert(data []byte) ([]byte, error) {
	frame := cvt.SrcFormat.ByteSize() * int(cvt.SrcChannels)
	n := len(data) / frame * frame
	if n == 0 {
		return []byte{}, nil
	}

	if !cvt.Needed() {
		out := make([]byte, n)
		copy(out, data)
		return out, nil
	}

	// SDL converts in place in a buffer large enough for the largest
	// intermediate stage
	size := n * int(cvt.cvt.LenMult)
	cvt.cvt.AllocBuf(uintptr(size))
	if cvt.cvt.Buf == nil {
		return nil, sdlerr.Errorf(CVTError, "out of memory")
	}
	defer func() {
		cvt.cvt.FreeBuf()
		cvt.cvt.Buf = nil
	}()

	copy(unsafe.Slice((*byte)(cvt.cvt.Buf), size), data[:n])
	cvt.cvt.Len = int32(n)

	if err := sdl.ConvertAudio(&cvt.cvt); err != nil {
		return nil, sdlerr.Errorf(CVTError, err)
	}

	buf := cvt.cvt.BufAsSlice()
	out := make([]byte, len(buf))
	copy(out, buf)

	return out, nil
}
