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
	"testing"

	"github.com/jetsetilly/sdl4go/test"
)

func TestCVTNotNeeded(t *testing.T) {
	cvt, err := BuildAudioCVT(S16LSB, 2, 44100, S16LSB, 2, 44100)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cvt.Needed())
	test.ExpectEquality(t, cvt.LenRatio, 1.0)

	data := s16(1, 2, 3, 4)
	out, err := cvt.Convert(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(out), string(data))

	// the incomplete frame is dropped
	out, err = cvt.Convert(data[:6])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(out), 4)

	out, err = cvt.Convert(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(out), 0)
}

func TestCVTFormatAndChannels(t *testing.T) {
	cvt, err := BuildAudioCVT(U8, 1, 8000, S16LSB, 2, 8000)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cvt.Needed())
	test.ExpectEquality(t, cvt.LenRatio, 4.0)

	out, err := cvt.Convert([]byte{128 + 64, 128})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(out), 8)
	v := values(out)
	test.ExpectApproximate(t, int(v[0]), 16384, 0.001)
	test.ExpectEquality(t, v[1], v[0])
	test.ExpectEquality(t, v[2], 0)
	test.ExpectEquality(t, v[3], 0)

	// stereo to mono takes the average of the two channels
	cvt, err = BuildAudioCVT(S16LSB, 2, 8000, S16LSB, 1, 8000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cvt.LenRatio, 0.5)
	out, err = cvt.Convert(s16(1000, 3000, -1000, -3000))
	test.DemandSuccess(t, err)
	v = values(out)
	test.DemandEquality(t, len(v), 2)
	test.ExpectApproximate(t, int(v[0]), 2000, 0.001)
	test.ExpectApproximate(t, int(v[1]), -2000, 0.001)

	// the converter can be used more than once
	out, err = cvt.Convert(s16(500, 500))
	test.DemandSuccess(t, err)
	v = values(out)
	test.DemandEquality(t, len(v), 1)
	test.ExpectApproximate(t, int(v[0]), 500, 0.01)
}

func TestCVTRate(t *testing.T) {
	cvt, err := BuildAudioCVT(S16LSB, 1, 22050, S16LSB, 1, 44100)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cvt.Needed())
	test.ExpectEquality(t, cvt.LenRatio, 2.0)

	out, err := cvt.Convert(make([]byte, 4096))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(out)%2, 0)
	test.ExpectApproximate(t, len(out), 8192, 0.01)
}

func TestCVTErrors(t *testing.T) {
	_, err := BuildAudioCVT(Format(0x1234), 1, 100, S16LSB, 1, 100)
	test.ExpectFailure(t, err)
	_, err = BuildAudioCVT(S16LSB, 0, 100, S16LSB, 1, 100)
	test.ExpectFailure(t, err)
	_, err = BuildAudioCVT(S16LSB, 1, 0, S16LSB, 1, 100)
	test.ExpectFailure(t, err)
	_, err = BuildAudioCVT(S16LSB, 1, 100, S16LSB, 1, -1)
	test.ExpectFailure(t, err)
}
