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
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// Sound is audio data loaded from a file along with its format.
type Sound struct {
	Spec Spec
	Data []byte

	// the data was allocated by SDL and must be returned with FreeWAV()
	sdlOwned bool
}

// Len returns the number of frames in the sound.
func (snd *Sound) Len() int {
	sz := snd.Spec.FrameSize()
	if sz == 0 {
		return 0
	}
	return len(snd.Data) / sz
}

// Free releases the audio data. It is safe to call more than once.
func (snd *Sound) Free() {
	if snd.sdlOwned && snd.Data != nil {
		sdl.FreeWAV(snd.Data)
	}
	snd.Data = nil
	snd.sdlOwned = false
}

// LoadWAV loads a WAV file using SDL.
func LoadWAV(filename string) (*Sound, error) {
	data, spec := sdl.LoadWAV(filename)
	if spec == nil {
		return nil, sdlerr.Errorf(LoadError, sdl.GetError())
	}

	snd := &Sound{
		Spec:     fromSDL(spec),
		Data:     data,
		sdlOwned: true,
	}
	logger.Logf(logger.Allow, "audio", "loaded %s (%s)", filename, snd.Spec)

	return snd, nil
}

// DecodeWAV decodes WAV data without using SDL. Samples of 8 bits are
// returned as U8. Samples of 16 bits are returned as S16LSB. Samples of 24
// and 32 bits are returned as S32LSB.
func DecodeWAV(r io.ReadSeeker) (*Sound, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, sdlerr.Errorf(DecodeError, "not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, sdlerr.Errorf(DecodeError, err)
	}

	snd := &Sound{
		Spec: Spec{
			Freq:     int32(dec.SampleRate),
			Channels: uint8(dec.NumChans),
		},
	}

	switch dec.BitDepth {
	case 8:
		snd.Spec.Format = U8
		snd.Data = make([]byte, len(buf.Data))
		for i, v := range buf.Data {
			snd.Data[i] = uint8(v)
		}
	case 16:
		snd.Spec.Format = S16LSB
		snd.Data = make([]byte, len(buf.Data)*2)
		for i, v := range buf.Data {
			binary.LittleEndian.PutUint16(snd.Data[i*2:], uint16(int16(v)))
		}
	case 24, 32:
		shift := 32 - int(dec.BitDepth)
		snd.Spec.Format = S32LSB
		snd.Data = make([]byte, len(buf.Data)*4)
		for i, v := range buf.Data {
			binary.LittleEndian.PutUint32(snd.Data[i*4:], uint32(int32(v)<<shift))
		}
	default:
		return nil, sdlerr.Errorf(DecodeError, sdlerr.Errorf(FormatError, dec.BitDepth))
	}

	snd.Spec.Silence = snd.Spec.Format.Silence()

	return snd, nil
}

// DecodeMP3 decodes MP3 data. The sound is always S16LSB stereo.
func DecodeMP3(r io.Reader) (*Sound, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, sdlerr.Errorf(DecodeError, err)
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, sdlerr.Errorf(DecodeError, err)
	}

	return &Sound{
		Spec: Spec{
			Freq:     int32(dec.SampleRate()),
			Format:   S16LSB,
			Channels: 2,
			Silence:  S16LSB.Silence(),
		},
		Data: data,
	}, nil
}
