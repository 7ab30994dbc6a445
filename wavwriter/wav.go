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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when the writer is closed. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"encoding/binary"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/sdl4go/audio"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
)

// Error patterns.
const (
	WriterError = "wavwriter: %v"
	Closed      = "wavwriter: writer is closed"
)

// WavWriter implements the io.WriteCloser interface.
type WavWriter struct {
	filename string
	spec     audio.Spec
	bitDepth int
	buffer   []int

	// a partial sample left over from the previous call to Write()
	partial []byte

	closed bool
}

// New is the preferred method of initialisation for the WavWriter type. Audio
// data in the U8, S8, S16LSB and S16MSB formats can be written.
func New(filename string, spec audio.Spec) (*WavWriter, error) {
	var depth int

	switch spec.Format {
	case audio.U8, audio.S8:
		depth = 8
	case audio.S16LSB, audio.S16MSB:
		depth = 16
	default:
		return nil, sdlerr.Errorf(WriterError, sdlerr.Errorf(audio.FormatError, spec.Format))
	}

	if spec.Channels == 0 || spec.Freq <= 0 {
		return nil, sdlerr.Errorf(WriterError, "bad parameters for wav encoding")
	}

	aw := &WavWriter{
		filename: filename,
		spec:     spec,
		bitDepth: depth,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// Write implements the io.Writer interface. The data must be in the format
// given to New().
func (aw *WavWriter) Write(pcm []byte) (int, error) {
	if aw.closed {
		return 0, sdlerr.Logicf(Closed)
	}

	n := len(pcm)
	if len(aw.partial) > 0 {
		pcm = append(aw.partial, pcm...)
		aw.partial = nil
	}

	sz := aw.spec.Format.ByteSize()
	for len(pcm) >= sz {
		var v int

		switch aw.spec.Format {
		case audio.U8:
			v = int(pcm[0])
		case audio.S8:
			// WAV files store 8 bit samples as unsigned values
			v = int(int8(pcm[0])) + 128
		case audio.S16LSB:
			v = int(int16(binary.LittleEndian.Uint16(pcm)))
		case audio.S16MSB:
			v = int(int16(binary.BigEndian.Uint16(pcm)))
		}

		aw.buffer = append(aw.buffer, v)
		pcm = pcm[sz:]
	}

	if len(pcm) > 0 {
		aw.partial = append([]byte{}, pcm...)
	}

	return n, nil
}

// Samples returns the number of samples written so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close implements the io.Closer interface. The buffered audio is written to
// disk.
func (aw *WavWriter) Close() (rerr error) {
	if aw.closed {
		return sdlerr.Logicf(Closed)
	}
	aw.closed = true

	f, err := os.Create(aw.filename)
	if err != nil {
		return sdlerr.Errorf(WriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = sdlerr.Errorf(WriterError, err)
		}
	}()

	enc := wav.NewEncoder(f, int(aw.spec.Freq), aw.bitDepth, int(aw.spec.Channels), 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(aw.spec.Channels),
			SampleRate:  int(aw.spec.Freq),
		},
		Data:           aw.buffer,
		SourceBitDepth: aw.bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return sdlerr.Errorf(WriterError, err)
	}
	if err := enc.Close(); err != nil {
		return sdlerr.Errorf(WriterError, err)
	}

	return nil
}
