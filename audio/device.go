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
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultBufferLength is the number of bytes in each buffer of a Device if
// the spec passed to OpenDevice() does not say otherwise.
const DefaultBufferLength = 4096

// the audio queue of an SDL device
type queue interface {
	queue(data []byte) error
	queued() uint32
	clear()
	pause(bool)
	close()
}

type sdlQueue sdl.AudioDeviceID

func (q sdlQueue) queue(data []byte) error {
	return sdl.QueueAudio(sdl.AudioDeviceID(q), data)
}

func (q sdlQueue) queued() uint32 {
	return sdl.GetQueuedAudioSize(sdl.AudioDeviceID(q))
}

func (q sdlQueue) clear() {
	sdl.ClearQueuedAudio(sdl.AudioDeviceID(q))
}

func (q sdlQueue) pause(p bool) {
	sdl.PauseAudioDevice(sdl.AudioDeviceID(q), p)
}

func (q sdlQueue) close() {
	sdl.CloseAudioDevice(sdl.AudioDeviceID(q))
}

// Device is an audio device that is written to like a file.
//
// Two buffers are kept and swapped after every flush. When the device has
// played everything that has been queued, the most recent buffer is played
// again, faded to silence, to cover the gap and to avoid an audible click.
type Device struct {
	q    queue
	spec Spec

	buffer   *[]uint8
	other    *[]uint8
	bufferA  []uint8
	bufferB  []uint8
	bufferCt int

	// the other buffer has already been used to fill a gap
	repeated bool
}

// OpenDevice opens the named audio device. An empty name opens the default
// device. The Samples field of the spec decides the length of the buffers.
func OpenDevice(name string, spec Spec) (*Device, error) {
	if spec.Samples == 0 {
		spec.Samples = uint16(DefaultBufferLength / max(1, spec.FrameSize()))
	}

	want := spec.sdl()
	var obtained sdl.AudioSpec

	id, err := sdl.OpenAudioDevice(name, false, &want, &obtained, 0)
	if err != nil {
		return nil, sdlerr.Errorf(OpenError, err)
	}

	dev := newDevice(sdlQueue(id), fromSDL(&obtained))

	if name == "" {
		name = "default device"
	}
	logger.Logf(logger.Allow, "audio", "opened %s (%s)", name, dev.spec)

	return dev, nil
}

func newDevice(q queue, spec Spec) *Device {
	length := int(spec.Samples) * spec.FrameSize()
	if length <= 0 {
		length = DefaultBufferLength
	}

	dev := &Device{
		q:       q,
		spec:    spec,
		bufferA: make([]uint8, length),
		bufferB: make([]uint8, length),

		// nothing has been played that can be repeated
		repeated: true,
	}
	dev.buffer = &dev.bufferA
	dev.other = &dev.bufferB

	// fill buffers with silence
	for i := range dev.bufferA {
		dev.bufferA[i] = spec.Silence
	}
	for i := range dev.bufferB {
		dev.bufferB[i] = spec.Silence
	}

	return dev
}

// Spec returns the format of the device. Data written to the device must be
// in this format.
func (dev *Device) Spec() Spec {
	return dev.spec
}

// Pause or unpause the device. A new device is paused.
func (dev *Device) Pause(pause bool) error {
	if dev.q == nil {
		return sdlerr.Logicf(NotOpened, "Pause")
	}
	dev.q.pause(pause)
	return nil
}

// Write implements the io.Writer interface. Data is queued on the device each
// time a buffer is filled.
func (dev *Device) Write(data []byte) (int, error) {
	if dev.q == nil {
		return 0, sdlerr.Logicf(NotOpened, "Write")
	}

	n := 0
	for len(data) > 0 {
		c := copy((*dev.buffer)[dev.bufferCt:], data)
		dev.bufferCt += c
		data = data[c:]
		n += c

		if dev.bufferCt >= len(*dev.buffer) {
			if err := dev.flush(); err != nil {
				return n, err
			}
		}
	}

	dev.fillGap()

	return n, nil
}

// fillGap queues the previous buffer again if the device has nothing left to
// play. the repeated data is faded so that it ends in silence
func (dev *Device) fillGap() {
	if dev.repeated || dev.q.queued() > 0 {
		return
	}
	dev.repeated = true

	fade := make([]uint8, len(*dev.other))
	copy(fade, *dev.other)

	sz := dev.spec.Format.ByteSize()
	if sz == 0 || !dev.spec.Format.Valid() {
		return
	}
	n := len(fade) / sz
	for i := 0; i < n; i++ {
		v := decodeSample(fade[i*sz:], dev.spec.Format)
		encodeSample(fade[i*sz:], dev.spec.Format, v*float64(n-i)/float64(n))
	}

	_ = dev.q.queue(fade)
}

// Flush queues whatever has been written since the last flush. The rest of
// the buffer is filled with silence.
func (dev *Device) Flush() error {
	if dev.q == nil {
		return sdlerr.Logicf(NotOpened, "Flush")
	}
	if dev.bufferCt == 0 {
		return nil
	}
	for i := dev.bufferCt; i < len(*dev.buffer); i++ {
		(*dev.buffer)[i] = dev.spec.Silence
	}
	return dev.flush()
}

func (dev *Device) flush() error {
	if err := dev.q.queue(*dev.buffer); err != nil {
		return sdlerr.Errorf(QueueError, err)
	}
	dev.bufferCt = 0
	dev.repeated = false

	dev.buffer, dev.other = dev.other, dev.buffer

	return nil
}

// Queued returns the number of bytes waiting to be played.
func (dev *Device) Queued() uint32 {
	if dev.q == nil {
		return 0
	}
	return dev.q.queued()
}

// Clear removes everything that is waiting to be played.
func (dev *Device) Clear() {
	if dev.q != nil {
		dev.q.clear()
		dev.bufferCt = 0
	}
}

// Close flushes and closes the device.
func (dev *Device) Close() error {
	if dev.q == nil {
		return sdlerr.Logicf(NotOpened, "Close")
	}
	defer func() {
		dev.q.close()
		dev.q = nil
		logger.Log(logger.Allow, "audio", "device closed")
	}()
	return dev.Flush()
}
