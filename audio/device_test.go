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

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
)

type fakeQueue struct {
	chunks [][]byte

	// when false queued() reports an empty queue
	holding bool
	paused  bool
	closed  bool
}

func (q *fakeQueue) queue(data []byte) error {
	c := make([]byte, len(data))
	copy(c, data)
	q.chunks = append(q.chunks, c)
	return nil
}

func (q *fakeQueue) queued() uint32 {
	if !q.holding {
		return 0
	}
	var n uint32
	for _, c := range q.chunks {
		n += uint32(len(c))
	}
	return n
}

func (q *fakeQueue) clear() {
	q.chunks = q.chunks[:0]
}

func (q *fakeQueue) pause(p bool) {
	q.paused = p
}

func (q *fakeQueue) close() {
	q.closed = true
}

func TestDeviceBuffering(t *testing.T) {
	q := &fakeQueue{holding: true}
	dev := newDevice(q, Spec{Freq: 1000, Format: S16LSB, Channels: 1, Samples: 4})

	n, err := dev.Write(s16(1, 2, 3, 4, 5))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)
	test.DemandEquality(t, len(q.chunks), 1)
	test.ExpectEquality(t, string(q.chunks[0]), string(s16(1, 2, 3, 4)))
	test.ExpectEquality(t, dev.Queued(), uint32(8))

	// flushing pads the buffer with silence
	test.ExpectSuccess(t, dev.Flush())
	test.DemandEquality(t, len(q.chunks), 2)
	test.ExpectEquality(t, string(q.chunks[1]), string(s16(5, 0, 0, 0)))

	// nothing to flush
	test.ExpectSuccess(t, dev.Flush())
	test.ExpectEquality(t, len(q.chunks), 2)

	test.ExpectSuccess(t, dev.Pause(true))
	test.ExpectSuccess(t, q.paused)

	test.ExpectSuccess(t, dev.Close())
	test.ExpectSuccess(t, q.closed)

	_, err = dev.Write(s16(1))
	test.ExpectSuccess(t, sdlerr.Is(err, NotOpened))
	test.ExpectSuccess(t, sdlerr.IsLogic(err))
	test.ExpectFailure(t, dev.Close())
}

func TestDeviceGap(t *testing.T) {
	q := &fakeQueue{}
	dev := newDevice(q, Spec{Freq: 1000, Format: S16LSB, Channels: 1, Samples: 4})

	// the device has played everything so the buffer is repeated and faded
	_, err := dev.Write(s16(1000, 1000, 1000, 1000))
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(q.chunks), 2)
	test.ExpectEquality(t, string(q.chunks[1]), string(s16(1000, 750, 500, 250)))

	// the gap is only filled once until the next buffer is queued
	_, err = dev.Write(s16(1))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(q.chunks), 2)

	dev.Clear()
	test.ExpectEquality(t, len(q.chunks), 0)
}

func TestDeviceSilence(t *testing.T) {
	q := &fakeQueue{holding: true}
	dev := newDevice(q, Spec{Freq: 1000, Format: U8, Channels: 2, Samples: 2, Silence: U8.Silence()})

	_, err := dev.Write([]byte{1})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, dev.Flush())
	test.DemandEquality(t, len(q.chunks), 1)
	test.ExpectEquality(t, string(q.chunks[0]), string([]byte{1, 0x80, 0x80, 0x80}))
}

func TestLegacyNotOpened(t *testing.T) {
	err := QueueAudio([]byte{0})
	test.ExpectSuccess(t, sdlerr.Is(err, NotOpened))
	test.ExpectEquality(t, QueuedAudioSize(), uint32(0))
}
