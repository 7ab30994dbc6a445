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

// Sentinal error patterns.
const (
	OpenError   = "audio: open: %v"
	QueueError  = "audio: queue: %v"
	FormatError = "audio: unsupported format: %v"
	LoadError   = "audio: load: %v"
	DecodeError = "audio: decode: %v"
	CVTError    = "audio: conversion: %v"
	NotOpened   = "audio: %s: device is not opened"
)

// Status is the playing state of an audio device.
type Status int

// List of valid Status values.
const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "stopped"
}

func fromSDLStatus(s sdl.AudioStatus) Status {
	switch s {
	case sdl.AUDIO_PLAYING:
		return Playing
	case sdl.AUDIO_PAUSED:
		return Paused
	}
	return Stopped
}

// the legacy audio device always has this ID
const legacyDevice sdl.AudioDeviceID = 1

var legacyOpen bool

// OpenAudio opens the legacy audio device with the desired format and returns
// the format that was obtained. The device starts paused.
func OpenAudio(desired Spec) (Spec, error) {
	want := desired.sdl()
	var obtained sdl.AudioSpec

	if err := sdl.OpenAudio(&want, &obtained); err != nil {
		return Spec{}, sdlerr.Errorf(OpenError, err)
	}
	legacyOpen = true

	spec := fromSDL(&obtained)
	logger.Logf(logger.Allow, "audio", "opened legacy device (%s)", spec)

	return spec, nil
}

// PauseAudio pauses or unpauses the legacy audio device.
func PauseAudio(pause bool) {
	sdl.PauseAudio(pause)
}

// GetStatus returns the state of the legacy audio device.
func GetStatus() Status {
	return fromSDLStatus(sdl.GetAudioStatus())
}

// LockAudio locks the legacy audio device.
func LockAudio() {
	sdl.LockAudio()
}

// UnlockAudio unlocks the legacy audio device.
func UnlockAudio() {
	sdl.UnlockAudio()
}

// CloseAudio closes the legacy audio device.
func CloseAudio() {
	if legacyOpen {
		sdl.CloseAudio()
		legacyOpen = false
		logger.Log(logger.Allow, "audio", "closed legacy device")
	}
}

// QueueAudio adds data to the end of the queue of the legacy audio device.
// The data must be in the format returned by OpenAudio().
func QueueAudio(data []byte) error {
	if !legacyOpen {
		return sdlerr.Logicf(NotOpened, "QueueAudio")
	}
	if err := sdl.QueueAudio(legacyDevice, data); err != nil {
		return sdlerr.Errorf(QueueError, err)
	}
	return nil
}

// QueuedAudioSize returns the number of bytes waiting in the queue of the
// legacy audio device.
func QueuedAudioSize() uint32 {
	if !legacyOpen {
		return 0
	}
	return sdl.GetQueuedAudioSize(legacyDevice)
}

// ClearQueuedAudio removes all data from the queue of the legacy audio
// device.
func ClearQueuedAudio() {
	if legacyOpen {
		sdl.ClearQueuedAudio(legacyDevice)
	}
}
