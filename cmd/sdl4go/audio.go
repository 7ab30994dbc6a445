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


package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/sdl4go/audio"
	"github.com/jetsetilly/sdl4go/digest"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/mixer"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/timer"
	"github.com/jetsetilly/sdl4go/wavwriter"
)

func audioMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	freq := md.AddInt("freq", 44100, "sample rate of the device")
	tone := md.AddFloat64("tone", 440, "frequency of the tone played when no file is given")
	seconds := md.AddFloat64("seconds", 2, "length of the tone")
	volume := md.AddInt("volume", audio.MaxVolume, "volume (0 to 128)")
	record := md.AddString("record", "", "also write the audio to a WAV file")
	useMixer := md.AddBool("mixer", false, "play the file with SDL_mixer")
	fingerprint := md.AddBool("digest", false, "print the digest of the audio sent to the device")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md.Mode())
	}

	quit, err := start(cfg, system.Audio|system.Timer, nil)
	if err != nil {
		return err
	}
	defer quit()

	if *useMixer {
		if filename == "" {
			return fmt.Errorf("the mixer needs a file to play")
		}
		return playMixer(filename, int32(*freq), *volume)
	}

	var snd *audio.Sound
	if filename == "" {
		snd = makeTone(int32(*freq), *tone, *seconds)
	} else {
		snd, err = loadSound(filename)
		if err != nil {
			return err
		}
		defer snd.Free()
	}

	return playDevice(snd, int32(*freq), *volume, *record, *fingerprint)
}

// makeTone returns a sine wave in S16LSB stereo
func makeTone(freq int32, hz float64, seconds float64) *audio.Sound {
	frames := int(float64(freq) * seconds)
	data := make([]byte, frames*4)

	for i := 0; i < frames; i++ {
		v := int16(math.Sin(2*math.Pi*hz*float64(i)/float64(freq)) * math.MaxInt16 * 0.5)
		binary.LittleEndian.PutUint16(data[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(data[i*4+2:], uint16(v))
	}

	return &audio.Sound{
		Spec: audio.Spec{Freq: freq, Format: audio.S16LSB, Channels: 2},
		Data: data,
	}
}

// loadSound decodes MP3 and WAV files with the Go decoders. SDL is used for
// WAV files that the Go decoder rejects
func loadSound(filename string) (*audio.Sound, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		return audio.DecodeMP3(f)
	}

	snd, err := audio.DecodeWAV(f)
	if err == nil {
		return snd, nil
	}
	logger.Log(logger.Allow, "sdl4go", err)

	return audio.LoadWAV(filename)
}

func playDevice(snd *audio.Sound, freq int32, volume int, record string, fingerprint bool) error {
	dev, err := audio.OpenDevice("", audio.Spec{Freq: freq, Format: audio.S16SYS, Channels: 2})
	if err != nil {
		return err
	}
	defer dev.Close()

	spec := dev.Spec()
	fmt.Printf("%s -> %s\n", snd.Spec, spec)

	cvt, err := audio.BuildAudioCVT(snd.Spec.Format, snd.Spec.Channels, snd.Spec.Freq,
		spec.Format, spec.Channels, spec.Freq)
	if err != nil {
		return err
	}

	data := snd.Data
	if cvt.Needed() {
		data, err = cvt.Convert(data)
		if err != nil {
			return err
		}
	}

	if volume < audio.MaxVolume {
		out := make([]byte, len(data))
		for i := range out {
			out[i] = spec.Silence
		}
		if err := audio.MixAudio(out, data, spec.Format, volume); err != nil {
			return err
		}
		data = out
	}

	if record != "" {
		if err := recordSound(record, spec, data); err != nil {
			return err
		}
	}

	if fingerprint {
		dig := digest.NewAudio()
		if _, err := dig.Write(data); err != nil {
			return err
		}
		dig.Flush()
		fmt.Printf("digest: %s\n", dig.Hash())
	}

	if err := dev.Pause(false); err != nil {
		return err
	}

	// keep a few chunks queued ahead of the device
	chunk := int(spec.Size)
	if chunk == 0 {
		chunk = audio.DefaultBufferLength
	}
	ahead := uint32(chunk * 4)

	for len(data) > 0 {
		if dev.Queued() > ahead {
			timer.Delay(10)
			continue // for loop
		}
		n := min(chunk, len(data))
		if _, err := dev.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}

	if err := dev.Flush(); err != nil {
		return err
	}
	for dev.Queued() > 0 {
		timer.Delay(10)
	}

	return nil
}

// recordSound writes the audio as 16 bit little endian samples
func recordSound(filename string, spec audio.Spec, data []byte) error {
	cvt, err := audio.BuildAudioCVT(spec.Format, spec.Channels, spec.Freq, audio.S16LSB, spec.Channels, spec.Freq)
	if err != nil {
		return err
	}
	if cvt.Needed() {
		data, err = cvt.Convert(data)
		if err != nil {
			return err
		}
	}

	ww, err := wavwriter.New(filename, audio.Spec{Freq: spec.Freq, Format: audio.S16LSB, Channels: spec.Channels})
	if err != nil {
		return err
	}
	if _, err := ww.Write(data); err != nil {
		return err
	}
	if err := ww.Close(); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "sdl4go", "recorded %d samples to %s", ww.Samples(), filename)

	return nil
}

func playMixer(filename string, freq int32, volume int) error {
	if err := mixer.OpenAudio(int(freq), mixer.DefaultFormat, mixer.DefaultChannels, mixer.DefaultChunkSize); err != nil {
		return err
	}
	defer mixer.CloseAudio()

	mus, err := mixer.LoadMusic(filename)
	if err != nil {
		return err
	}
	defer mus.Free()

	mixer.VolumeMusic(volume)
	if err := mus.Play(mixer.PlayOnce); err != nil {
		return err
	}
	fmt.Printf("playing %s\n", mus.Name())

	for mixer.PlayingMusic() {
		timer.Delay(100)
	}

	return nil
}
