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
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/sdl4go/cdrom"
	"github.com/jetsetilly/sdl4go/joystick"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/version"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/veandco/go-sdl2/sdl"
)

func info(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	quit, err := start(cfg, system.Video|system.Audio|system.Joystick|system.CDROM, nil)
	if err != nil {
		return err
	}
	defer quit()

	return writeInfo(os.Stdout)
}

func writeInfo(w io.Writer) error {
	fmt.Fprintln(w, version.Version())
	fmt.Fprintf(w, "SDL compiled %s linked %s\n", system.CompiledVersion(), system.LinkedVersion())
	fmt.Fprintf(w, "subsystems: %s\n", system.WasInit(system.Everything))

	driver, err := video.VideoDriverName()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "video driver: %s\n", driver)

	vi, err := video.GetVideoInfo()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "desktop: %dx%d %dbpp\n", vi.CurrentW, vi.CurrentH, vi.Depth)

	modes, anySize, err := video.ListModes(nil, video.Fullscreen)
	if err != nil {
		return err
	}
	if anySize {
		fmt.Fprintln(w, "fullscreen modes: any size")
	} else {
		fmt.Fprintf(w, "fullscreen modes: %d\n", len(modes))
		for _, m := range modes {
			fmt.Fprintf(w, "  %dx%d\n", m.W, m.H)
		}
	}

	fmt.Fprintf(w, "audio driver: %s\n", sdl.GetCurrentAudioDriver())

	fmt.Fprintf(w, "joysticks: %d\n", joystick.NumJoysticks())
	for i := 0; i < joystick.NumJoysticks(); i++ {
		fmt.Fprintf(w, "  %d: %s\n", i, joystick.Name(i))
	}

	n, err := cdrom.NumDrives()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "cd-rom drives: %d\n", n)
	for i := 0; i < n; i++ {
		name, err := cdrom.DriveName(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %d: %s\n", i, name)
	}

	return nil
}
