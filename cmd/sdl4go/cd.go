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
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/sdl4go/cdrom"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/mt"
	"github.com/jetsetilly/sdl4go/system"
)

const cdHelp = "p play disc, n next track, b previous track, space pause/resume, s stop, e eject, q quit"

func cdMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	drive := md.AddInt("drive", 0, "drive to open")
	play := md.AddBool("play", false, "play the disc immediately")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	quit, err := start(cfg, system.CDROM, nil)
	if err != nil {
		return err
	}
	defer quit()

	n, err := cdrom.NumDrives()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no cd-rom drives found")
	}

	cd, err := cdrom.Open(*drive)
	if err != nil {
		return err
	}
	defer cd.Close()

	name, err := cd.Name()
	if err != nil {
		return err
	}
	fmt.Printf("drive %d: %s\n", *drive, name)

	status, err := cd.Status()
	if err != nil {
		return err
	}
	if status.InDrive() {
		tracks, err := cd.Tracks()
		if err != nil {
			return err
		}
		for _, t := range tracks {
			fmt.Println(t)
		}
	} else {
		fmt.Println(status)
	}

	if *play {
		if err := cd.PlayTracks(0, 0, 0, 0); err != nil {
			return err
		}
	}

	kr, err := newKeyReader(os.Stdin)
	if err != nil {
		return err
	}
	defer kr.restore()

	keys := make(chan byte)
	reader := mt.CreateThread(func(ctx context.Context) int {
		b := make([]byte, 1)
		for {
			if _, err := kr.Read(b); err != nil {
				if err != io.EOF {
					logger.Log(logger.Allow, "sdl4go", err)
				}
				close(keys)
				return 1
			}
			select {
			case keys <- b[0]:
			case <-ctx.Done():
				return 0
			}
		}
	})
	defer reader.Kill()

	fmt.Println(cdHelp)

	tick := time.NewTicker(500 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case k, ok := <-keys:
			if !ok || k == 'q' {
				fmt.Print("\r\n")
				return nil
			}
			if err := cdCommand(cd, k); err != nil {
				fmt.Printf("\r\n%v\r\n", err)
			}
		case <-tick.C:
		}

		if err := cdPosition(cd); err != nil {
			return err
		}
	}
}

func cdCommand(cd *cdrom.CD, k byte) error {
	switch k {
	case 'p':
		return cd.PlayTracks(0, 0, 0, 0)
	case 'n', 'b':
		cur, err := cd.CurrentTrack()
		if err != nil {
			return err
		}
		if k == 'n' {
			cur++
		} else if cur > 0 {
			cur--
		}
		return cd.PlayTracks(cur, 0, 0, 0)
	case ' ':
		status, err := cd.Status()
		if err != nil {
			return err
		}
		if status == cdrom.Paused {
			return cd.Resume()
		}
		return cd.Pause()
	case 's':
		return cd.Stop()
	case 'e':
		return cd.Eject()
	case 'h', '?':
		fmt.Printf("\r\n%s\r\n", cdHelp)
	}
	return nil
}

func cdPosition(cd *cdrom.CD) error {
	status, err := cd.Status()
	if err != nil {
		return err
	}

	if status != cdrom.Playing && status != cdrom.Paused {
		fmt.Printf("\r%-40s", status)
		return nil
	}

	track, err := cd.CurrentTrack()
	if err != nil {
		return err
	}
	frame, err := cd.CurrentFrame()
	if err != nil {
		return err
	}
	m, s, f := cdrom.FramesToMSF(frame)
	fmt.Printf("\r%-8s track %2d %2d:%02d.%02d%-12s", status, track+1, m, s, f, "")

	return nil
}
