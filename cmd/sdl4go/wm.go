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

	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/jetsetilly/sdl4go/wm"
	"github.com/veandco/go-sdl2/sdl"
)

const iconSize = 32

// makeIcon draws a filled circle. the mask makes everything outside the
// circle transparent
func makeIcon() (*video.Surface, []byte, error) {
	icon, err := video.NewSurface(iconSize, iconSize, 32, video.SWSurface)
	if err != nil {
		return nil, nil, err
	}

	mask := make([]byte, iconSize/8*iconSize)
	fill := icon.MapRGB(64, 128, 255)

	const r = iconSize / 2
	for y := int32(0); y < iconSize; y++ {
		for x := int32(0); x < iconSize; x++ {
			dx := x - r
			dy := y - r
			if dx*dx+dy*dy > r*r {
				continue // for loop
			}
			if err := icon.SetPixel(x, y, fill); err != nil {
				icon.Free()
				return nil, nil, err
			}
			mask[int(y)*iconSize/8+int(x)/8] |= 0x80 >> (x % 8)
		}
	}

	return icon, mask, nil
}

func wmMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	title := md.AddString("title", "sdl4go wm", "window title")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	q := event.NewQueue()
	quit, err := start(cfg, system.Video, q)
	if err != nil {
		return err
	}
	defer quit()

	// the icon is set before the window exists and is applied when the window
	// is created
	icon, mask, err := makeIcon()
	if err != nil {
		return err
	}
	defer icon.Free()
	if err := wm.SetIcon(icon, mask); err != nil {
		return err
	}

	wm.SetCaption(*title, "wm")

	if _, err := video.SetVideoMode(320, 200, 0, video.SWSurface); err != nil {
		return err
	}
	defer video.CloseScreen()

	info, err := wm.GetInfo()
	if err != nil {
		return err
	}
	fmt.Printf("window system: %s %d.%d.%d\n", info.Subsystem, info.Major, info.Minor, info.Patch)
	fmt.Println("i iconify, g grab input, f fullscreen, t change title, escape quit")

	return run(q, &wmHandler{}, 0, nil)
}

type wmHandler struct {
	quitter
	titles int
}

func (h *wmHandler) KeyPressed(key event.Keysym) bool {
	if h.quitter.KeyPressed(key) {
		return true
	}

	switch key.Sym {
	case sdl.K_i:
		wm.IconifyWindow()
	case sdl.K_g:
		mode := wm.GrabOn
		if wm.GrabInput(wm.GrabQuery) == wm.GrabOn {
			mode = wm.GrabOff
		}
		fmt.Printf("grab: %s\n", wm.GrabInput(mode))
	case sdl.K_f:
		if err := wm.ToggleFullScreen(); err != nil {
			logger.Log(logger.Allow, "sdl4go", err)
		}
	case sdl.K_t:
		h.titles++
		_, icon := wm.Caption()
		wm.SetCaption(fmt.Sprintf("sdl4go wm (%d)", h.titles), icon)
	default:
		return false
	}

	return true
}

func (h *wmHandler) Active(gain bool, state event.AppState) bool {
	fmt.Printf("active: gain=%v state=%#02x\n", gain, uint8(state))
	return true
}
