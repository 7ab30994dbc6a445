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


// sdl4go is an interactive exercise of the library. Each mode opens the
// subsystems it needs and reports what happens.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/prefs"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/version"
)

// SDL video and event functions must be called from the thread that
// initialised the video subsystem
func init() {
	runtime.LockOSThread()
}

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:]))
}

type modeFunc func(md *modalflag.Modes, cfg *system.Config) error

var modes = []struct {
	name string
	run  modeFunc
}{
	{"INFO", info},
	{"VIDEO", videoMode},
	{"EVENTS", eventsMode},
	{"KEYBOARD", keyboardMode},
	{"JOYSTICK", joystickMode},
	{"CD", cdMode},
	{"WM", wmMode},
	{"GL", glMode},
	{"AUDIO", audioMode},
}

func launch(args []string) int {
	md := &modalflag.Modes{
		Output: os.Stdout,
		Usage:  "sdl4go [-prefs path] [-log] MODE [mode flags]",
	}
	md.NewArgs(args)

	prefsFile := md.AddString("prefs", "", "preferences file (default is in the resource directory)")
	override := md.AddString("override", "", "override preferences for this run (eg. \"video.driver::x11; audio.driver::pulse\")")
	echo := md.AddBool("log", false, "echo log to stdout")
	save := md.AddBool("save", false, "save preferences on exit")

	for _, m := range modes {
		md.AddSubModes(m.name)
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	if *echo {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	logger.Log(logger.Allow, "sdl4go", version.Version())

	if *override != "" {
		prefs.PushCommandLineStack(*override)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "sdl4go", "unused preferences: %s", unused)
			}
		}()
	}

	cfg, err := system.NewConfig(*prefsFile)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return exitModeError
	}
	logger.Logf(logger.Allow, "sdl4go", "preferences: %s", cfg)

	for _, m := range modes {
		if m.name == md.Mode() {
			err = m.run(md, cfg)
			break // for loop
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.Path(), err)
		return exitModeError
	}

	if *save {
		if err := cfg.Save(); err != nil {
			fmt.Printf("* error: %v\n", err)
			return exitModeError
		}
	}

	return exitOK
}

// start initialises the subsystems after applying the configuration. the
// returned function must be called to shut everything down. the queue can be
// nil.
func start(cfg *system.Config, flags system.Flags, q *event.Queue) (func(), error) {
	if err := cfg.Apply(q); err != nil {
		return nil, err
	}
	if err := system.Init(flags); err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "sdl4go", "initialised: %s", system.WasInit(system.Everything))
	return system.Quit, nil
}

// noMoreArgs returns an error if there are unexpected arguments after the
// mode flags.
func noMoreArgs(md *modalflag.Modes) error {
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", md.RemainingArgs())
	}
	return nil
}
