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

package cdrom

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
)

// Error patterns.
const (
	NotInitialised = "cdrom: subsystem not initialised"
	InvalidDrive   = "cdrom: invalid drive index (%d)"
	OpenError      = "cdrom: %s: %v"
	NotOpened      = "cdrom: %s: drive is not opened"
	DriveError     = "cdrom: %s: %v"
	NoDisc         = "cdrom: tray empty"
	InvalidPlay    = "cdrom: invalid play parameters (start %d, length %d)"
	InvalidTrack   = "cdrom: invalid starting track (%d)"
	InvalidLength  = "cdrom: invalid play length"
	InvalidFrame   = "cdrom: invalid %s frame for track %d"
	NoAudio        = "cdrom: no audio tracks"
)

// Status of a CD-ROM drive.
type Status int

// List of valid Status values.
const (
	Error Status = iota - 1
	TrayEmpty
	Stopped
	Playing
	Paused
)

// InDrive returns true if the status shows that there is a disc in the drive.
func (s Status) InDrive() bool {
	return s > TrayEmpty
}

func (s Status) String() string {
	switch s {
	case TrayEmpty:
		return "tray empty"
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "error"
}

// TrackType distinguishes audio tracks from data tracks.
type TrackType int

// List of valid TrackType values.
const (
	AudioTrack TrackType = 0x00
	DataTrack  TrackType = 0x04
)

func (t TrackType) String() string {
	if t == DataTrack {
		return "data"
	}
	return "audio"
}

// Track is an entry in the table of contents of a disc. Length and Offset
// are measured in frames.
type Track struct {
	ID     int
	Type   TrackType
	Length int32
	Offset int32
}

func (t Track) String() string {
	m, s, f := FramesToMSF(t.Length)
	return fmt.Sprintf("track %d: %s %d:%02d.%02d", t.ID, t.Type, m, s, f)
}

var (
	initialised bool
	drives      []string
	extraPaths  []string
)

// AddDevicePaths adds paths to the list of device nodes checked by Init().
func AddDevicePaths(paths ...string) {
	extraPaths = append(extraPaths, paths...)
}

// Init finds the CD-ROM drives attached to the system.
func Init() error {
	if initialised {
		return nil
	}

	paths := append([]string{}, extraPaths...)
	if env := os.Getenv("SDL_CDROM"); env != "" {
		paths = append(paths, filepath.SplitList(env)...)
	}

	drives = plat.detect(paths)
	initialised = true

	logger.Logf(logger.Allow, "cdrom", "found %d drives", len(drives))
	for i, d := range drives {
		logger.Logf(logger.Allow, "cdrom", "drive %d: %s", i, d)
	}

	return nil
}

// Quit forgets the drives found by Init(). Opened drives are not closed.
func Quit() {
	if initialised {
		drives = nil
		initialised = false
		logger.Log(logger.Allow, "cdrom", "quit")
	}
}

// Initialised returns true if Init() has been called successfully.
func Initialised() bool {
	return initialised
}

// NumDrives returns the number of CD-ROM drives.
func NumDrives() (int, error) {
	if !initialised {
		return 0, sdlerr.Logicf(NotInitialised)
	}
	return len(drives), nil
}

// DriveName returns the system dependent name of the drive. On Linux this is
// the path to the device node.
func DriveName(drive int) (string, error) {
	if !initialised {
		return "", sdlerr.Logicf(NotInitialised)
	}
	if drive < 0 || drive >= len(drives) {
		return "", sdlerr.Errorf(InvalidDrive, drive)
	}
	return drives[drive], nil
}
