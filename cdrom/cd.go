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
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
)

// CD is an opened CD-ROM drive.
type CD struct {
	drv   drive
	index int
	name  string

	status   Status
	curTrack int
	curFrame int32

	// the table of contents includes the lead out as the final entry
	toc []Track
}

// Open the CD-ROM drive. Drives are numbered from zero.
func Open(drive int) (*CD, error) {
	name, err := DriveName(drive)
	if err != nil {
		return nil, err
	}

	drv, err := plat.open(name)
	if err != nil {
		return nil, err
	}

	cd := &CD{
		drv:   drv,
		index: drive,
		name:  name,
	}

	logger.Logf(logger.Allow, "cdrom", "opened %s", name)

	// the table of contents is read straight away
	_, _ = cd.Status()

	return cd, nil
}

// Opened returns true if the CD has been opened and not closed.
func (cd *CD) Opened() bool {
	return cd != nil && cd.drv != nil
}

// Index returns the drive number.
func (cd *CD) Index() int {
	return cd.index
}

// Name returns the name of the drive.
func (cd *CD) Name() (string, error) {
	if !cd.Opened() {
		return "", sdlerr.Logicf(NotOpened, "Name")
	}
	return cd.name, nil
}

// Status returns the current status of the drive. The table of contents and
// current position are updated.
func (cd *CD) Status() (Status, error) {
	if !cd.Opened() {
		return Error, sdlerr.Logicf(NotOpened, "Status")
	}

	status, pos, err := cd.drv.status()
	if err != nil {
		cd.status = Error
		return Error, sdlerr.Errorf(DriveError, cd.name, err)
	}
	cd.status = status

	if !status.InDrive() {
		cd.toc = nil
		cd.curTrack = 0
		cd.curFrame = 0
		return status, nil
	}

	toc, err := cd.drv.toc()
	if err != nil {
		cd.toc = nil
		cd.status = Error
		return Error, sdlerr.Errorf(DriveError, cd.name, err)
	}
	cd.toc = toc

	cd.curTrack = 0
	cd.curFrame = 0
	if status == Playing || status == Paused {
		for i := 0; i < cd.numTracks(); i++ {
			if pos < cd.toc[i+1].Offset {
				cd.curTrack = i
				cd.curFrame = pos - cd.toc[i].Offset
				break
			}
		}
	}

	return status, nil
}

// the number of tracks not including the lead out
func (cd *CD) numTracks() int {
	return max(0, len(cd.toc)-1)
}

// Tracks returns the tracks on the disc as of the most recent call to
// Status().
func (cd *CD) Tracks() ([]Track, error) {
	if !cd.Opened() {
		return nil, sdlerr.Logicf(NotOpened, "Tracks")
	}
	t := make([]Track, cd.numTracks())
	copy(t, cd.toc)
	return t, nil
}

// CurrentTrack returns the index of the track being played as of the most
// recent call to Status().
func (cd *CD) CurrentTrack() (int, error) {
	if !cd.Opened() {
		return 0, sdlerr.Logicf(NotOpened, "CurrentTrack")
	}
	return cd.curTrack, nil
}

// CurrentFrame returns the frame offset into the current track as of the
// most recent call to Status().
func (cd *CD) CurrentFrame() (int32, error) {
	if !cd.Opened() {
		return 0, sdlerr.Logicf(NotOpened, "CurrentFrame")
	}
	return cd.curFrame, nil
}

// Play length frames of the disc starting from the start frame.
func (cd *CD) Play(start int32, length int32) error {
	if !cd.Opened() {
		return sdlerr.Logicf(NotOpened, "Play")
	}

	status, err := cd.Status()
	if err != nil {
		return err
	}
	if !status.InDrive() {
		return sdlerr.Errorf(NoDisc)
	}
	if start < 0 || length <= 0 {
		return sdlerr.Errorf(InvalidPlay, start, length)
	}

	return cd.play(start, length)
}

func (cd *CD) play(start int32, length int32) error {
	if err := cd.drv.play(start, length); err != nil {
		return sdlerr.Errorf(DriveError, cd.name, err)
	}
	return nil
}

// PlayTracks plays from the start frame of the start track for ntracks tracks
// and nframes frames. If both ntracks and nframes are zero the disc is played
// from the start position to the end. Data tracks at the start or end of the
// range are skipped.
func (cd *CD) PlayTracks(startTrack int, startFrame int32, ntracks int, nframes int32) error {
	if !cd.Opened() {
		return sdlerr.Logicf(NotOpened, "PlayTracks")
	}

	status, err := cd.Status()
	if err != nil {
		return err
	}
	if !status.InDrive() {
		return sdlerr.Errorf(NoDisc)
	}

	start, length, err := cd.playRange(startTrack, startFrame, ntracks, nframes)
	if err != nil {
		return err
	}

	return cd.play(start, length)
}

// playRange converts a track based range to a frame based range
func (cd *CD) playRange(strack int, sframe int32, ntracks int, nframes int32) (int32, int32, error) {
	n := cd.numTracks()

	if strack < 0 || strack >= n {
		return 0, 0, sdlerr.Errorf(InvalidTrack, strack)
	}
	if ntracks < 0 || nframes < 0 || sframe < 0 {
		return 0, 0, sdlerr.Errorf(InvalidLength)
	}

	if ntracks == 0 && nframes == 0 {
		ntracks = n - strack
	}

	etrack := strack + ntracks
	var eframe int32
	if etrack == strack {
		eframe = sframe + nframes
	} else {
		eframe = nframes
	}
	if etrack > n {
		return 0, 0, sdlerr.Errorf(InvalidLength)
	}

	for strack < etrack && cd.toc[strack].Type == DataTrack {
		strack++
		sframe = 0
	}
	if cd.toc[strack].Type == DataTrack || (strack == etrack && ntracks > 0) {
		return 0, 0, sdlerr.Errorf(NoAudio)
	}
	if sframe >= cd.toc[strack].Length {
		return 0, 0, sdlerr.Errorf(InvalidFrame, "starting", strack)
	}

	for etrack > strack && cd.toc[etrack-1].Type == DataTrack {
		etrack--
		eframe = 0
	}
	if eframe > cd.toc[etrack].Length {
		return 0, 0, sdlerr.Errorf(InvalidFrame, "ending", etrack)
	}

	start := cd.toc[strack].Offset + sframe
	length := cd.toc[etrack].Offset + eframe - start
	if length <= 0 {
		return 0, 0, sdlerr.Errorf(InvalidLength)
	}

	return start, length, nil
}

// Pause the drive. Nothing happens if the drive is not playing.
func (cd *CD) Pause() error {
	if !cd.Opened() {
		return sdlerr.Logicf(NotOpened, "Pause")
	}
	status, err := cd.Status()
	if err != nil {
		return err
	}
	if status == Playing {
		if err := cd.drv.pause(); err != nil {
			return sdlerr.Errorf(DriveError, cd.name, err)
		}
	}
	return nil
}

// Resume the drive. Nothing happens if the drive is not paused.
func (cd *CD) Resume() error {
	if !cd.Opened() {
		return sdlerr.Logicf(NotOpened, "Resume")
	}
	status, err := cd.Status()
	if err != nil {
		return err
	}
	if status == Paused {
		if err := cd.drv.resume(); err != nil {
			return sdlerr.Errorf(DriveError, cd.name, err)
		}
	}
	return nil
}

// Stop the drive. Nothing happens if the drive is not playing or paused.
func (cd *CD) Stop() error {
	if !cd.Opened() {
		return sdlerr.Logicf(NotOpened, "Stop")
	}
	status, err := cd.Status()
	if err != nil {
		return err
	}
	if status == Playing || status == Paused {
		if err := cd.drv.stop(); err != nil {
			return sdlerr.Errorf(DriveError, cd.name, err)
		}
	}
	return nil
}

// Eject the disc.
func (cd *CD) Eject() error {
	if !cd.Opened() {
		return sdlerr.Logicf(NotOpened, "Eject")
	}
	if err := cd.drv.eject(); err != nil {
		return sdlerr.Errorf(DriveError, cd.name, err)
	}
	return nil
}

// Close the drive. It is safe to call more than once.
func (cd *CD) Close() error {
	if !cd.Opened() {
		return nil
	}
	err := cd.drv.close()
	cd.drv = nil
	cd.toc = nil
	logger.Logf(logger.Allow, "cdrom", "closed %s", cd.name)
	if err != nil {
		return sdlerr.Errorf(DriveError, cd.name, err)
	}
	return nil
}
