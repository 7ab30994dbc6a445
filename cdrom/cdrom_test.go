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
	"errors"
	"testing"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
)

type fakeDrive struct {
	st     Status
	pos    int32
	tracks []Track

	plays   [][2]int32
	paused  int
	resumed int
	stopped int
	ejected int
	closed  bool
}

func (d *fakeDrive) status() (Status, int32, error) {
	return d.st, d.pos, nil
}

func (d *fakeDrive) toc() ([]Track, error) {
	if !d.st.InDrive() {
		return nil, errors.New("no disc")
	}
	return d.tracks, nil
}

func (d *fakeDrive) play(start int32, length int32) error {
	d.plays = append(d.plays, [2]int32{start, length})
	d.st = Playing
	return nil
}

func (d *fakeDrive) pause() error {
	d.paused++
	return nil
}

func (d *fakeDrive) resume() error {
	d.resumed++
	return nil
}

func (d *fakeDrive) stop() error {
	d.stopped++
	return nil
}

func (d *fakeDrive) eject() error {
	d.ejected++
	return nil
}

func (d *fakeDrive) close() error {
	d.closed = true
	return nil
}

type fakePlatform struct {
	names []string
	extra []string
	drive *fakeDrive
}

func (p *fakePlatform) detect(extra []string) []string {
	p.extra = extra
	return p.names
}

func (p *fakePlatform) open(path string) (drive, error) {
	return p.drive, nil
}

func newFakeDisc() *fakeDrive {
	return &fakeDrive{
		st: Stopped,
		tracks: []Track{
			{ID: 1, Type: AudioTrack, Offset: 150, Length: 1000},
			{ID: 2, Type: AudioTrack, Offset: 1150, Length: 2000},
			{ID: 3, Type: DataTrack, Offset: 3150, Length: 5000},
			{ID: 0xaa, Type: AudioTrack, Offset: 8150},
		},
	}
}

// replaces the platform and initialises the package
func setup(t *testing.T, d *fakeDrive) *fakePlatform {
	t.Helper()

	p := &fakePlatform{names: []string{"/dev/fake0"}, drive: d}
	orig := plat
	plat = p
	Quit()

	t.Cleanup(func() {
		Quit()
		plat = orig
	})

	test.DemandSuccess(t, Init())
	return p
}

func TestMSF(t *testing.T) {
	m, s, f := FramesToMSF(FPS*61 + 5)
	test.ExpectEquality(t, m, 1)
	test.ExpectEquality(t, s, 1)
	test.ExpectEquality(t, f, 5)
	test.ExpectEquality(t, MSFToFrames(m, s, f), FPS*61+5)
	test.ExpectEquality(t, MSFToFrames(0, 2, 0), 150)
}

func TestNotInitialised(t *testing.T) {
	Quit()
	_, err := NumDrives()
	test.ExpectSuccess(t, sdlerr.Is(err, NotInitialised))
	_, err = Open(0)
	test.ExpectSuccess(t, sdlerr.IsLogic(err))
}

func TestDrives(t *testing.T) {
	t.Setenv("SDL_CDROM", "/dev/extra0")
	p := setup(t, newFakeDisc())

	test.ExpectSuccess(t, Initialised())
	test.ExpectEquality(t, len(p.extra), 1)
	test.ExpectEquality(t, p.extra[0], "/dev/extra0")

	n, err := NumDrives()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)

	name, err := DriveName(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "/dev/fake0")

	_, err = DriveName(1)
	test.ExpectSuccess(t, sdlerr.Is(err, InvalidDrive))
	_, err = Open(-1)
	test.ExpectFailure(t, err)
}

func TestStatusAndPosition(t *testing.T) {
	d := newFakeDisc()
	setup(t, d)

	cd, err := Open(0)
	test.DemandSuccess(t, err)

	tracks, err := cd.Tracks()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(tracks), 3)

	d.st = Playing
	d.pos = 1200
	st, err := cd.Status()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, Playing)
	track, _ := cd.CurrentTrack()
	frame, _ := cd.CurrentFrame()
	test.ExpectEquality(t, track, 1)
	test.ExpectEquality(t, frame, 50)

	d.st = TrayEmpty
	st, err = cd.Status()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, TrayEmpty)
	tracks, _ = cd.Tracks()
	test.ExpectEquality(t, len(tracks), 0)
	test.ExpectSuccess(t, sdlerr.Is(cd.Play(0, 100), NoDisc))
}

func TestPlay(t *testing.T) {
	d := newFakeDisc()
	setup(t, d)

	cd, err := Open(0)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, sdlerr.Is(cd.Play(0, 0), InvalidPlay))
	test.ExpectSuccess(t, sdlerr.Is(cd.Play(-1, 10), InvalidPlay))
	test.ExpectSuccess(t, cd.Play(100, 50))
	test.DemandEquality(t, len(d.plays), 1)
	test.ExpectEquality(t, d.plays[0], [2]int32{100, 50})
}

func TestPlayTracks(t *testing.T) {
	d := newFakeDisc()
	setup(t, d)

	cd, err := Open(0)
	test.DemandSuccess(t, err)

	// the whole disc. the data track at the end is skipped
	test.ExpectSuccess(t, cd.PlayTracks(0, 0, 0, 0))
	test.DemandEquality(t, len(d.plays), 1)
	test.ExpectEquality(t, d.plays[0], [2]int32{150, 3000})

	// part of a single track
	test.ExpectSuccess(t, cd.PlayTracks(1, 10, 0, 100))
	test.DemandEquality(t, len(d.plays), 2)
	test.ExpectEquality(t, d.plays[1], [2]int32{1160, 100})

	// a whole track and part of the next
	test.ExpectSuccess(t, cd.PlayTracks(0, 0, 1, 75))
	test.DemandEquality(t, len(d.plays), 3)
	test.ExpectEquality(t, d.plays[2], [2]int32{150, 1075})

	test.ExpectSuccess(t, sdlerr.Is(cd.PlayTracks(2, 0, 1, 0), NoAudio))
	test.ExpectSuccess(t, sdlerr.Is(cd.PlayTracks(3, 0, 0, 0), InvalidTrack))
	test.ExpectSuccess(t, sdlerr.Is(cd.PlayTracks(-1, 0, 0, 0), InvalidTrack))
	test.ExpectSuccess(t, sdlerr.Is(cd.PlayTracks(0, 1000, 0, 0), InvalidFrame))
	test.ExpectSuccess(t, sdlerr.Is(cd.PlayTracks(0, 0, 5, 0), InvalidLength))
	test.ExpectSuccess(t, sdlerr.Is(cd.PlayTracks(1, 0, 0, 3000), InvalidFrame))
	test.ExpectEquality(t, len(d.plays), 3)
}

func TestTransport(t *testing.T) {
	d := newFakeDisc()
	setup(t, d)

	cd, err := Open(0)
	test.DemandSuccess(t, err)

	// nothing happens when the drive is stopped
	test.ExpectSuccess(t, cd.Pause())
	test.ExpectSuccess(t, cd.Resume())
	test.ExpectSuccess(t, cd.Stop())
	test.ExpectEquality(t, d.paused, 0)
	test.ExpectEquality(t, d.resumed, 0)
	test.ExpectEquality(t, d.stopped, 0)

	d.st = Playing
	test.ExpectSuccess(t, cd.Pause())
	test.ExpectSuccess(t, cd.Resume())
	test.ExpectEquality(t, d.paused, 1)
	test.ExpectEquality(t, d.resumed, 0)

	d.st = Paused
	test.ExpectSuccess(t, cd.Resume())
	test.ExpectSuccess(t, cd.Stop())
	test.ExpectEquality(t, d.resumed, 1)
	test.ExpectEquality(t, d.stopped, 1)

	test.ExpectSuccess(t, cd.Eject())
	test.ExpectEquality(t, d.ejected, 1)

	test.ExpectSuccess(t, cd.Close())
	test.ExpectSuccess(t, d.closed)
	test.ExpectFailure(t, cd.Opened())
	test.ExpectSuccess(t, cd.Close())

	_, err = cd.Name()
	test.ExpectSuccess(t, sdlerr.Is(err, NotOpened))
	test.ExpectSuccess(t, sdlerr.IsLogic(cd.Eject()))
}
