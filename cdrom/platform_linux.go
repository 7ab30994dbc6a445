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

//go:build linux

package cdrom

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"golang.org/x/sys/unix"
)

// ioctl requests from linux/cdrom.h
const (
	cdromPause         = 0x5301
	cdromResume        = 0x5302
	cdromPlayMSF       = 0x5303
	cdromReadTOCHeader = 0x5305
	cdromReadTOCEntry  = 0x5306
	cdromStop          = 0x5307
	cdromEject         = 0x5309
	cdromSubChannel    = 0x530b
	cdromGetCapability = 0x5331
)

const (
	cdromMSF     = 0x02
	cdromLeadout = 0xaa
	cdromDataBit = 0x04
)

// audio status values returned by the sub-channel request
const (
	audioInvalid   = 0x00
	audioPlay      = 0x11
	audioPaused    = 0x12
	audioCompleted = 0x13
	audioError     = 0x14
	audioNoStatus  = 0x15
)

type tocHeader struct {
	first uint8
	last  uint8
}

type tocEntry struct {
	track    uint8
	adrCtrl  uint8
	format   uint8
	_        uint8
	addr     [4]uint8
	dataMode uint8
	_        [3]uint8
}

type msfRange struct {
	min0   uint8
	sec0   uint8
	frame0 uint8
	min1   uint8
	sec1   uint8
	frame1 uint8
}

type subChannel struct {
	format      uint8
	audioStatus uint8
	adrCtrl     uint8
	track       uint8
	index       uint8
	_           [3]uint8
	absAddr     [4]uint8
	relAddr     [4]uint8
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// the device nodes checked for CD-ROM drives
func defaultPaths() []string {
	p := []string{"/dev/cdrom"}
	for i := 0; i < 8; i++ {
		p = append(p, fmt.Sprintf("/dev/sr%d", i))
	}
	for i := 0; i < 8; i++ {
		p = append(p, fmt.Sprintf("/dev/scd%d", i))
	}
	for c := 'a'; c <= 'h'; c++ {
		p = append(p, fmt.Sprintf("/dev/hd%c", c))
	}
	return p
}

type linuxPlatform struct{}

func newPlatform() platform {
	return linuxPlatform{}
}

func (linuxPlatform) detect(extra []string) []string {
	var drives []string

	// the same device can be reached through more than one path
	seen := make(map[uint64]bool)

	for _, p := range append(extra, defaultPaths()...) {
		var st unix.Stat_t
		if err := unix.Stat(p, &st); err != nil {
			continue
		}

		mode := uint32(st.Mode) & unix.S_IFMT
		if mode != unix.S_IFCHR && mode != unix.S_IFBLK {
			continue
		}

		rdev := uint64(st.Rdev)
		if seen[rdev] {
			continue
		}

		if isDrive(p) {
			seen[rdev] = true
			drives = append(drives, p)
		}
	}

	return drives
}

func isDrive(path string) bool {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return false
	}
	defer unix.Close(fd)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), cdromGetCapability, 0)
	return errno == 0
}

func (linuxPlatform) open(path string) (drive, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, sdlerr.Errorf(OpenError, path, err)
	}
	return &linuxDrive{fd: fd}, nil
}

type linuxDrive struct {
	fd int
}

func msfFrames(addr [4]uint8) int32 {
	return MSFToFrames(int32(addr[0]), int32(addr[1]), int32(addr[2]))
}

func (d *linuxDrive) status() (Status, int32, error) {
	sc := subChannel{format: cdromMSF}
	if err := ioctl(d.fd, cdromSubChannel, unsafe.Pointer(&sc)); err != nil {
		if errors.Is(err, unix.ENOMEDIUM) {
			return TrayEmpty, 0, nil
		}
		return Error, 0, err
	}

	var status Status

	switch sc.audioStatus {
	case audioInvalid, audioNoStatus:
		// the drive is stopped if a disc can be read
		var hdr tocHeader
		if ioctl(d.fd, cdromReadTOCHeader, unsafe.Pointer(&hdr)) == nil {
			status = Stopped
		} else {
			status = TrayEmpty
		}
	case audioCompleted:
		status = Stopped
	case audioPlay:
		status = Playing
	case audioPaused:
		// some drives report a pause after the disc has been changed
		if sc.track == 0 && msfFrames(sc.absAddr) == 0 {
			status = Stopped
		} else {
			status = Paused
		}
	case audioError:
		status = Error
	default:
		status = Error
	}

	var pos int32
	if status == Playing || status == Paused {
		pos = msfFrames(sc.absAddr)
	}

	return status, pos, nil
}

func (d *linuxDrive) toc() ([]Track, error) {
	var hdr tocHeader
	if err := ioctl(d.fd, cdromReadTOCHeader, unsafe.Pointer(&hdr)); err != nil {
		return nil, err
	}

	var tracks []Track

	n := int(hdr.last) - int(hdr.first) + 1
	for i := 0; i <= n; i++ {
		e := tocEntry{format: cdromMSF}
		if i == n {
			e.track = cdromLeadout
		} else {
			e.track = hdr.first + uint8(i)
		}

		if err := ioctl(d.fd, cdromReadTOCEntry, unsafe.Pointer(&e)); err != nil {
			return nil, err
		}

		t := Track{
			ID:     int(e.track),
			Type:   AudioTrack,
			Offset: msfFrames(e.addr),
		}
		if (e.adrCtrl>>4)&cdromDataBit == cdromDataBit {
			t.Type = DataTrack
		}
		if i > 0 {
			tracks[i-1].Length = t.Offset - tracks[i-1].Offset
		}
		tracks = append(tracks, t)
	}

	return tracks, nil
}

func (d *linuxDrive) play(start int32, length int32) error {
	var r msfRange

	m, s, f := FramesToMSF(start)
	r.min0, r.sec0, r.frame0 = uint8(m), uint8(s), uint8(f)
	m, s, f = FramesToMSF(start + length)
	r.min1, r.sec1, r.frame1 = uint8(m), uint8(s), uint8(f)

	return ioctl(d.fd, cdromPlayMSF, unsafe.Pointer(&r))
}

func (d *linuxDrive) pause() error {
	return ioctl(d.fd, cdromPause, nil)
}

func (d *linuxDrive) resume() error {
	return ioctl(d.fd, cdromResume, nil)
}

func (d *linuxDrive) stop() error {
	return ioctl(d.fd, cdromStop, nil)
}

func (d *linuxDrive) eject() error {
	return ioctl(d.fd, cdromEject, nil)
}

func (d *linuxDrive) close() error {
	return unix.Close(d.fd)
}
