// This file is part of Gopher8001.
//
// Gopher8001 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8001 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8001.  If not, see <https://www.gnu.org/licenses/>.

package disk_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/disk"
	"github.com/jetsetilly/gopher8001/logger"
	"github.com/jetsetilly/gopher8001/test"
)

func blank(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blank.d88")
	test.DemandSuccess(t, disk.CreateBlank(path, "BLANK"))
	return path
}

func TestImage(t *testing.T) {
	path := blank(t)

	img, err := disk.OpenImage(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Protected(), false)

	data, err := img.ReadSector(0, 0, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), disk.SectorSize)
	test.ExpectEquality(t, data[0], uint8(0xff))

	_, err = img.ReadSector(0, 0, 17)
	test.ExpectSuccess(t, curated.Is(err, disk.SectorNotFound))

	sector := make([]uint8, disk.SectorSize)
	sector[0] = 0x12
	sector[255] = 0x34
	test.DemandSuccess(t, img.WriteSector(39, 1, 16, sector))
	test.ExpectEquality(t, img.Modified(), true)
	test.DemandSuccess(t, img.Save())

	img, err = disk.OpenImage(path)
	test.DemandSuccess(t, err)
	data, err = img.ReadSector(39, 1, 16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data[0], uint8(0x12))
	test.ExpectEquality(t, data[255], uint8(0x34))

	img.SetProtect(true)
	test.ExpectSuccess(t, curated.Is(img.WriteSector(0, 0, 1, sector), disk.WriteProtected))
}

func TestBadImage(t *testing.T) {
	_, err := disk.OpenImage(filepath.Join(t.TempDir(), "missing.d88"))
	test.ExpectSuccess(t, curated.Is(err, disk.ImageError))
}

func TestCorruptImage(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(blank(t))
	test.DemandSuccess(t, err)

	corrupt := func(name string, d []uint8, pattern string) {
		t.Helper()
		path := filepath.Join(dir, name)
		test.DemandSuccess(t, os.WriteFile(path, d, 0o644))
		_, err := disk.OpenImage(path)
		test.ExpectSuccess(t, curated.Is(err, disk.UnsupportedImage), name)
		test.ExpectSuccess(t, curated.Has(err, pattern), name)
	}

	corrupt("short.d88", data[:0x100], disk.HeaderTooShort)
	corrupt("truncated.d88", data[:len(data)/2], disk.SizeMismatch)

	d := append([]uint8{}, data...)
	binary.LittleEndian.PutUint32(d[0x20:], 0x10)
	corrupt("track.d88", d, disk.TrackOutOfRange)

	// the sector count of the first sector claims more sectors than the
	// disk holds
	d = append([]uint8{}, data...)
	last := int(binary.LittleEndian.Uint32(d[0x20+79*4:]))
	binary.LittleEndian.PutUint16(d[last+0x04:], 0x100)
	corrupt("sectors.d88", d, disk.SectorOutOfRange)
}

func TestDrives(t *testing.T) {
	u := disk.NewUnit(logger.Allow)
	test.ExpectFailure(t, u.OpenDrive(4, blank(t)))
	test.ExpectFailure(t, u.OpenDrive(0, "missing.d88"))
	test.ExpectEquality(t, u.Drive(0) == nil, true)

	test.DemandSuccess(t, u.OpenDrive(1, blank(t)))
	test.ExpectEquality(t, u.Drive(1) != nil, true)
	test.DemandSuccess(t, u.Eject())
	test.ExpectEquality(t, u.Drive(1) == nil, true)
}

// bit set/reset values for the control port
const (
	setDAV   = 0x09
	clearDAV = 0x08
	setRFD   = 0x0b
	clearRFD = 0x0a
	setDAC   = 0x0d
	clearDAC = 0x0c
	setATN   = 0x0f
	clearATN = 0x0e
)

func send(t *testing.T, u *disk.Unit, data ...uint8) {
	t.Helper()
	for _, v := range data {
		test.DemandEquality(t, u.Read(disk.PortC)&0x02, uint8(0x02))
		u.Write(disk.PortB, v)
		u.Write(disk.PortControl, setDAV)
		test.DemandEquality(t, u.Read(disk.PortC)&0x04, uint8(0x04))
		u.Write(disk.PortControl, clearDAV)
		test.DemandEquality(t, u.Read(disk.PortC)&0x04, uint8(0x00))
	}
}

func receive(t *testing.T, u *disk.Unit, n int) []uint8 {
	t.Helper()
	var data []uint8
	for i := 0; i < n; i++ {
		u.Write(disk.PortControl, setRFD)
		test.DemandEquality(t, u.Read(disk.PortC)&0x01, uint8(0x01))
		data = append(data, u.Read(disk.PortA))
		u.Write(disk.PortControl, setDAC)
		u.Write(disk.PortControl, clearRFD)
		u.Write(disk.PortControl, clearDAC)
	}
	return data
}

func TestProtocol(t *testing.T) {
	u := disk.NewUnit(logger.Allow)
	test.DemandSuccess(t, u.OpenDrive(0, blank(t)))

	u.Write(disk.PortControl, setATN)
	u.Write(disk.PortControl, clearATN)

	send(t, u, disk.CmdSendStatus)
	test.ExpectEquality(t, receive(t, u, 1)[0], uint8(0x01))

	// write two sectors crossing onto the next track
	data := make([]uint8, disk.SectorSize*2)
	for i := range data {
		data[i] = uint8(i)
	}
	send(t, u, disk.CmdWrite, 2, 0, 3, 16)
	send(t, u, data...)
	send(t, u, disk.CmdSendResult)
	test.ExpectEquality(t, receive(t, u, 1)[0], uint8(disk.ResultOK))

	s, err := u.Drive(0).ReadSector(1, 1, 16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s[1], uint8(1))
	s, err = u.Drive(0).ReadSector(2, 0, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s[1], uint8(1))
	test.ExpectEquality(t, s[0], uint8(0))

	// read them back
	send(t, u, disk.CmdRead, 2, 0, 3, 16)
	send(t, u, disk.CmdSendResult)
	test.ExpectEquality(t, receive(t, u, 1)[0], uint8(disk.ResultOK))
	send(t, u, disk.CmdSendData)
	back := receive(t, u, len(data))
	for i := range data {
		test.ExpectEquality(t, back[i], data[i], i)
	}

	// no disk in drive 2
	send(t, u, disk.CmdRead, 1, 2, 0, 1)
	send(t, u, disk.CmdSendResult)
	test.ExpectEquality(t, receive(t, u, 1)[0], uint8(disk.ResultNoDisk))

	// protected disk
	u.Drive(0).SetProtect(true)
	send(t, u, disk.CmdSendStatus)
	test.ExpectEquality(t, receive(t, u, 1)[0], uint8(0x11))
	send(t, u, disk.CmdWrite, 1, 0, 0, 1)
	send(t, u, data[:disk.SectorSize]...)
	send(t, u, disk.CmdSendResult)
	test.ExpectEquality(t, receive(t, u, 1)[0], uint8(disk.ResultProtected))
}
