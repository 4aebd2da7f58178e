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

// Package disk emulates the PC-80S31 mini disk unit and the disk images it
// reads and writes.
//
// The unit is connected to the host through a pair of 8255 parallel
// interfaces at ports 0xfc to 0xff. Bytes are passed in both directions with
// a four wire handshake on port C. The unit's own processor is not emulated.
// Instead, the commands that the unit understands are carried out directly
// on the disk images as soon as the last byte of the command arrives.
//
// Disk images are in the D88 format.
package disk

import (
	"path/filepath"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/logger"
)

// NumDrives is the number of drives across two daisy-chained units.
const NumDrives = 4

// Sentinal error for drive operations.
const (
	DriveError = "disk: drive %d: %v"
)

// Commands understood by the unit.
const (
	CmdInitialise = 0x00
	CmdWrite      = 0x01
	CmdRead       = 0x02
	CmdSendData   = 0x03
	CmdFormat     = 0x05
	CmdSendResult = 0x06
	CmdSendStatus = 0x07
	cmdNone       = -1
)

// Result status returned by CmdSendResult.
const (
	ResultOK        = 0x00
	ResultError     = 0x01
	ResultProtected = 0x02
	ResultNoDisk    = 0x03
)

// Unit is the mini disk unit and the host interface to it.
type Unit struct {
	perm logger.Permission

	ppi    ppi
	drives [NumDrives]*Image

	// the command being received and its parameters
	command int
	params  []uint8
	need    int

	// data received for a write command
	receiving []uint8

	// data waiting to be sent to the host
	sending []uint8

	// sectors of the last read command
	buffer []uint8

	result uint8
}

// NewUnit is the preferred method of initialisation for the Unit type.
func NewUnit(perm logger.Permission) *Unit {
	u := &Unit{
		perm: perm,
	}
	u.Reset()
	return u
}

// Reset the interface and the unit. Disks are not ejected.
func (u *Unit) Reset() {
	u.ppi.reset()
	u.command = cmdNone
	u.params = u.params[:0]
	u.need = 0
	u.receiving = nil
	u.sending = nil
	u.buffer = nil
	u.result = ResultOK
	u.ppi.setUnitLine(lineUnitRFD, true)
}

// OpenDrive inserts the disk image at path into the drive. The drive is left
// unchanged if the image cannot be opened.
func (u *Unit) OpenDrive(drive int, path string) error {
	if drive < 0 || drive >= NumDrives {
		return curated.Errorf(DriveError, drive, "no such drive")
	}
	img, err := OpenImage(path)
	if err != nil {
		return curated.Errorf(DriveError, drive, err)
	}
	err = u.CloseDrive(drive)
	if err != nil {
		return err
	}
	u.drives[drive] = img
	logger.Logf(logger.Allow, "disk", "drive %d: %s", drive, filepath.Base(path))
	return nil
}

// CloseDrive saves and removes the disk in the drive.
func (u *Unit) CloseDrive(drive int) error {
	if drive < 0 || drive >= NumDrives {
		return curated.Errorf(DriveError, drive, "no such drive")
	}
	img := u.drives[drive]
	if img == nil {
		return nil
	}
	u.drives[drive] = nil
	err := img.Save()
	if err != nil {
		return curated.Errorf(DriveError, drive, err)
	}
	return nil
}

// Eject every disk. The first error is returned but every drive is closed.
func (u *Unit) Eject() error {
	var first error
	for i := range u.drives {
		err := u.CloseDrive(i)
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Drive returns the disk in the drive or nil if the drive is empty.
func (u *Unit) Drive(drive int) *Image {
	if drive < 0 || drive >= NumDrives {
		return nil
	}
	return u.drives[drive]
}

// Read implements the ports.Disk interface.
func (u *Unit) Read(port int) uint8 {
	switch port {
	case PortA:
		return u.ppi.a
	case PortB:
		return u.ppi.b
	case PortC:
		return u.ppi.c
	}
	return 0xff
}

// Write implements the ports.Disk interface.
func (u *Unit) Write(port int, data uint8) {
	switch port {
	case PortB:
		u.ppi.b = data
	case PortC:
		u.handshake(u.ppi.writeC(data))
	case PortControl:
		u.handshake(u.ppi.writeControl(data))
	}
}

// handshake responds to changes in the host's handshake lines.
func (u *Unit) handshake(changed uint8) {
	lines := u.ppi.lines()

	if changed&lineATN == lineATN && lines&lineATN == lineATN {
		// attention aborts whatever the unit is doing
		u.command = cmdNone
		u.params = u.params[:0]
		u.receiving = nil
		u.sending = nil
		u.ppi.setUnitLine(lineUnitDAV, false)
		u.ppi.setUnitLine(lineUnitDAC, false)
		u.ppi.setUnitLine(lineUnitRFD, true)
	}

	// host to unit
	if changed&lineDAV == lineDAV {
		if lines&lineDAV == lineDAV {
			if u.ppi.unitLine(lineUnitRFD) {
				u.ppi.setUnitLine(lineUnitRFD, false)
				u.ppi.setUnitLine(lineUnitDAC, true)
			}
		} else if u.ppi.unitLine(lineUnitDAC) {
			u.ppi.setUnitLine(lineUnitDAC, false)
			u.receive(u.ppi.b)
			u.ppi.setUnitLine(lineUnitRFD, true)
		}
	}

	// unit to host
	if changed&lineDAC == lineDAC {
		if lines&lineDAC == lineDAC {
			if u.ppi.unitLine(lineUnitDAV) {
				u.ppi.setUnitLine(lineUnitDAV, false)
				u.sending = u.sending[1:]
			}
		}
	}
	if lines&lineRFD == lineRFD && lines&lineDAC == 0 && !u.ppi.unitLine(lineUnitDAV) && len(u.sending) > 0 {
		u.ppi.a = u.sending[0]
		u.ppi.setUnitLine(lineUnitDAV, true)
	}
}

// receive a byte from the host.
func (u *Unit) receive(data uint8) {
	if u.receiving != nil {
		u.receiving = append(u.receiving, data)
		if len(u.receiving) == u.need {
			u.write()
			u.receiving = nil
			u.command = cmdNone
		}
		return
	}

	if u.command == cmdNone {
		u.command = int(data)
		u.params = u.params[:0]
		switch u.command {
		case CmdWrite, CmdRead:
			u.need = 4
		case CmdFormat:
			u.need = 1
		default:
			u.need = 0
		}
	} else {
		u.params = append(u.params, data)
	}

	if len(u.params) == u.need {
		u.execute()
	}
}

// execute the command once every parameter has arrived.
func (u *Unit) execute() {
	switch u.command {
	case CmdInitialise:
		u.result = ResultOK
		u.buffer = nil
	case CmdWrite:
		// the sector data follows the parameters
		u.need = int(u.count()) * SectorSize
		u.receiving = make([]uint8, 0, u.need)
		return
	case CmdRead:
		u.read()
	case CmdSendData:
		u.sending = append(u.sending, u.buffer...)
	case CmdFormat:
		u.format()
	case CmdSendResult:
		u.sending = append(u.sending, u.result)
	case CmdSendStatus:
		var v uint8
		for i, img := range u.drives {
			if img != nil {
				v |= 0x01 << i
				if img.Protected() {
					v |= 0x10 << i
				}
			}
		}
		u.sending = append(u.sending, v)
	default:
		logger.Logf(u.perm, "disk", "unknown command 0x%02x", u.command)
		u.result = ResultError
	}
	u.command = cmdNone
}

func (u *Unit) count() uint8 {
	n := u.params[0]
	if n == 0 {
		n = 1
	}
	return n
}

// image returns the disk named by the second parameter of a command. Sets
// the result if there is no disk.
func (u *Unit) image() *Image {
	d := int(u.params[1])
	if d >= NumDrives || u.drives[d] == nil {
		u.result = ResultNoDisk
		return nil
	}
	return u.drives[d]
}

// sectors calls f with the address of every sector of a read or write
// command. Sectors run from 1 to 16 and then on to the next track. Tracks
// alternate between the two sides of the disk.
func (u *Unit) sectors(f func(i int, c, h, r uint8) bool) {
	track := int(u.params[2])
	sector := int(u.params[3])
	for i := 0; i < int(u.count()); i++ {
		if !f(i, uint8(track>>1), uint8(track&0x01), uint8(sector)) {
			return
		}
		sector++
		if sector > Sectors {
			sector = 1
			track++
		}
	}
}

func (u *Unit) read() {
	img := u.image()
	if img == nil {
		return
	}
	u.result = ResultOK
	u.buffer = u.buffer[:0]
	u.sectors(func(_ int, c, h, r uint8) bool {
		data, err := img.ReadSector(c, h, r)
		if err != nil {
			logger.Logf(u.perm, "disk", "%v", err)
			u.result = ResultError
			return false
		}
		u.buffer = append(u.buffer, data...)
		return true
	})
}

func (u *Unit) write() {
	img := u.image()
	if img == nil {
		return
	}
	if img.Protected() {
		u.result = ResultProtected
		return
	}
	u.result = ResultOK
	u.sectors(func(i int, c, h, r uint8) bool {
		err := img.WriteSector(c, h, r, u.receiving[i*SectorSize:(i+1)*SectorSize])
		if err != nil {
			logger.Logf(u.perm, "disk", "%v", err)
			u.result = ResultError
			return false
		}
		return true
	})
}

func (u *Unit) format() {
	d := int(u.params[0])
	if d >= NumDrives || u.drives[d] == nil {
		u.result = ResultNoDisk
		return
	}
	img := u.drives[d]
	if img.Protected() {
		u.result = ResultProtected
		return
	}

	blank := make([]uint8, SectorSize)
	for i := range blank {
		blank[i] = 0xff
	}

	u.result = ResultOK
	for id := range img.sectors {
		_ = img.WriteSector(id.c, id.h, id.r, blank)
	}
}
