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

package ports

import (
	"github.com/jetsetilly/gopher8001/logger"
)

// Bits of the system status port (0x40) on read.
const (
	StatusCalendar = 0x10
	StatusVRTC     = 0x20
	StatusNoDisk   = 0x08
	StatusCMT      = 0x04
)

// Bits of the system output port (0x40) on write.
const (
	OutputBeep = 0x20
)

// Router implements the bus.IOBus interface.
type Router struct {
	perm   logger.Permission
	tables *Tables
	devs   Devices

	// latch of the system control port
	control uint8

	// the system status port less the bits that come from the calendar and
	// the video controller
	status uint8

	// the last value written to the system output port
	output uint8
}

// NewRouter is the preferred method of initialisation for the Router type.
// Unmapped accesses are logged if the permission allows.
func NewRouter(perm logger.Permission, devs Devices) *Router {
	return &Router{
		perm:   perm,
		tables: BuildTables(),
		devs:   devs,
	}
}

// Reset the latched ports. The status port reports whether a mini disk unit
// is connected.
func (r *Router) Reset(diskUnit bool) {
	r.control = 0x00
	r.output = 0x00
	r.status = StatusCMT
	if !diskUnit {
		r.status |= StatusNoDisk
	}
}

// Tables returns the port tables used by the router.
func (r *Router) Tables() *Tables {
	return r.tables
}

// Control returns the last value written to the system control port.
func (r *Router) Control() uint8 {
	return r.control
}

// Output returns the last value written to the system output port.
func (r *Router) Output() uint8 {
	return r.output
}

// In implements the bus.IOBus interface.
func (r *Router) In(port uint8) uint8 {
	e := r.tables.Read[port]

	switch e.Device {
	case DevKeyboard:
		return r.devs.Keyboard.Row(e.Register)
	case DevTape:
		if e.Register == TapeData {
			return r.devs.Tape.ReadData()
		}
		return r.devs.Tape.ReadStatus()
	case DevSystemControl:
		return r.control
	case DevSystemStatus:
		v := r.status
		if r.devs.Calendar.DataOut() {
			v |= StatusCalendar
		}
		if r.devs.CRTC.VRTC() {
			v |= StatusVRTC
		}
		return v
	case DevCRTC:
		if e.Register == CRTCData {
			return r.devs.CRTC.ReadData()
		}
		return r.devs.CRTC.ReadStatus()
	case DevDMA:
		return r.devs.DMA.ReadStatus()
	case DevBanking:
		return r.devs.Memory.ReadBankRegister()
	case DevDisk:
		return r.devs.Disk.Read(e.Register)
	}

	logger.Logf(r.perm, "ports", "unmapped read from 0x%02x", port)
	return 0x00
}

// Out implements the bus.IOBus interface.
func (r *Router) Out(port uint8, data uint8) {
	e := r.tables.Write[port]

	switch e.Device {
	case DevPCG:
		switch e.Register {
		case PCGData:
			r.devs.Sound.WriteData(data)
		case PCGAddress:
			r.devs.Sound.WriteAddress(data)
		case PCGControl:
			r.devs.Sound.WriteControl(data)
		}
	case DevCounter:
		if e.Register == CounterMode {
			r.devs.Sound.WriteMode(data)
		} else {
			r.devs.Sound.WriteCounter(e.Register, data)
		}
	case DevCalendar:
		r.devs.Calendar.WriteCommand(data)
	case DevTape:
		if e.Register == TapeData {
			r.devs.Tape.WriteData(data)
		} else {
			r.devs.Tape.WriteCommand(data)
		}
	case DevSystemControl:
		r.control = data
		r.devs.CRTC.SetColumn80(data&0x01 == 0x01)
		r.devs.Tape.SystemControl(data)
	case DevSystemStatus:
		r.devs.Sound.Beep(data&OutputBeep == OutputBeep)
		r.devs.Calendar.WriteControl(data)
		r.output = data
	case DevCRTC:
		if e.Register == CRTCParameter {
			r.devs.CRTC.Parameter(data)
		} else {
			r.devs.CRTC.Command(data)
		}
	case DevDMA:
		switch {
		case e.Register == DMAMode:
			r.devs.DMA.WriteMode(data)
		case e.Register&0x01 == 0x00:
			r.devs.DMA.WriteAddress(e.Register>>1, data)
		default:
			r.devs.DMA.WriteCount(e.Register>>1, data)
		}
	case DevBanking:
		r.devs.Memory.SelectMode(port, data)
	case DevDisk:
		r.devs.Disk.Write(e.Register, data)
	default:
		logger.Logf(r.perm, "ports", "unmapped write of 0x%02x to 0x%02x", data, port)
	}
}
