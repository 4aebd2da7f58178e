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

// Package ports routes accesses of the Z80 I/O space to the peripherals of
// the PC-8001.
//
// Only the lower eight bits of the port address are decoded. Every port is
// described by an Entry in one of two tables, one for reads and one for
// writes. The tables are built once by NewRouter() and every alias of a
// register is an explicit entry in the table. Ports that are not connected
// read as zero and writes to them are dropped.
package ports

import (
	"fmt"
)

// Device is the peripheral an I/O port is connected to.
type Device int

// List of valid Device values.
const (
	DevUnmapped Device = iota
	DevKeyboard
	DevPCG
	DevCounter
	DevCalendar
	DevTape
	DevSystemControl
	DevSystemStatus
	DevCRTC
	DevDMA
	DevBanking
	DevDisk
)

func (d Device) String() string {
	switch d {
	case DevUnmapped:
		return "unmapped"
	case DevKeyboard:
		return "keyboard"
	case DevPCG:
		return "pcg"
	case DevCounter:
		return "counter"
	case DevCalendar:
		return "calendar"
	case DevTape:
		return "tape"
	case DevSystemControl:
		return "system control"
	case DevSystemStatus:
		return "system status"
	case DevCRTC:
		return "crtc"
	case DevDMA:
		return "dma"
	case DevBanking:
		return "banking"
	case DevDisk:
		return "disk"
	}
	return "unknown"
}

// Register numbers for devices with more than one register.
const (
	TapeData   = 0
	TapeStatus = 1

	TapeCommand = TapeStatus

	CRTCData   = 0
	CRTCStatus = 1

	CRTCParameter = CRTCData
	CRTCCommand   = CRTCStatus

	PCGData    = 0
	PCGAddress = 1
	PCGControl = 2

	// the counter mode register follows the three counters
	CounterMode = 3

	// the DMA mode register follows the address and count registers of the
	// four channels
	DMAMode = 8
)

// Entry in the port tables.
type Entry struct {
	Device   Device
	Register int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s:%d", e.Device, e.Register)
}

// Tables is the pair of port tables.
type Tables struct {
	Read  [256]Entry
	Write [256]Entry
}

// fill sets the entries for an inclusive range of ports.
func fill(t *[256]Entry, from int, to int, entry func(port int) Entry) {
	for p := from; p <= to; p++ {
		t[p] = entry(p)
	}
}

func same(d Device, r int) func(int) Entry {
	return func(_ int) Entry {
		return Entry{Device: d, Register: r}
	}
}

// BuildTables returns the port tables of the PC-8001.
func BuildTables() *Tables {
	t := &Tables{}

	// reads
	fill(&t.Read, 0x00, 0x09, func(p int) Entry {
		return Entry{Device: DevKeyboard, Register: p}
	})
	fill(&t.Read, 0x20, 0x2f, func(p int) Entry {
		return Entry{Device: DevTape, Register: p & 0x01}
	})
	fill(&t.Read, 0x30, 0x3f, same(DevSystemControl, 0))
	fill(&t.Read, 0x40, 0x4f, same(DevSystemStatus, 0))
	t.Read[0x50] = Entry{Device: DevCRTC, Register: CRTCData}
	t.Read[0x51] = Entry{Device: DevCRTC, Register: CRTCStatus}
	t.Read[0x68] = Entry{Device: DevDMA, Register: DMAMode}
	t.Read[0xe2] = Entry{Device: DevBanking, Register: 0xe2}
	fill(&t.Read, 0xfc, 0xff, func(p int) Entry {
		return Entry{Device: DevDisk, Register: p - 0xfc}
	})

	// writes
	t.Write[0x00] = Entry{Device: DevPCG, Register: PCGData}
	t.Write[0x01] = Entry{Device: DevPCG, Register: PCGAddress}
	t.Write[0x02] = Entry{Device: DevPCG, Register: PCGControl}
	fill(&t.Write, 0x0c, 0x0f, func(p int) Entry {
		return Entry{Device: DevCounter, Register: p - 0x0c}
	})
	fill(&t.Write, 0x10, 0x1f, same(DevCalendar, 0))
	fill(&t.Write, 0x20, 0x2f, func(p int) Entry {
		return Entry{Device: DevTape, Register: p & 0x01}
	})
	fill(&t.Write, 0x30, 0x3f, same(DevSystemControl, 0))
	fill(&t.Write, 0x40, 0x4f, same(DevSystemStatus, 0))
	t.Write[0x50] = Entry{Device: DevCRTC, Register: CRTCParameter}
	t.Write[0x51] = Entry{Device: DevCRTC, Register: CRTCCommand}
	fill(&t.Write, 0x60, 0x68, func(p int) Entry {
		return Entry{Device: DevDMA, Register: p - 0x60}
	})
	fill(&t.Write, 0xe0, 0xe3, func(p int) Entry {
		return Entry{Device: DevBanking, Register: p}
	})
	fill(&t.Write, 0xfc, 0xff, func(p int) Entry {
		return Entry{Device: DevDisk, Register: p - 0xfc}
	})

	return t
}
