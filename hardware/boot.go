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

package hardware

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/hardware/cpu"
	"github.com/jetsetilly/gopher8001/hardware/memory"
	"github.com/jetsetilly/gopher8001/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8001/logger"
)

// Entry points used by the boot commands.
const (
	resetAddress     = 0x0000
	hotStartAddress  = 0x0008
	basicOnRAMEntry  = 0x17e9
	basicOnRAMHL     = 0x6000
	n80Entry         = 0xff3d
	n80StackPointer  = 0xff3e
	n80Origin        = 0x8000
	n80MaxSize       = 0x8000
	bankRegisterPort = 0xe2
)

// Sentinal error returned by LoadN80().
const (
	N80Error = "hardware: n80: %v"
)

// coldBoot fills memory with the power-on pattern, takes a new snapshot of
// the settings and resets the machine. The CPU is not reset.
func (m *Machine) coldBoot() {
	if m.prefs != nil {
		m.settings = m.prefs.Snapshot()
	}

	m.Mem.SetUnit(memory.Unit(m.settings.ExpansionUnit))
	m.Mem.ColdBoot()

	m.pacer.setSpeed(m.settings.Speed)

	m.Font.Generate()

	m.reset()
}

// reset the machine's peripherals and reopen the disks and tape named in the
// settings. The CPU is not reset.
func (m *Machine) reset() {
	m.Disk.Reset()
	m.Keyboard.Reset()
	m.Keyboard.SetPadEnter(m.settings.PadEnter)

	for i, path := range m.settings.Disk {
		if path == "" {
			continue
		}
		err := m.Disk.OpenDrive(i, path)
		if err != nil {
			m.report(err)
		}
	}

	if m.settings.Tape != "" {
		err := m.Tape.Open(m.settings.Tape)
		if err != nil {
			m.report(err)
		}
	} else {
		err := m.Tape.Close()
		if err != nil {
			m.report(err)
		}
	}

	m.Sound.Reset()
	m.Sound.SetVolume(m.settings.Volume)

	m.Mem.Reset(m.settings.PROM)

	m.CRTC.Reset()
	m.CRTC.SetPCG(m.settings.PCG)
	m.DMA.Reset()

	m.Ports.Reset(m.settings.DiskUnit)

	logger.Logf(m, "hardware", "reset (unit: %s, speed %d)", m.Mem.Unit(), m.pacer.speed)
}

// restartCPU resets the CPU and continues execution from the address.
func (m *Machine) restartCPU(address uint16) {
	m.CPU.Reset()
	m.CPU.SetPC(address)
}

// basicOnRAM copies the BASIC ROM into RAM so that it can be changed and
// then enters BASIC without initialising the ROM area.
func (m *Machine) basicOnRAM() {
	switch m.Mem.Unit() {
	case memory.PC8012:
		copy(m.Mem.ExtRAM(0), m.Mem.BasicROM())
		m.Ports.Out(bankRegisterPort, 0x11)
	case memory.PC8011:
		copy(m.Mem.RAM()[:memorymap.BasicROMSize], m.Mem.BasicROM())
		m.Ports.Out(bankRegisterPort, 0x00)
	default:
		if m.settings.PROM {
			return
		}
	}
	m.restartCPU(basicOnRAMEntry)
	m.CPU.WriteRegister(cpu.HL, basicOnRAMHL)
}

// enterN80 copies the most recently loaded N80 file into memory, if there is
// one, and starts the program in memory.
func (m *Machine) enterN80() {
	if data := m.n80.Swap(nil); data != nil {
		m.Mem.Load(n80Origin, *data)
	}
	sp := uint16(m.Mem.Peek(n80StackPointer)) | uint16(m.Mem.Peek(n80StackPointer+1))<<8
	m.restartCPU(n80Entry)
	m.CPU.WriteRegister(cpu.SP, sp)
}

// LoadN80 reads the N80 file and issues the N80 command. The file is a memory
// image starting at 0x8000 and is copied into memory when the command is
// carried out.
func (m *Machine) LoadN80(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return curated.Errorf(N80Error, err)
	}
	if len(data) > n80MaxSize {
		logger.Logf(logger.Allow, "hardware", "%s is longer than 32K and will be truncated", filepath.Base(path))
		data = data[:n80MaxSize]
	}

	m.n80.Store(&data)
	m.Command(commands.N80)

	return nil
}
