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
	"sync/atomic"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/calendar"
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/hardware/cpu"
	"github.com/jetsetilly/gopher8001/hardware/crtc"
	"github.com/jetsetilly/gopher8001/hardware/disk"
	"github.com/jetsetilly/gopher8001/hardware/dma"
	"github.com/jetsetilly/gopher8001/hardware/font"
	"github.com/jetsetilly/gopher8001/hardware/keyboard"
	"github.com/jetsetilly/gopher8001/hardware/memory"
	"github.com/jetsetilly/gopher8001/hardware/ports"
	"github.com/jetsetilly/gopher8001/hardware/preferences"
	"github.com/jetsetilly/gopher8001/hardware/sound"
	"github.com/jetsetilly/gopher8001/hardware/tape"
	"github.com/jetsetilly/gopher8001/logger"
)

// Names of the ROM files in the resource directory. The USER ROM is optional.
const (
	BasicROMFile = "PC-8001.ROM"
	FontROMFile  = "PC-8001.FON"
	UserROMFile  = "USER.ROM"
)

// Sentinal errors returned by the hardware package.
const (
	ROMError = "hardware: %s: %v"
	Restart  = "hardware: restart"
)

// ROMs are the ROM images used by the machine.
type ROMs struct {
	Basic []uint8
	Font  []uint8

	// nil if there is no USER ROM
	User []uint8
}

// LoadROMs reads the ROM images from the directory.
func LoadROMs(dir string) (ROMs, error) {
	var roms ROMs
	var err error

	roms.Basic, err = os.ReadFile(filepath.Join(dir, BasicROMFile))
	if err != nil {
		return ROMs{}, curated.Errorf(ROMError, BasicROMFile, err)
	}

	roms.Font, err = os.ReadFile(filepath.Join(dir, FontROMFile))
	if err != nil {
		return ROMs{}, curated.Errorf(ROMError, FontROMFile, err)
	}

	roms.User, err = os.ReadFile(filepath.Join(dir, UserROMFile))
	if err != nil {
		if !os.IsNotExist(err) {
			return ROMs{}, curated.Errorf(ROMError, UserROMFile, err)
		}
		roms.User = nil
	}

	return roms, nil
}

// Menu is implemented by the menu system. Menu() is called when the Menu
// command is received and returns the command to carry out. The machine is
// suspended while the menu is open.
type Menu interface {
	Menu(m *Machine) commands.Command
}

// Machine is the PC-8001 and its peripherals.
type Machine struct {
	prefs *preferences.Preferences

	// the settings as they were at the most recent reset
	settings preferences.Snapshot

	roms ROMs

	Mem      *memory.Memory
	CPU      *cpu.CPU
	Ports    *ports.Router
	Font     *font.Font
	CRTC     *crtc.CRTC
	Sound    *sound.Sound
	DMA      *dma.DMA
	Calendar *calendar.Calendar
	Keyboard *keyboard.Keyboard
	Tape     *tape.Deck
	Disk     *disk.Unit

	menu Menu

	pacer pacer

	// cycles emulated by Run() over the lifetime of the machine. updated every
	// PerformanceBrake cycles
	cycles atomic.Int64

	// suspending is set when there is a pending command or when the machine
	// should stop
	suspending atomic.Bool
	pending    atomic.Int32
	stopping   atomic.Bool

	// N80 file waiting for the N80 command
	n80 atomic.Pointer[[]uint8]

	verbose atomic.Bool

	// the most recent non-fatal error
	message atomic.Value // string
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The machine is cold booted with the current settings.
func NewMachine(prefs *preferences.Preferences, roms ROMs) (*Machine, error) {
	m := &Machine{
		prefs: prefs,
		roms:  roms,
	}
	m.pending.Store(int32(commands.Continue))
	m.message.Store("")

	var err error

	m.Mem = memory.NewMemory()
	err = m.Mem.SetROMs(roms.Basic, roms.User)
	if err != nil {
		return nil, curated.Errorf(ROMError, "ROM images", err)
	}

	m.Font, err = font.NewFont(roms.Font)
	if err != nil {
		return nil, curated.Errorf(ROMError, FontROMFile, err)
	}

	m.CRTC = crtc.NewCRTC(m.Mem.RAM(), m.Font)
	m.DMA = dma.NewDMA(m.CRTC)
	m.Sound = sound.NewSound(m.Font, preferences.DefaultVolume)
	m.Calendar = calendar.NewCalendar()
	m.Keyboard = keyboard.NewKeyboard()
	m.Tape = tape.NewDeck(m)
	m.Disk = disk.NewUnit(m)

	m.Ports = ports.NewRouter(m, ports.Devices{
		Keyboard: m.Keyboard,
		Sound:    m.Sound,
		Calendar: m.Calendar,
		Tape:     m.Tape,
		CRTC:     m.CRTC,
		DMA:      m.DMA,
		Memory:   m.Mem,
		Disk:     m.Disk,
	})

	m.CPU = cpu.NewCPU(&bus{mem: m.Mem, io: m.Ports})

	m.coldBoot()
	m.CPU.Reset()

	return m, nil
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return m.verbose.Load()
}

// SetVerbose allows the machine's sub-systems to log routine events.
func (m *Machine) SetVerbose(verbose bool) {
	m.verbose.Store(verbose)
}

// SetMenu sets the menu system. A nil menu means that the Menu command does
// nothing.
func (m *Machine) SetMenu(menu Menu) {
	m.menu = menu
}

// Settings returns the settings as they were at the most recent reset.
func (m *Machine) Settings() preferences.Snapshot {
	return m.settings
}

// Preferences returns the preferences used by the machine.
func (m *Machine) Preferences() *preferences.Preferences {
	return m.prefs
}

// Message returns the most recent non-fatal error as a string. Returns the
// empty string if there has been no error since the last call.
func (m *Machine) Message() string {
	return m.message.Swap("").(string)
}

// report a non-fatal error.
func (m *Machine) report(err error) {
	logger.Log(logger.Allow, "hardware", err.Error())
	m.message.Store(err.Error())
}

// Cycles returns the approximate number of CPU cycles emulated so far. Safe
// to call from any goroutine.
func (m *Machine) Cycles() int64 {
	return m.cycles.Load()
}

// Speed returns the speed setting currently in effect.
func (m *Machine) Speed() int {
	return m.pacer.speed
}

// Close the tape and save and eject the disks.
func (m *Machine) Close() error {
	err := m.Tape.Close()
	if err != nil {
		return err
	}
	return m.Disk.Eject()
}
