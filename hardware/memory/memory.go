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

package memory

import (
	"encoding/binary"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/memory/memorymap"
)

// Unit is the type of expansion unit connected to the machine.
type Unit int

// List of valid Unit values. The values are the same as the EXPUNIT setting.
const (
	NoUnit Unit = iota
	PC8011
	PC8012
)

func (u Unit) String() string {
	switch u {
	case NoUnit:
		return "none"
	case PC8011:
		return "PC-8011"
	case PC8012:
		return "PC-8012"
	}
	return "unknown"
}

// Mode is the memory mode of the PC-8011 expansion unit.
type Mode int

// List of valid Mode values. There is no mode 1 or mode 3 in practice. Mode 1
// has no effect and mode 3 is the same as mode 0.
const (
	Mode0 Mode = 0
	Mode2 Mode = 2
)

// Sentinal error returned by SetROMs().
const (
	ROMSize = "memory: %s is %d bytes, expected %d"
)

// Memory is the banking unit of the PC-8001. Every CPU memory access goes
// through Read() and Write().
//
// The lower 32K of the address space is divided into two windows. The first
// covers [0x0000,0x6000) and is normally backed by the BASIC ROM. The second
// covers [0x6000,0x8000) and is normally backed by the USER ROM or by RAM.
// Which store backs each window is decided whenever the banking state changes
// and never during an access.
type Memory struct {
	ram   []uint8
	basic []uint8
	user  []uint8

	// expansion RAM of the PC-8012. nil if the unit is not fitted
	ext []uint8

	unit Unit
	mode Mode

	// the PC-8012 bank register. low nibble selects the read bank and high
	// nibble is the write broadcast mask
	bank uint8

	// base windows are the windows chosen by reset and by the PC-8011 mode.
	// they are used by the PC-8012 when the low nibble of the bank register
	// is zero
	base0 []uint8
	base1 []uint8

	// the windows actually used by Read()
	window0 []uint8
	window1 []uint8

	// banks receiving writes under the PC-8012. writes has a backing array of
	// writeBanks so changing the bank register never allocates
	writes     [][]uint8
	writeBanks [memorymap.NumBanks][]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		ram:   make([]uint8, memorymap.RAMSize),
		basic: make([]uint8, memorymap.BasicROMSize),
		user:  make([]uint8, memorymap.UserROMSize),
	}
	mem.writes = mem.writeBanks[:0]
	mem.Reset(false)
	return mem
}

// SetROMs copies the BASIC ROM and the optional USER ROM into the memory
// unit. The USER ROM can be nil, in which case the USER window reads as zero
// when it is selected.
func (mem *Memory) SetROMs(basic []uint8, user []uint8) error {
	if len(basic) != memorymap.BasicROMSize {
		return curated.Errorf(ROMSize, "BASIC ROM", len(basic), memorymap.BasicROMSize)
	}
	if user != nil && len(user) != memorymap.UserROMSize {
		return curated.Errorf(ROMSize, "USER ROM", len(user), memorymap.UserROMSize)
	}

	copy(mem.basic, basic)

	if user == nil {
		clear(mem.user)
	} else {
		copy(mem.user, user)
	}

	return nil
}

// SetUnit selects the expansion unit and with it the banking policy. The
// expansion RAM is allocated the first time the PC-8012 is selected.
func (mem *Memory) SetUnit(unit Unit) {
	mem.unit = unit
	if mem.unit == PC8012 && mem.ext == nil {
		mem.ext = make([]uint8, memorymap.ExtRAMSize)
	}
	mem.resolve()
}

// Unit returns the current expansion unit.
func (mem *Memory) Unit() Unit {
	return mem.unit
}

// ColdBoot fills RAM and the expansion RAM with the power-on pattern and sets
// the bank register to 0xf0.
func (mem *Memory) ColdBoot() {
	for i := 0x0000; i < 0xa000; i += 4 {
		binary.LittleEndian.PutUint32(mem.ram[i:], 0xff00ff00)
	}
	for i := 0xa000; i < 0xc000; i += 4 {
		binary.LittleEndian.PutUint32(mem.ram[i:], 0x00ff00ff)
	}
	for i := 0xc000; i < memorymap.RAMSize; i++ {
		mem.ram[i] = 0xff
	}

	for i := 0; i < len(mem.ext); i += 4 {
		binary.LittleEndian.PutUint32(mem.ext[i:], 0xff00ff00)
	}

	mem.bank = 0xf0
	mem.resolve()
}

// Reset the windows to the BASIC ROM and, when the USER ROM is enabled or an
// expansion unit is fitted, the USER ROM. The bank register is not changed.
func (mem *Memory) Reset(prom bool) {
	mem.base0 = mem.basic
	if prom || mem.unit != NoUnit {
		mem.base1 = mem.user
	} else {
		mem.base1 = mem.ram[memorymap.OriginUser:memorymap.OriginRAM]
	}
	mem.mode = Mode0
	mem.resolve()
}

// SelectMode handles writes to ports 0xe0 to 0xe3. What happens depends on
// the expansion unit. Returns true if the write was consumed.
func (mem *Memory) SelectMode(port uint8, data uint8) bool {
	switch mem.unit {
	case PC8011:
		switch port {
		case 0xe0, 0xe3:
			mem.base0 = mem.basic
			mem.base1 = mem.user
			mem.mode = Mode0
		case 0xe2:
			mem.base0 = mem.ram[:memorymap.OriginUser]
			mem.base1 = mem.ram[memorymap.OriginUser:memorymap.OriginRAM]
			mem.mode = Mode2
		default:
			return false
		}
	case PC8012:
		if port != 0xe2 {
			return false
		}
		mem.bank = data
	default:
		return false
	}

	mem.resolve()
	return true
}

// ReadBankRegister returns the value of port 0xe2 as seen by the CPU, which
// is the inverse of the stored value.
func (mem *Memory) ReadBankRegister() uint8 {
	return ^mem.bank
}

// BankRegister returns the bank register as it was written.
func (mem *Memory) BankRegister() uint8 {
	return mem.bank
}

// Mode returns the PC-8011 memory mode.
func (mem *Memory) Mode() Mode {
	return mem.mode
}

// resolve the read windows and the write targets from the banking state.
// this is the only place the windows are changed.
func (mem *Memory) resolve() {
	mem.window0 = mem.base0
	mem.window1 = mem.base1
	mem.writes = mem.writeBanks[:0]

	if mem.unit != PC8012 {
		return
	}

	// lowest set bit of the low nibble wins
	for n := 0; n < memorymap.NumBanks; n++ {
		if mem.bank&(0x01<<n) != 0 {
			b := mem.extBank(n)
			mem.window0 = b[:memorymap.OriginUser]
			mem.window1 = b[memorymap.OriginUser:]
			break
		}
	}

	for n := 0; n < memorymap.NumBanks; n++ {
		if mem.bank&(0x10<<n) != 0 {
			mem.writes = append(mem.writes, mem.extBank(n))
		}
	}
}

func (mem *Memory) extBank(n int) []uint8 {
	origin := n * memorymap.BankSize
	return mem.ext[origin : origin+memorymap.BankSize]
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch {
	case address < memorymap.OriginUser:
		return mem.window0[address]
	case address < memorymap.OriginRAM:
		return mem.window1[address-memorymap.OriginUser]
	}
	return mem.ram[address]
}

// Write implements the bus.CPUBus interface.
//
// Writes to the lower 32K always land in RAM, even if a ROM is being read in
// that window. Under the PC-8012 the writes instead go to every bank selected
// by the high nibble of the bank register, or nowhere if no bank is selected.
func (mem *Memory) Write(address uint16, data uint8) {
	if address >= memorymap.OriginRAM || mem.unit != PC8012 {
		mem.ram[address] = data
		return
	}
	for _, b := range mem.writes {
		b[address] = data
	}
}

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.ram[address]
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.ram[address] = data
}

// Load copies data into RAM at the address. Data that would run past the top
// of memory is ignored. Returns the number of bytes copied.
func (mem *Memory) Load(address uint16, data []uint8) int {
	return copy(mem.ram[address:], data)
}

// RAM returns the 64K main RAM. The video controller reads VRAM from here.
func (mem *Memory) RAM() []uint8 {
	return mem.ram
}

// ExtRAM returns the bank of expansion RAM. Returns nil if the PC-8012 is not
// fitted or the bank number is out of range.
func (mem *Memory) ExtRAM(n int) []uint8 {
	if mem.ext == nil || n < 0 || n >= memorymap.NumBanks {
		return nil
	}
	return mem.extBank(n)
}

// BasicROM returns the BASIC ROM image.
func (mem *Memory) BasicROM() []uint8 {
	return mem.basic
}

// UserROM returns the USER ROM image.
func (mem *Memory) UserROM() []uint8 {
	return mem.user
}
