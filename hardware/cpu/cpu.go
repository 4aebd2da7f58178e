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

package cpu

import (
	"fmt"

	"github.com/koron-go/z80"
)

// Bus is the connection between the processor and the machine. Memory
// accesses use the full 16 bit address. I/O accesses use the lower eight
// bits of the port address only.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	In(port uint8) uint8
	Out(port uint8, data uint8)
}

// clock cost of each kind of bus access. an opcode fetch costs one more cycle
// than a memory read but fetches are not distinguished from reads
const (
	memoryCycles = 3
	ioCycles     = 4
	fetchCycles  = 1

	// the shortest instruction takes four cycles
	minCycles = 4
)

// CPU is the Z80 processor connected to a Bus.
type CPU struct {
	z80 z80.CPU
	bus Bus

	// accesses during the current instruction
	memoryAccesses int
	ioAccesses     int

	// instructions executed since the last reset
	instructions uint64
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(bus Bus) *CPU {
	mc := &CPU{
		bus: bus,
	}
	mc.z80.Memory = memory{mc: mc}
	mc.z80.IO = io{mc: mc}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x",
		mc.ReadRegister(PC), mc.ReadRegister(SP), mc.ReadRegister(AF), mc.ReadRegister(BC),
		mc.ReadRegister(DE), mc.ReadRegister(HL), mc.ReadRegister(IX), mc.ReadRegister(IY))
}

// Reset the processor. Execution continues from address zero with interrupts
// disabled.
func (mc *CPU) Reset() {
	mc.z80.States = z80.States{}
	mc.z80.HALT = false
	mc.instructions = 0
}

// SetPC sets the program counter.
func (mc *CPU) SetPC(address uint16) {
	mc.z80.PC = address
}

// Halted returns true if the processor has executed a HALT instruction.
func (mc *CPU) Halted() bool {
	return mc.z80.HALT
}

// Instructions returns the number of instructions executed since the last
// reset.
func (mc *CPU) Instructions() uint64 {
	return mc.instructions
}

// Step executes a single instruction and returns the estimated number of
// clock cycles it took.
func (mc *CPU) Step() int {
	mc.memoryAccesses = 0
	mc.ioAccesses = 0

	mc.z80.Step()
	mc.instructions++

	c := mc.memoryAccesses*memoryCycles + mc.ioAccesses*ioCycles + fetchCycles
	return max(c, minCycles)
}

// memory implements the z80.Memory interface.
type memory struct {
	mc *CPU
}

func (m memory) Get(address uint16) uint8 {
	m.mc.memoryAccesses++
	return m.mc.bus.Read(address)
}

func (m memory) Set(address uint16, value uint8) {
	m.mc.memoryAccesses++
	m.mc.bus.Write(address, value)
}

// io implements the z80.IO interface.
type io struct {
	mc *CPU
}

func (p io) In(port uint8) uint8 {
	p.mc.ioAccesses++
	return p.mc.bus.In(port)
}

func (p io) Out(port uint8, value uint8) {
	p.mc.ioAccesses++
	p.mc.bus.Out(port, value)
}
