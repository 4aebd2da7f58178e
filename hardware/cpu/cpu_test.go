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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8001/hardware/cpu"
	"github.com/jetsetilly/gopher8001/test"
)

type testBus struct {
	mem   [0x10000]uint8
	ports [0x100]uint8
	outs  []uint8
}

func (b *testBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *testBus) Write(address uint16, data uint8) {
	b.mem[address] = data
}

func (b *testBus) In(port uint8) uint8 {
	return b.ports[port]
}

func (b *testBus) Out(port uint8, data uint8) {
	b.ports[port] = data
	b.outs = append(b.outs, port)
}

func (b *testBus) load(address uint16, code ...uint8) {
	copy(b.mem[address:], code)
}

func TestRegisters(t *testing.T) {
	mc := cpu.NewCPU(&testBus{})
	for _, r := range []cpu.Register{cpu.AF, cpu.BC, cpu.DE, cpu.HL, cpu.IX, cpu.IY,
		cpu.SP, cpu.PC, cpu.AltAF, cpu.AltBC, cpu.AltDE, cpu.AltHL} {
		mc.WriteRegister(r, 0x1234+uint16(r))
		test.ExpectEquality(t, mc.ReadRegister(r), 0x1234+uint16(r), r)
	}

	mc.Reset()
	test.ExpectEquality(t, mc.ReadRegister(cpu.PC), uint16(0))
	test.ExpectEquality(t, mc.ReadRegister(cpu.HL), uint16(0))
	test.ExpectEquality(t, cpu.AltHL.String(), "HL'")
}

func TestStep(t *testing.T) {
	bus := &testBus{}

	// LD A,0x42 : OUT (0x51),A : LD (0x8000),A : HALT
	bus.load(0x0000, 0x3e, 0x42, 0xd3, 0x51, 0x32, 0x00, 0x80, 0x76)

	mc := cpu.NewCPU(bus)

	// two fetches
	test.ExpectEquality(t, mc.Step(), 7)
	test.ExpectEquality(t, mc.ReadRegister(cpu.PC), uint16(0x0002))
	test.ExpectEquality(t, mc.ReadRegister(cpu.AF)>>8, uint16(0x42))

	// two fetches and an output
	test.ExpectEquality(t, mc.Step(), 11)
	test.ExpectEquality(t, bus.ports[0x51], uint8(0x42))

	// three fetches and a write
	test.ExpectEquality(t, mc.Step(), 13)
	test.ExpectEquality(t, bus.mem[0x8000], uint8(0x42))

	mc.Step()
	test.ExpectEquality(t, mc.Halted(), true)
	test.ExpectEquality(t, mc.Instructions(), uint64(4))
}

func TestSetPC(t *testing.T) {
	bus := &testBus{}

	// IN A,(0x40)
	bus.load(0xff3d, 0xdb, 0x40)
	bus.ports[0x40] = 0x0c

	mc := cpu.NewCPU(bus)
	mc.SetPC(0xff3d)
	mc.Step()
	test.ExpectEquality(t, mc.ReadRegister(cpu.AF)>>8, uint16(0x0c))
	test.ExpectEquality(t, mc.ReadRegister(cpu.PC), uint16(0xff3f))
}
