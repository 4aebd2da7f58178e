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

// Package cpu connects the Z80 processor of the PC-8001 to the rest of the
// machine. The processor itself is provided by the koron-go/z80 package.
//
// The CPU type wraps the processor and counts the memory and I/O accesses of
// each instruction. The count is used to estimate the number of clock cycles
// taken by the instruction, which is what the scheduler needs for the pacing
// of the emulation. The estimate is close to the real figure for most
// instructions but is not exact.
//
//	mc := cpu.NewCPU(bus)
//	for {
//		cycles += mc.Step()
//	}
package cpu
