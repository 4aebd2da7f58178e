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

// Package bus defines the memory and I/O bus concepts shared by the CPU and
// the peripherals.
//
// Unlike a general purpose bus, none of these operations can fail. A read of
// memory or of an I/O port that isn't connected to anything returns a defined
// value and a write to such a location is dropped.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// IOBus defines the operations for the I/O port space. Only the lower eight
// bits of the port address are decoded.
type IOBus interface {
	In(port uint8) uint8
	Out(port uint8, data uint8)
}

// DebugBus defines the meta-operations for memory. Peek and Poke act on RAM
// directly, ignoring the current banking.
type DebugBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// ReadWord composes a little-endian word from two byte reads.
func ReadWord(mem CPUBus, address uint16) uint16 {
	return uint16(mem.Read(address)) | uint16(mem.Read(address+1))<<8
}

// WriteWord writes a word as two little-endian byte writes.
func WriteWord(mem CPUBus, address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}
