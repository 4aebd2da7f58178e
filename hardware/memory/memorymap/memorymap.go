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

// Package memorymap describes the three fixed windows of the PC-8001 address
// space. The backing store of each window is reassigned by the memory package
// but the window boundaries never change.
package memorymap

// Area represents the different windows of the address space.
type Area int

// List of valid Area values.
const (
	Basic Area = iota
	User
	RAM
)

func (a Area) String() string {
	switch a {
	case Basic:
		return "BASIC"
	case User:
		return "USER"
	case RAM:
		return "RAM"
	}
	return "undefined"
}

// The origin and memory top for each window.
const (
	OriginBasic = uint16(0x0000)
	MemtopBasic = uint16(0x5fff)
	OriginUser  = uint16(0x6000)
	MemtopUser  = uint16(0x7fff)
	OriginRAM   = uint16(0x8000)
	MemtopRAM   = uint16(0xffff)
)

// Sizes of the memory images.
const (
	BasicROMSize = 0x6000
	UserROMSize  = 0x2000
	RAMSize      = 0x10000

	// a single bank of the PC-8012 covers the lower 32K of the address space
	BankSize   = 0x8000
	NumBanks   = 4
	ExtRAMSize = BankSize * NumBanks
)

// MapAddress returns the window the address falls within and the address
// normalised to the origin of that window.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address < OriginUser:
		return address, Basic
	case address < OriginRAM:
		return address - OriginUser, User
	}
	return address - OriginRAM, RAM
}
