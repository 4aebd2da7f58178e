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

// Package memory implements the memory banking of the PC-8001 and the two
// expansion units that change it.
//
// Without an expansion unit (and with the PC-8011) the lower 32K reads from
// the BASIC ROM and the USER ROM or RAM. Writes always go to RAM underneath
// the ROM. The PC-8011 can switch the lower 32K to read from that RAM
// instead (mode 2).
//
// The PC-8012 adds 128K of RAM in four 32K banks. The bank register at port
// 0xe2 selects which bank is read in the lower 32K (low nibble, lowest set
// bit first, zero for the base windows) and which banks are written to (high
// nibble, any number of banks at once). Writes to the lower 32K never reach
// main RAM when the PC-8012 is fitted.
//
// The upper 32K is always main RAM.
package memory
