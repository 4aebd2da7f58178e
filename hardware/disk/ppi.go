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

package disk

// Registers of the host PPI, in port order from 0xfc.
const (
	PortA = iota
	PortB
	PortC
	PortControl
)

// Handshake lines. The host drives the upper nibble of port C and reads the
// unit's lines in the lower nibble.
const (
	lineUnitDAV = 0x01
	lineUnitRFD = 0x02
	lineUnitDAC = 0x04

	lineDAV = 0x10
	lineRFD = 0x20
	lineDAC = 0x40
	lineATN = 0x80
)

// ppi is the host side of the 8255 parallel interface. Port A is an input
// from the unit, port B is an output to the unit and port C carries the
// handshake lines.
type ppi struct {
	// value on port A as driven by the unit
	a uint8

	// latch of port B
	b uint8

	// upper nibble is the host's output latch. lower nibble is driven by the
	// unit
	c uint8

	// the last mode byte written to the control port
	mode uint8
}

func (p *ppi) reset() {
	p.a = 0x00
	p.b = 0x00
	p.c = 0x00
	p.mode = 0x9b
}

// lines returns the host output lines.
func (p *ppi) lines() uint8 {
	return p.c & 0xf0
}

func (p *ppi) setUnitLine(line uint8, on bool) {
	if on {
		p.c |= line
	} else {
		p.c &^= line
	}
}

func (p *ppi) unitLine(line uint8) bool {
	return p.c&line == line
}

// writeC sets the host output latch and returns the lines that have changed.
func (p *ppi) writeC(data uint8) uint8 {
	old := p.c & 0xf0
	p.c = (p.c & 0x0f) | (data & 0xf0)
	return old ^ (p.c & 0xf0)
}

// writeControl handles the control port. A mode set clears the output latch
// and a bit set/reset changes one bit of port C. Returns the lines that have
// changed.
func (p *ppi) writeControl(data uint8) uint8 {
	if data&0x80 == 0x80 {
		p.mode = data
		return p.writeC(0x00)
	}
	bit := uint8(0x01) << ((data >> 1) & 0x07)
	if bit&0xf0 == 0 {
		return 0
	}
	c := p.c
	if data&0x01 == 0x01 {
		c |= bit
	} else {
		c &^= bit
	}
	return p.writeC(c)
}
