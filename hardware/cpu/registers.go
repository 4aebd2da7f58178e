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

// Register names a 16 bit register or register pair.
type Register int

// List of valid Register values. The last four are the alternate register
// set.
const (
	AF Register = iota
	BC
	DE
	HL
	IX
	IY
	SP
	PC
	AltAF
	AltBC
	AltDE
	AltHL
)

func (r Register) String() string {
	switch r {
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case IX:
		return "IX"
	case IY:
		return "IY"
	case SP:
		return "SP"
	case PC:
		return "PC"
	case AltAF:
		return "AF'"
	case AltBC:
		return "BC'"
	case AltDE:
		return "DE'"
	case AltHL:
		return "HL'"
	}
	return "unknown register"
}

// ReadRegister returns the value of the register.
func (mc *CPU) ReadRegister(r Register) uint16 {
	s := &mc.z80.States
	switch r {
	case AF:
		return s.AF.U16()
	case BC:
		return s.BC.U16()
	case DE:
		return s.DE.U16()
	case HL:
		return s.HL.U16()
	case IX:
		return s.IX
	case IY:
		return s.IY
	case SP:
		return s.SP
	case PC:
		return s.PC
	case AltAF:
		return s.Alternate.AF.U16()
	case AltBC:
		return s.Alternate.BC.U16()
	case AltDE:
		return s.Alternate.DE.U16()
	case AltHL:
		return s.Alternate.HL.U16()
	}
	return 0
}

// WriteRegister sets the value of the register.
func (mc *CPU) WriteRegister(r Register, v uint16) {
	s := &mc.z80.States
	switch r {
	case AF:
		s.AF.SetU16(v)
	case BC:
		s.BC.SetU16(v)
	case DE:
		s.DE.SetU16(v)
	case HL:
		s.HL.SetU16(v)
	case IX:
		s.IX = v
	case IY:
		s.IY = v
	case SP:
		s.SP = v
	case PC:
		s.PC = v
	case AltAF:
		s.Alternate.AF.SetU16(v)
	case AltBC:
		s.Alternate.BC.SetU16(v)
	case AltDE:
		s.Alternate.DE.SetU16(v)
	case AltHL:
		s.Alternate.HL.SetU16(v)
	}
}
