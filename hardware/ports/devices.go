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

package ports

// Keyboard is the keyboard matrix as seen by the I/O ports.
type Keyboard interface {
	Row(n int) uint8
}

// Sound is the PCG-8100 and the beeper.
type Sound interface {
	WriteData(data uint8)
	WriteAddress(data uint8)
	WriteControl(data uint8)
	WriteCounter(n int, data uint8)
	WriteMode(data uint8)
	Beep(on bool)
}

// Calendar is the uPD1990AC calendar clock.
type Calendar interface {
	WriteCommand(data uint8)
	WriteControl(data uint8)
	DataOut() bool
}

// Tape is the cassette interface and its USART.
type Tape interface {
	ReadData() uint8
	ReadStatus() uint8
	WriteData(data uint8)
	WriteCommand(data uint8)
	SystemControl(data uint8)
}

// CRTC is the video controller.
type CRTC interface {
	ReadData() uint8
	ReadStatus() uint8
	Parameter(data uint8)
	Command(data uint8)
	SetColumn80(column80 bool)
	VRTC() bool
}

// DMA is the DMA controller.
type DMA interface {
	ReadStatus() uint8
	WriteAddress(channel int, data uint8)
	WriteCount(channel int, data uint8)
	WriteMode(data uint8)
}

// Memory is the banking unit.
type Memory interface {
	SelectMode(port uint8, data uint8) bool
	ReadBankRegister() uint8
}

// Disk is the parallel interface to the mini disk unit.
type Disk interface {
	Read(port int) uint8
	Write(port int, data uint8)
}

// Devices are the peripherals connected to the I/O ports. Every field must
// be set.
type Devices struct {
	Keyboard Keyboard
	Sound    Sound
	Calendar Calendar
	Tape     Tape
	CRTC     CRTC
	DMA      DMA
	Memory   Memory
	Disk     Disk
}
