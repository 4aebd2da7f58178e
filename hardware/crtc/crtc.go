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

package crtc

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher8001/hardware/font"
)

// Dimensions of the text screen and of the rendered picture.
const (
	Columns = 80
	Rows    = 25

	ScreenWidth  = 640
	ScreenHeight = 480
	Border       = 40

	// number of VRAM bytes for each row of the text screen. 80 characters
	// followed by 20 pairs of attribute bytes
	RowStride = 120
)

// DefaultVRAM is the VRAM address used before the DMA controller programs one.
const DefaultVRAM = 0xf300

// Commands written to port 0x51.
const (
	CmdReset         = 0x00
	CmdStartDisplay  = 0x20
	CmdInterruptMask = 0x40
	CmdReadLightPen  = 0x60
	CmdLoadCursor    = 0x80
	CmdResetCounters = 0xa0
	CmdResetIRQ      = 0xc0
	CmdInvalid       = 0xff
)

// number of parameters for the commands that take any.
const (
	resetParams  = 5
	cursorParams = 2
)

// frame is everything the renderer needs to draw one picture. Frames are
// written only by the CPU goroutine and only while they are not the front
// frame.
type frame struct {
	cells [Columns * Rows]Cell

	font           []uint8
	fontGeneration uint64

	charRows      int
	cursorX       uint8
	cursorY       uint8
	cursorDisplay bool
	cursorMask    uint8
	reverse       bool
}

// CRTC is the uPD3301 CRT controller.
type CRTC struct {
	ram  []uint8
	font *font.Font

	cmd    uint8
	params [resetParams]uint8
	count  int

	cursorDisplay bool
	cursorX       uint8
	cursorY       uint8

	textOn bool
	dma    bool

	reverse    bool
	colourMode bool
	line25     bool
	charRows   int
	column80   bool
	cursorMask uint8
	pcg        bool

	vram uint16

	frames [2]frame
	back   int
	front  atomic.Pointer[frame]

	// shared between the CPU and video goroutines
	display   atomic.Bool
	vrtc      atomic.Bool
	refresh   atomic.Bool
	suspended atomic.Bool

	// owned by the video goroutine
	current      *frame
	frameCounter int
}

// NewCRTC is the preferred method of initialisation for the CRTC type. VRAM
// is read from ram, which must be the full 64K.
func NewCRTC(ram []uint8, fnt *font.Font) *CRTC {
	crt := &CRTC{
		ram:  ram,
		font: fnt,
		vram: DefaultVRAM,
	}

	for i := range crt.frames {
		for j := range crt.frames[i].cells {
			crt.frames[i].cells[j] = White
		}
		crt.frames[i].font = make([]uint8, font.Size)
		crt.frames[i].charRows = 16
		crt.frames[i].cursorMask = 0xff
	}

	crt.Reset()

	// the initial front frame is the second frame so that the first refresh
	// writes to the first
	f := &crt.frames[1]
	crt.publish(f)
	crt.back = 0

	return crt
}

// Reset the controller. The display is turned off.
func (crt *CRTC) Reset() {
	crt.cmd = CmdReset
	crt.count = 0
	crt.cursorDisplay = false
	crt.textOn = false
	crt.dma = false
	crt.colourMode = false
	crt.column80 = true
	crt.cursorMask = 0xff
	crt.line25 = true
	crt.charRows = 16
	crt.pcg = false
	crt.reverse = false
	crt.refresh.Store(false)
	crt.vrtc.Store(false)
	crt.updateDisplay()
}

func (crt *CRTC) updateDisplay() {
	crt.display.Store(crt.dma && crt.textOn)
}

// Command writes to the command register (port 0x51). Any parameters being
// collected for the previous command are discarded.
func (crt *CRTC) Command(data uint8) {
	crt.count = 0

	switch {
	case data&0xfe == CmdLoadCursor:
		crt.cmd = CmdLoadCursor
		crt.cursorDisplay = data&0x01 == 0x01
	case data == CmdReset:
		crt.cmd = CmdReset
		crt.textOn = false
	case data&0xfe == CmdStartDisplay:
		crt.cmd = CmdStartDisplay
		crt.reverse = data&0x01 == 0x01
		crt.textOn = true
	case data&0xfc == CmdInterruptMask:
		crt.cmd = CmdInterruptMask
	case data == CmdReadLightPen:
		crt.cmd = CmdReadLightPen
	case data == CmdResetCounters:
		crt.cmd = CmdResetCounters
	case data == CmdResetIRQ:
		crt.cmd = CmdResetIRQ
	default:
		crt.cmd = CmdInvalid
	}

	crt.updateDisplay()
}

// Parameter writes to the parameter register (port 0x50). Parameters are
// collected until the current command has all it needs, at which point they
// are applied together. The command register then reverts to CmdReset.
func (crt *CRTC) Parameter(data uint8) {
	if crt.count < len(crt.params) {
		crt.params[crt.count] = data
	}
	crt.count++

	switch {
	case crt.cmd == CmdReset && crt.count == resetParams:
		crt.line25 = crt.params[1]&0x3f == 0x18
		if crt.line25 {
			crt.charRows = 16
		} else {
			crt.charRows = 20
		}
		crt.colourMode = crt.params[4]&0x40 == 0x40
		crt.cmd = CmdReset
		crt.count = 0
	case crt.cmd == CmdLoadCursor && crt.count == cursorParams:
		crt.cursorX = crt.params[0]
		crt.cursorY = crt.params[1]
		crt.cmd = CmdReset
		crt.count = 0
	}
}

// ReadData is the value read from port 0x50.
func (crt *CRTC) ReadData() uint8 {
	return 0
}

// ReadStatus is the value read from port 0x51.
func (crt *CRTC) ReadStatus() uint8 {
	return crt.cmd
}

// SetDMA is called by the DMA controller when channel 2 is enabled or
// disabled.
func (crt *CRTC) SetDMA(enabled bool) {
	crt.dma = enabled
	crt.updateDisplay()
}

// SetVRAM is called by the DMA controller when the channel 2 address changes.
func (crt *CRTC) SetVRAM(address uint16) {
	crt.vram = address
}

// VRAM returns the address VRAM is read from.
func (crt *CRTC) VRAM() uint16 {
	return crt.vram
}

// SetColumn80 selects 80 or 40 column mode.
func (crt *CRTC) SetColumn80(column80 bool) {
	crt.column80 = column80
	if column80 {
		crt.cursorMask = 0xff
	} else {
		crt.cursorMask = 0xfe
	}
}

// SetPCG selects the PCG glyph set for characters that are not semigraphics.
func (crt *CRTC) SetPCG(pcg bool) {
	crt.pcg = pcg
}

// PCG returns true if the PCG glyphs are selected.
func (crt *CRTC) PCG() bool {
	return crt.pcg
}

// Display returns true if the display is on. The display is on once the DMA
// channel is enabled and the start display command has been received.
func (crt *CRTC) Display() bool {
	return crt.display.Load()
}

// ColourMode returns true if the attributes are being interpreted as colour
// attributes.
func (crt *CRTC) ColourMode() bool {
	return crt.colourMode
}

// Line25 returns true for 25 line mode and false for 20 line mode.
func (crt *CRTC) Line25() bool {
	return crt.line25
}

// Cursor returns the cursor position and whether it is displayed.
func (crt *CRTC) Cursor() (uint8, uint8, bool) {
	return crt.cursorX, crt.cursorY, crt.cursorDisplay
}

// VRTC returns true during vertical retrace, which begins with the last batch
// of scanlines and ends at the start of the next frame.
func (crt *CRTC) VRTC() bool {
	return crt.vrtc.Load()
}

// Suspend stops (or restarts) rendering. While suspended the television
// should not call Render().
func (crt *CRTC) Suspend(suspended bool) {
	crt.suspended.Store(suspended)
}

// Suspended returns true if rendering is suspended.
func (crt *CRTC) Suspended() bool {
	return crt.suspended.Load()
}
