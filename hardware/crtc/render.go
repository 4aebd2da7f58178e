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
	"encoding/binary"

	"github.com/jetsetilly/gopher8001/hardware/font"
)

// the number of glyph pixels in a cell.
const cellWidth = 8

// fontBits expands a glyph row to eight pixel masks. The leftmost pixel is the
// most significant bit of the glyph row and the first byte of the mask.
var fontBits [256]uint64

// colourBits is the pixel code of each colour repeated for every pixel of a
// cell.
var colourBits [8]uint64

var borderLine [ScreenWidth]uint8

func init() {
	var b [8]uint8
	for i := range fontBits {
		for k := 0; k < cellWidth; k++ {
			if i&(0x80>>k) != 0 {
				b[k] = 0xff
			} else {
				b[k] = 0x00
			}
		}
		fontBits[i] = binary.LittleEndian.Uint64(b[:])
	}

	for i, c := range Palette {
		colourBits[i] = uint64(c) * 0x0101010101010101
	}

	for i := range borderLine {
		borderLine[i] = BorderColour
	}
}

// Render draws scanlines into dst, beginning with the scanline start. Each
// scanline is ScreenWidth pixel codes in the RGB222 format and dst should hold
// an even number of scanlines. Scanlines are drawn in pairs.
//
// A new frame is taken from the CPU side whenever start is zero. The batch
// that reaches the bottom of the screen begins vertical retrace and requests
// a refresh of the attribute cache.
func (crt *CRTC) Render(dst []uint8, start int) {
	lines := (len(dst) / ScreenWidth) &^ 0x01

	if start == 0 || crt.current == nil {
		crt.current = crt.front.Load()
	}

	if start == 0 {
		crt.frameCounter++
		crt.vrtc.Store(false)
	}

	if crt.display.Load() {
		crt.draw(dst, start, lines)
	} else {
		for l := 0; l < lines; l++ {
			copy(dst[l*ScreenWidth:], borderLine[:])
		}
	}

	if start+lines >= ScreenHeight {
		crt.vrtc.Store(true)
		crt.refresh.Store(true)
	}
}

func (crt *CRTC) draw(dst []uint8, start int, lines int) {
	f := crt.current
	blink := crt.frameCounter&0x3f < 0x0f

	for l := 0; l < lines; l += 2 {
		line := start + l
		top := dst[l*ScreenWidth : (l+1)*ScreenWidth]
		bottom := dst[(l+1)*ScreenWidth : (l+2)*ScreenWidth]

		if line < Border || line >= ScreenHeight-Border {
			copy(top, borderLine[:])
			copy(bottom, borderLine[:])
			continue
		}

		y := line - Border
		row := (y % f.charRows) >> 1
		upper := row == 0
		under := row == (f.charRows>>1)-1
		y /= f.charRows

		cursorOn := f.cursorDisplay && int(f.cursorY) == y && blink
		cells := f.cells[y*Columns : (y+1)*Columns]

		for x, c := range cells {
			attr := uint32(c)
			glyph := f.font[c.Glyph()*font.GlyphRows+row]

			if attr&AttrSecret == AttrSecret {
				glyph = 0
			}
			if attr&AttrReverse == AttrReverse {
				glyph = ^glyph
			}
			if attr&AttrBlink == AttrBlink && blink {
				attr &= 0xf0
			}
			if attr&AttrUpperline == AttrUpperline && upper {
				glyph = 0xff
			}
			if attr&AttrUnderline == AttrUnderline && under {
				glyph = 0xff
			}
			if cursorOn && uint8(x)&f.cursorMask == f.cursorX {
				glyph = ^glyph
			}
			if f.reverse {
				glyph = ^glyph
			}

			pixels := colourBits[attr&0x07] & fontBits[glyph]
			binary.LittleEndian.PutUint64(top[x*cellWidth:], pixels)
			binary.LittleEndian.PutUint64(bottom[x*cellWidth:], pixels)
		}
	}
}
