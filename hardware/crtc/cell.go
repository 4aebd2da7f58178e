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

// Cell is a single character cell of the attribute cache. The low 16 bits are
// the attribute and the upper 16 bits are the glyph offset into the font
// memory, in units of glyph rows.
type Cell uint32

// Attribute returns the attribute bits of the cell.
func (c Cell) Attribute() uint16 {
	return uint16(c)
}

// Glyph returns the glyph number of the cell. Multiply by font.GlyphRows for
// the offset into font memory.
func (c Cell) Glyph() int {
	return int(c >> 16)
}

// Attribute bits. The low three bits are the colour.
const (
	AttrSecret    = 0x0100
	AttrBlink     = 0x0200
	AttrReverse   = 0x0400
	AttrUpperline = 0x1000
	AttrUnderline = 0x2000
	AttrGraphic   = 0x8000
)

// The eight colours of the PC-8001.
const (
	Black = iota
	Blue
	Red
	Magenta
	Green
	Cyan
	Yellow
	White
)

// RGB222 packs two bits for each of the colour channels into a pixel code.
// This is the format of the pixels produced by Render().
func RGB222(r, g, b uint8) uint8 {
	return (b&0x03)<<4 | (g&0x03)<<2 | r&0x03
}

// Palette maps the colour number to the pixel code.
var Palette = [8]uint8{
	Black:   RGB222(0, 0, 0),
	Blue:    RGB222(0, 0, 3),
	Red:     RGB222(3, 0, 0),
	Magenta: RGB222(3, 0, 3),
	Green:   RGB222(0, 3, 0),
	Cyan:    RGB222(0, 3, 3),
	Yellow:  RGB222(3, 3, 0),
	White:   RGB222(3, 3, 3),
}

// BorderColour is the pixel code used outside the text area and while the
// display is off.
var BorderColour = Palette[Black]
