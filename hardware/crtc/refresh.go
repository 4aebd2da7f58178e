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
	"github.com/jetsetilly/gopher8001/hardware/font"
)

// number of (column, attribute) pairs at the end of every VRAM row.
const numPairs = 20

// glyph offsets for the cells, in glyphs.
const (
	glyphs80Graphic = font.Origin80Graphic / font.GlyphRows
	glyphs80PCG     = font.Origin80PCG / font.GlyphRows
	glyphs40        = font.Origin40 / font.GlyphRows
	glyphs40Graphic = (font.Origin40Graphic - font.Origin40) / font.GlyphRows
	glyphs40PCG     = (font.Origin40PCG - font.Origin40) / font.GlyphRows
)

func (crt *CRTC) publish(f *frame) {
	crt.front.Store(f)
}

// RequestRefresh asks for the attribute cache to be rebuilt on the next call
// to Refresh(). The renderer does this on its own at the end of every frame.
func (crt *CRTC) RequestRefresh() {
	crt.refresh.Store(true)
}

// Refresh rebuilds the attribute cache from VRAM if the renderer has asked
// for it and the display is on. It must be called from the goroutine that
// writes to RAM. Returns true if the cache was rebuilt.
//
// The request is left pending while the display is off.
func (crt *CRTC) Refresh() bool {
	if !crt.display.Load() {
		return false
	}
	if !crt.refresh.CompareAndSwap(true, false) {
		return false
	}

	f := &crt.frames[crt.back]

	// cells that are not reached by the attribute pairs keep the value they
	// had in the frame being displayed
	f.cells = crt.front.Load().cells

	prev := uint16(White)
	for row := 0; row < Rows; row++ {
		address := int(crt.vram) + row*RowStride
		cols, attrs, attrMode := crt.decodePairs(address + Columns)
		prev = crt.fill(f.cells[row*Columns:(row+1)*Columns], address, prev, &cols, &attrs, attrMode)
	}

	if f.fontGeneration != crt.font.Generation() {
		copy(f.font, crt.font.Data())
		f.fontGeneration = crt.font.Generation()
	}

	f.charRows = crt.charRows
	f.cursorX = crt.cursorX
	f.cursorY = crt.cursorY
	f.cursorDisplay = crt.cursorDisplay
	f.cursorMask = crt.cursorMask
	f.reverse = crt.reverse

	crt.publish(f)
	crt.back ^= 1

	return true
}

func (crt *CRTC) peek(address int) uint8 {
	return crt.ram[address&0xffff]
}

// decodePairs reads the attribute pairs of one row into column order. The
// pairs are expected to be in ascending column order. A pair that is out of
// order is inserted in front of the first pair with a larger column, pushing
// the remaining pairs along. A pair with the same column as an earlier pair
// is dropped.
//
// Unused entries have a column of 0x80. attrMode is true if any column is
// 0x80 or more.
func (crt *CRTC) decodePairs(address int) (cols [numPairs + 1]uint8, attrs [numPairs + 1]uint8, attrMode bool) {
	for i := 0; i < numPairs; i++ {
		cols[i] = 0x80
	}

	cols[0] = crt.peek(address)
	attrs[0] = crt.peek(address + 1)
	attrMode = cols[0] >= 0x80

	j := 1
	for i := 1; i < numPairs; i++ {
		col := crt.peek(address + i*2)
		v := crt.peek(address + i*2 + 1)

		if col >= 0x80 {
			attrMode = true
		}

		if col > cols[j-1] {
			cols[j] = col
			attrs[j] = v
			j++
		} else if col < cols[j-1] {
			for k := 0; k < j-1; k++ {
				if cols[k] == col {
					break
				}
				if cols[k] > col {
					for l := numPairs - 1; l >= k; l-- {
						cols[l+1] = cols[l]
						attrs[l+1] = attrs[l]
					}
					cols[k] = col
					attrs[k] = v
					j++
					break
				}
			}
		}
	}

	return cols, attrs, attrMode
}

// attribute applies the attribute byte v to the previous attribute.
func (crt *CRTC) attribute(prev uint16, v uint8) uint16 {
	if crt.colourMode {
		attr := prev
		if v&0x08 == 0x08 {
			attr &= 0x7f00
			if v&0x10 == 0x10 {
				attr |= AttrGraphic
			}
			attr |= uint16(v >> 5)
		} else {
			attr &= 0x80ff
			attr |= uint16(v&0x37) << 8
		}
		return attr
	}

	if v&0x08 == 0x08 {
		return prev
	}
	return White | uint16(v)<<8
}

// fill one row of cells. The attribute of each pair applies from the column
// of that pair up to the column of the next pair. In N88 mode (attrMode) the
// attribute applies from the column of the previous pair instead. Returns the
// attribute to carry forward to the next row.
func (crt *CRTC) fill(cells []Cell, address int, prev uint16, cols *[numPairs + 1]uint8, attrs *[numPairs + 1]uint8, attrMode bool) uint16 {
	pcg80 := 0
	pcg40 := 0
	if crt.pcg {
		pcg80 = glyphs80PCG
		pcg40 = glyphs40PCG
	}

	cur := 0
	for i := 0; i < numPairs; i++ {
		col := int(cols[i])
		attr := crt.attribute(prev, attrs[i])

		if !crt.column80 && col&0x01 == 0x01 {
			col++
		}

		if attrMode {
			prev = attr
		}

		col = min(col, Columns)

		if crt.column80 {
			for x := cur; x < col; x++ {
				offset := int(crt.peek(address + x))
				if prev&AttrGraphic == AttrGraphic {
					offset += glyphs80Graphic
				} else {
					offset += pcg80
				}
				cells[x] = Cell(prev) | Cell(offset)<<16
			}
		} else {
			for x := cur; x < col; x += 2 {
				offset := int(crt.peek(address+x))<<1 + glyphs40
				if prev&AttrGraphic == AttrGraphic {
					offset += glyphs40Graphic
				} else {
					offset += pcg40
				}
				cells[x] = Cell(prev) | Cell(offset)<<16
				cells[x+1] = Cell(prev) | Cell(offset+1)<<16
			}
		}

		cur = col
		if col >= Columns {
			break
		}
		prev = attr
	}

	return prev
}

// Cell returns the cell at the column and row of the frame being displayed.
func (crt *CRTC) Cell(col int, row int) Cell {
	return crt.front.Load().cells[row*Columns+col]
}
