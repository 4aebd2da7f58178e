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

// Package font expands the 2K character generator ROM of the PC-8001 into the
// glyph sets used by the video controller.
//
// Every glyph is expanded to ten rows. The expanded memory holds, in order,
// the 80 column character set, the 80 column semigraphics set, the 80 column
// PCG set, and then the same three sets again with every glyph doubled in
// width for 40 column mode. A 40 column glyph is stored as its left half
// followed by its right half, each ten rows.
package font

import (
	"github.com/jetsetilly/gopher8001/curated"
)

// Size of the character generator ROM.
const ROMSize = 2048

// Layout of the expanded font memory.
const (
	GlyphRows = 10
	NumGlyphs = 256

	// bytes in one set of 80 column glyphs
	SetSize = GlyphRows * NumGlyphs

	Origin80        = 0
	Origin80Graphic = SetSize
	Origin80PCG     = SetSize * 2
	Origin40        = SetSize * 3
	Origin40Graphic = Origin40 + SetSize*2
	Origin40PCG     = Origin40 + SetSize*4

	Size = SetSize * 9
)

// Sentinal error returned by NewFont().
const (
	ROMWrongSize = "font: character ROM is %d bytes, expected %d"
)

// Doubling maps four pixels to the same four pixels at double width.
var Doubling = [16]uint8{
	0x00, 0x03, 0x0c, 0x0f, 0x30, 0x33, 0x3c, 0x3f,
	0xc0, 0xc3, 0xcc, 0xcf, 0xf0, 0xf3, 0xfc, 0xff,
}

// Font is the expanded font memory. It is only ever changed by the CPU
// goroutine. The video controller takes a copy whenever the generation
// changes.
type Font struct {
	data       []uint8
	generation uint64
}

// NewFont expands the character generator ROM. Generate() must be called
// before the font is used.
func NewFont(rom []uint8) (*Font, error) {
	if len(rom) != ROMSize {
		return nil, curated.Errorf(ROMWrongSize, len(rom), ROMSize)
	}

	fnt := &Font{
		data: make([]uint8, Size),
	}

	for i := 0; i < NumGlyphs; i++ {
		copy(fnt.data[i*GlyphRows:], rom[i*8:i*8+8])
	}

	return fnt, nil
}

// Generate builds the semigraphics set and resets the PCG set to a copy of
// the character set. The 40 column sets are rebuilt from the 80 column sets.
func (fnt *Font) Generate() {
	for i := 0; i < NumGlyphs; i++ {
		g := fnt.data[Origin80Graphic+i*GlyphRows:]
		for j := 0; j < 4; j++ {
			if (i>>j)&0x01 == 0x01 {
				g[j*2] |= 0xf0
				g[j*2+1] |= 0xf0
			}
			if (i>>(j+4))&0x01 == 0x01 {
				g[j*2] |= 0x0f
				g[j*2+1] |= 0x0f
			}
		}
	}

	copy(fnt.data[Origin80PCG:Origin80PCG+SetSize], fnt.data[Origin80:Origin80+SetSize])

	for i := 0; i < NumGlyphs*3; i++ {
		src := fnt.data[i*GlyphRows:]
		dest := fnt.data[Origin40+i*GlyphRows*2:]
		for j := 0; j < GlyphRows; j++ {
			dest[j] = Doubling[src[j]>>4]
			dest[j+GlyphRows] = Doubling[src[j]&0x0f]
		}
	}

	fnt.generation++
}

// PatchPCG writes one row of a PCG glyph in both the 80 and 40 column PCG
// sets. The address is the glyph row address: glyph number * 8 + row.
func (fnt *Font) PatchPCG(address int, data uint8) {
	o80, o40 := offsets(address)
	fnt.data[Origin80PCG+o80] = data
	fnt.data[Origin40PCG+o40] = Doubling[data>>4]
	fnt.data[Origin40PCG+o40+GlyphRows] = Doubling[data&0x0f]
	fnt.generation++
}

// RestorePCG copies one row of the character set into the PCG sets. The
// address is the same as for PatchPCG().
func (fnt *Font) RestorePCG(address int) {
	o80, o40 := offsets(address)
	fnt.data[Origin80PCG+o80] = fnt.data[Origin80+o80]
	fnt.data[Origin40PCG+o40] = fnt.data[Origin40+o40]
	fnt.data[Origin40PCG+o40+GlyphRows] = fnt.data[Origin40+o40+GlyphRows]
	fnt.generation++
}

func offsets(address int) (int, int) {
	address &= NumGlyphs*8 - 1
	return (address/8)*GlyphRows + address%8, (address/8)*GlyphRows*2 + address%8
}

// Data returns the font memory. It should not be modified.
func (fnt *Font) Data() []uint8 {
	return fnt.data
}

// Generation is incremented whenever the font memory changes.
func (fnt *Font) Generation() uint64 {
	return fnt.generation
}
