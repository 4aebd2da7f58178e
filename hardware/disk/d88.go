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

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher8001/curated"
)

// Sentinal errors for disk images.
const (
	ImageError       = "disk: %v"
	SectorNotFound   = "disk: sector not found (C%d H%d R%d)"
	WriteProtected   = "disk: %s is write protected"
	UnsupportedImage = "disk: unsupported image (%s)"
	HeaderTooShort   = "disk: file too short for D88 header"
	SizeMismatch     = "disk: disk size in header (%d) is larger than the file (%d)"
	TrackOutOfRange  = "disk: track %d offset (%#x) out of range"
	SectorOutOfRange = "disk: sector %s in track %d out of range"
)

// Geometry of the disks used by the PC-80S31.
const (
	Cylinders  = 40
	Heads      = 2
	Sectors    = 16
	SectorSize = 256
)

// layout of the D88 header.
const (
	headerSize     = 0x2b0
	headerProtect  = 0x1a
	headerMedia    = 0x1b
	headerDiskSize = 0x1c
	headerTracks   = 0x20
	maxTracks      = 164

	protectFlag = 0x10
	media2D     = 0x00
)

// layout of the D88 sector header.
const (
	sectorHeaderSize = 0x10
	sectorC          = 0x00
	sectorH          = 0x01
	sectorR          = 0x02
	sectorN          = 0x03
	sectorCount      = 0x04
	sectorDataSize   = 0x0e
)

type sectorID struct {
	c, h, r uint8
}

// Image is a disk image in the D88 format.
type Image struct {
	path string
	data []uint8

	// offset into data of the sector data for each sector in the image
	sectors map[sectorID]int
	sizes   map[sectorID]int

	modified bool
}

// OpenImage reads and indexes the D88 file at path.
func OpenImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ImageError, err)
	}

	img := &Image{
		path:    path,
		data:    data,
		sectors: make(map[sectorID]int),
		sizes:   make(map[sectorID]int),
	}

	err = img.index()
	if err != nil {
		return nil, curated.Errorf(UnsupportedImage, err)
	}

	return img, nil
}

// index every sector in the image.
func (img *Image) index() error {
	if len(img.data) < headerSize {
		return curated.Errorf(HeaderTooShort)
	}

	size := int(binary.LittleEndian.Uint32(img.data[headerDiskSize:]))
	if size > len(img.data) {
		return curated.Errorf(SizeMismatch, size, len(img.data))
	}

	for t := 0; t < maxTracks; t++ {
		offset := int(binary.LittleEndian.Uint32(img.data[headerTracks+t*4:]))
		if offset == 0 {
			continue
		}
		if offset < headerSize || offset >= size {
			return curated.Errorf(TrackOutOfRange, t, offset)
		}

		count := 1
		for s := 0; s < count; s++ {
			if offset+sectorHeaderSize > size {
				return curated.Errorf(SectorOutOfRange, "header", t)
			}
			h := img.data[offset : offset+sectorHeaderSize]
			if s == 0 {
				count = int(binary.LittleEndian.Uint16(h[sectorCount:]))
			}
			n := int(binary.LittleEndian.Uint16(h[sectorDataSize:]))
			if offset+sectorHeaderSize+n > size {
				return curated.Errorf(SectorOutOfRange, "data", t)
			}
			id := sectorID{c: h[sectorC], h: h[sectorH], r: h[sectorR]}
			img.sectors[id] = offset + sectorHeaderSize
			img.sizes[id] = n
			offset += sectorHeaderSize + n
		}
	}

	return nil
}

// Path of the image file.
func (img *Image) Path() string {
	return img.path
}

// Protected returns true if the image is write protected.
func (img *Image) Protected() bool {
	return img.data[headerProtect]&protectFlag == protectFlag
}

// SetProtect sets or clears the write protection of the image. The change is
// saved with the image.
func (img *Image) SetProtect(protect bool) {
	if protect {
		img.data[headerProtect] |= protectFlag
	} else {
		img.data[headerProtect] &^= protectFlag
	}
	img.modified = true
}

// ReadSector returns the data of the sector. The returned slice must not be
// retained.
func (img *Image) ReadSector(c, h, r uint8) ([]uint8, error) {
	id := sectorID{c: c, h: h, r: r}
	offset, ok := img.sectors[id]
	if !ok {
		return nil, curated.Errorf(SectorNotFound, c, h, r)
	}
	return img.data[offset : offset+img.sizes[id]], nil
}

// WriteSector copies data into the sector. Data beyond the size of the sector
// is ignored.
func (img *Image) WriteSector(c, h, r uint8, data []uint8) error {
	if img.Protected() {
		return curated.Errorf(WriteProtected, filepath.Base(img.path))
	}
	id := sectorID{c: c, h: h, r: r}
	offset, ok := img.sectors[id]
	if !ok {
		return curated.Errorf(SectorNotFound, c, h, r)
	}
	copy(img.data[offset:offset+img.sizes[id]], data)
	img.modified = true
	return nil
}

// Modified returns true if the image has changed since it was opened or last
// saved.
func (img *Image) Modified() bool {
	return img.modified
}

// Save the image to its file if it has been modified.
func (img *Image) Save() error {
	if !img.modified {
		return nil
	}
	err := os.WriteFile(img.path, img.data, 0o644)
	if err != nil {
		return curated.Errorf(ImageError, err)
	}
	img.modified = false
	return nil
}

// CreateBlank writes a formatted 2D image with every sector filled with 0xff.
// The name is stored in the image header.
func CreateBlank(path string, name string) error {
	const trackSize = Sectors * (sectorHeaderSize + SectorSize)
	size := headerSize + Cylinders*Heads*trackSize

	data := make([]uint8, size)
	copy(data[:16], name)
	data[headerMedia] = media2D
	binary.LittleEndian.PutUint32(data[headerDiskSize:], uint32(size))

	offset := headerSize
	for c := 0; c < Cylinders; c++ {
		for h := 0; h < Heads; h++ {
			t := c*Heads + h
			binary.LittleEndian.PutUint32(data[headerTracks+t*4:], uint32(offset))
			for r := 1; r <= Sectors; r++ {
				s := data[offset:]
				s[sectorC] = uint8(c)
				s[sectorH] = uint8(h)
				s[sectorR] = uint8(r)
				s[sectorN] = 1
				binary.LittleEndian.PutUint16(s[sectorCount:], Sectors)
				binary.LittleEndian.PutUint16(s[sectorDataSize:], SectorSize)
				for i := 0; i < SectorSize; i++ {
					s[sectorHeaderSize+i] = 0xff
				}
				offset += sectorHeaderSize + SectorSize
			}
		}
	}

	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return curated.Errorf(ImageError, err)
	}
	return nil
}
