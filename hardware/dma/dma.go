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

// Package dma emulates the registers of the uPD8257 DMA controller.
//
// Only channel 2 is used by the PC-8001, to feed VRAM to the video
// controller. Transfers are not emulated. Instead, the address and enable of
// channel 2 are forwarded to the video controller whenever they change.
package dma

// NumChannels is the number of DMA channels.
const NumChannels = 4

// VideoChannel is the channel connected to the video controller.
const VideoChannel = 2

// Bits of the mode register.
const (
	ModeRotatingPriority = 0x10
	ModeExtendedWrite    = 0x20
	ModeTCStop           = 0x40
	ModeAutoLoad         = 0x80
)

// Bits of the status register. The low four bits are the terminal count flags
// of each channel.
const (
	StatusUpdate = 0x10
)

// Video is the DMA request connected to channel 2.
type Video interface {
	SetDMA(enabled bool)
	SetVRAM(address uint16)
}

type channel struct {
	address uint16
	count   uint16
}

// DMA is the uPD8257.
type DMA struct {
	video Video

	channels [NumChannels]channel
	mode     uint8
	status   uint8

	// the first/last flip-flop. it is shared by all registers
	high bool
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA(video Video) *DMA {
	return &DMA{
		video: video,
	}
}

// Reset clears the mode register and the flip-flop. Channel registers are
// unchanged.
func (d *DMA) Reset() {
	d.mode = 0x00
	d.status = 0x00
	d.high = false
	d.video.SetDMA(false)
}

func (d *DMA) load(v uint16, data uint8) uint16 {
	if d.high {
		v = v&0x00ff | uint16(data)<<8
	} else {
		v = v&0xff00 | uint16(data)
	}
	d.high = !d.high
	return v
}

// WriteAddress writes a byte of the channel's address register (even ports
// 0x60 to 0x66).
func (d *DMA) WriteAddress(ch int, data uint8) {
	if ch < 0 || ch >= NumChannels {
		return
	}
	high := d.high
	d.channels[ch].address = d.load(d.channels[ch].address, data)
	d.autoLoad(ch, high)
	if ch == VideoChannel {
		d.video.SetVRAM(d.channels[ch].address)
	}
}

// WriteCount writes a byte of the channel's terminal count register (odd
// ports 0x61 to 0x67). The top two bits of the count are the transfer mode.
func (d *DMA) WriteCount(ch int, data uint8) {
	if ch < 0 || ch >= NumChannels {
		return
	}
	high := d.high
	d.channels[ch].count = d.load(d.channels[ch].count, data)
	d.autoLoad(ch, high)
}

// in auto load mode writes to channel 2 are also written to channel 3
func (d *DMA) autoLoad(ch int, high bool) {
	if ch != VideoChannel || d.mode&ModeAutoLoad != ModeAutoLoad {
		return
	}
	d.channels[3] = d.channels[VideoChannel]
	if high {
		d.status |= StatusUpdate
	}
}

// WriteMode writes the mode register (port 0x68). Bits 0 to 3 enable the
// channels. The flip-flop is cleared.
func (d *DMA) WriteMode(data uint8) {
	d.mode = data
	d.high = false
	d.video.SetDMA(d.Enabled(VideoChannel))
}

// ReadStatus reads the status register (port 0x68). The terminal count flags
// are cleared by the read.
func (d *DMA) ReadStatus() uint8 {
	v := d.status
	d.status &= 0xf0
	return v
}

// TerminalCount flags the end of a block transfer on the channel. For the
// video channel this is the end of every frame.
func (d *DMA) TerminalCount(ch int) {
	if ch < 0 || ch >= NumChannels {
		return
	}
	d.status |= 0x01 << ch
	if ch == VideoChannel && d.mode&ModeAutoLoad == ModeAutoLoad {
		d.channels[VideoChannel] = d.channels[3]
		d.status &^= StatusUpdate
		d.video.SetVRAM(d.channels[VideoChannel].address)
	}
}

// Enabled returns true if channel is enabled in the mode register.
func (d *DMA) Enabled(ch int) bool {
	return d.mode&(0x01<<ch) != 0
}

// Mode returns the mode register.
func (d *DMA) Mode() uint8 {
	return d.mode
}

// Address returns the address register of the channel.
func (d *DMA) Address(ch int) uint16 {
	return d.channels[ch].address
}

// Count returns the terminal count register of the channel. The top two bits
// are the transfer mode.
func (d *DMA) Count(ch int) uint16 {
	return d.channels[ch].count
}
