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

// Package sound emulates the PCG-8100, which adds three square wave
// generators driven by an i8253 timer and a programmable character generator
// to the PC-8001. The beeper of the base machine is emulated alongside as a
// fourth generator.
//
// The generators are written by the CPU goroutine and read by the audio
// goroutine through the Mixer. Generator state is shared through atomics.
package sound

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher8001/hardware/font"
	"github.com/jetsetilly/gopher8001/logger"
)

// Number of generators. The first three are the PCG-8100 counters and the
// fourth is the beeper.
const (
	NumCounters   = 3
	NumGenerators = NumCounters + 1
	Beeper        = NumCounters
)

// Clock is the input clock of the i8253 counters.
const Clock = 4000000

// MaxFrequency is the highest frequency a counter will produce.
const MaxFrequency = 15000

// BeepFrequency is the fixed frequency of the beeper.
const BeepFrequency = 2400

// Volume limits.
const (
	MinVolume = 0
	MaxVolume = 15
)

// the generator gain for each volume setting. 127 is full gain.
var gainTable = [MaxVolume + 1]int32{0, 8, 17, 25, 34, 42, 51, 59, 68, 76, 85, 93, 102, 110, 119, 127}

// MaxGain is the gain at the maximum volume.
const MaxGain = 127

// LoadMode is the way a counter is loaded through its data port.
type LoadMode int

// List of valid LoadMode values.
const (
	Latch LoadMode = iota
	LowByte
	HighByte
	LowHighByte

	// the high byte phase of LowHighByte
	lowHighByte2
)

func (m LoadMode) String() string {
	switch m {
	case Latch:
		return "latch"
	case LowByte:
		return "low"
	case HighByte:
		return "high"
	case LowHighByte, lowHighByte2:
		return "low/high"
	}
	return "unknown"
}

// generator is the state of one square wave generator as seen by the mixer.
type generator struct {
	enabled   atomic.Bool
	frequency atomic.Int32
}

// Sound is the PCG-8100 and beeper.
type Sound struct {
	font *font.Font

	pcgAddress int
	pcgData    uint8

	// bits 4 and 5 of the previous control write
	bit4 bool
	bit5 bool

	modes    [NumCounters]LoadMode
	divisors [NumCounters]uint16

	generators [NumGenerators]generator

	volume int
	muted  bool
	gain   atomic.Int32

	suspended atomic.Bool
}

// NewSound is the preferred method of initialisation for the Sound type. PCG
// patches are written to the font.
func NewSound(fnt *font.Font, volume int) *Sound {
	snd := &Sound{
		font: fnt,
	}
	snd.generators[Beeper].frequency.Store(BeepFrequency)
	snd.SetVolume(volume)
	snd.Reset()
	return snd
}

// Reset disables all generators and turns off mute. The counters keep their
// divisors and modes.
func (snd *Sound) Reset() {
	for i := range snd.generators {
		snd.generators[i].enabled.Store(false)
	}
	snd.muted = false
	snd.updateGain()
}

// WriteData sets the data for the next PCG write (port 0x00).
func (snd *Sound) WriteData(data uint8) {
	snd.pcgData = data
}

// WriteAddress sets the low byte of the PCG address (port 0x01).
func (snd *Sound) WriteAddress(data uint8) {
	snd.pcgAddress = snd.pcgAddress&0xff00 | int(data)
}

// WriteControl handles writes to the control port (port 0x02).
//
// Bits 0 and 1 are bits 8 and 9 of the PCG address. A PCG write happens when
// bit 4 goes from high to low. If bit 5 goes from high to low in the same
// write then the PCG row is restored from the character ROM, otherwise the
// data byte is written. Bits 3, 6 and 7 enable the three counters.
func (snd *Sound) WriteControl(data uint8) {
	snd.pcgAddress = snd.pcgAddress&0xfcff | int(data&0x03)<<8

	bit4 := data&0x10 == 0x10
	bit5 := data&0x20 == 0x20

	if snd.bit4 && !bit4 {
		// PCG glyphs are characters 0x80 to 0xff
		address := snd.pcgAddress + 0x80*8
		if snd.bit5 && !bit5 {
			snd.font.RestorePCG(address)
		} else {
			snd.font.PatchPCG(address, snd.pcgData)
		}
	}

	snd.bit4 = bit4
	snd.bit5 = bit5

	snd.enable(0, data&0x08 == 0x08)
	snd.enable(1, data&0x40 == 0x40)
	snd.enable(2, data&0x80 == 0x80)
}

func (snd *Sound) enable(n int, enabled bool) {
	if snd.generators[n].enabled.Load() != enabled {
		snd.generators[n].enabled.Store(enabled)
	}
}

// WriteMode handles writes to the i8253 mode register (port 0x0f). Bits 6
// and 7 select the counter and bits 4 and 5 the load mode. Counter 3 does not
// exist and the write is ignored.
func (snd *Sound) WriteMode(data uint8) {
	n := int(data >> 6)
	if n >= NumCounters {
		return
	}
	snd.modes[n] = LoadMode((data >> 4) & 0x03)
}

// WriteCounter loads the divisor of a counter (ports 0x0c to 0x0e) according
// to the counter's load mode. The frequency changes once the divisor is
// completely loaded.
func (snd *Sound) WriteCounter(n int, data uint8) {
	if n < 0 || n >= NumCounters {
		return
	}

	switch snd.modes[n] {
	case LowByte:
		snd.divisors[n] = snd.divisors[n]&0xff00 | uint16(data)
		snd.updateFrequency(n)
	case HighByte:
		snd.divisors[n] = snd.divisors[n]&0x00ff | uint16(data)<<8
		snd.updateFrequency(n)
	case LowHighByte:
		snd.divisors[n] = snd.divisors[n]&0xff00 | uint16(data)
		snd.modes[n] = lowHighByte2
	case lowHighByte2:
		snd.divisors[n] = snd.divisors[n]&0x00ff | uint16(data)<<8
		snd.modes[n] = LowHighByte
		snd.updateFrequency(n)
	}
}

func (snd *Sound) updateFrequency(n int) {
	var freq int32
	if snd.divisors[n] > 0 {
		freq = Clock / int32(snd.divisors[n])
	}
	snd.generators[n].frequency.Store(min(freq, MaxFrequency))
}

// Beep turns the beeper on or off (bit 5 of port 0x40).
func (snd *Sound) Beep(on bool) {
	snd.enable(Beeper, on)
}

// SetVolume sets the volume. Values outside the range MinVolume to MaxVolume
// are ignored.
func (snd *Sound) SetVolume(volume int) {
	if volume < MinVolume || volume > MaxVolume {
		return
	}
	snd.volume = volume
	snd.updateGain()
}

// VolumeUp increases the volume by one, stopping at MaxVolume.
func (snd *Sound) VolumeUp() {
	snd.SetVolume(snd.volume + 1)
	logger.Logf(logger.Allow, "sound", "volume %d", snd.volume)
}

// VolumeDown decreases the volume by one, stopping at MinVolume.
func (snd *Sound) VolumeDown() {
	snd.SetVolume(snd.volume - 1)
	logger.Logf(logger.Allow, "sound", "volume %d", snd.volume)
}

// Volume returns the current volume setting.
func (snd *Sound) Volume() int {
	return snd.volume
}

// Mute toggles muting. The volume setting is unchanged.
func (snd *Sound) Mute() {
	snd.muted = !snd.muted
	snd.updateGain()
	if snd.muted {
		logger.Log(logger.Allow, "sound", "muted")
	} else {
		logger.Log(logger.Allow, "sound", "unmuted")
	}
}

// Muted returns true if the sound is muted.
func (snd *Sound) Muted() bool {
	return snd.muted
}

func (snd *Sound) updateGain() {
	if snd.muted {
		snd.gain.Store(0)
	} else {
		snd.gain.Store(gainTable[snd.volume])
	}
}

// Gain returns the current output gain, in the range 0 to MaxGain.
func (snd *Sound) Gain() int {
	return int(snd.gain.Load())
}

// Suspend stops sound output. The mixer produces silence while suspended.
func (snd *Sound) Suspend(suspended bool) {
	snd.suspended.Store(suspended)
}

// Enabled returns true if the generator is enabled.
func (snd *Sound) Enabled(n int) bool {
	return snd.generators[n].enabled.Load()
}

// Frequency returns the frequency of the generator in Hz. Zero means the
// generator is silent.
func (snd *Sound) Frequency(n int) int {
	return int(snd.generators[n].frequency.Load())
}

// Mode returns the load mode of the counter.
func (snd *Sound) Mode(n int) LoadMode {
	return snd.modes[n]
}
