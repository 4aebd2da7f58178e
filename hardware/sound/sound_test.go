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

package sound_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/jetsetilly/gopher8001/hardware/font"
	"github.com/jetsetilly/gopher8001/hardware/sound"
	"github.com/jetsetilly/gopher8001/test"
)

func newSound(t *testing.T) (*sound.Sound, *font.Font) {
	t.Helper()
	rom := make([]uint8, font.ROMSize)
	for i := range rom {
		rom[i] = uint8(i / 8)
	}
	fnt, err := font.NewFont(rom)
	test.DemandSuccess(t, err)
	fnt.Generate()
	return sound.NewSound(fnt, 8), fnt
}

func TestCounterLoad(t *testing.T) {
	snd, _ := newSound(t)

	// counter 0, low then high byte
	snd.WriteMode(0x30)
	test.ExpectEquality(t, snd.Mode(0), sound.LowHighByte)
	snd.WriteCounter(0, 0x10)
	test.ExpectEquality(t, snd.Frequency(0), 0)
	snd.WriteCounter(0, 0x00)

	// 4000000 / 16 is clamped
	test.ExpectEquality(t, snd.Frequency(0), sound.MaxFrequency)
	test.ExpectEquality(t, snd.Mode(0), sound.LowHighByte)

	snd.WriteCounter(0, 0xd0)
	snd.WriteCounter(0, 0x07)
	test.ExpectEquality(t, snd.Frequency(0), 2000)

	// counter 1, high byte only
	snd.WriteMode(0x60)
	snd.WriteCounter(1, 0x10)
	test.ExpectEquality(t, snd.Frequency(1), 4000000/0x1000)

	// zero divisor is silence
	snd.WriteMode(0x50)
	snd.WriteCounter(1, 0x00)
	snd.WriteMode(0x60)
	snd.WriteCounter(1, 0x00)
	test.ExpectEquality(t, snd.Frequency(1), 0)

	// latch mode does not load
	snd.WriteMode(0x80)
	snd.WriteCounter(2, 0x10)
	test.ExpectEquality(t, snd.Frequency(2), 0)

	// there is no counter 3
	snd.WriteMode(0xf0)
	test.ExpectEquality(t, snd.Mode(2), sound.Latch)
}

func TestEnables(t *testing.T) {
	snd, _ := newSound(t)

	snd.WriteControl(0x08)
	test.ExpectSuccess(t, snd.Enabled(0))
	test.ExpectFailure(t, snd.Enabled(1))
	snd.WriteControl(0xc0)
	test.ExpectFailure(t, snd.Enabled(0))
	test.ExpectSuccess(t, snd.Enabled(1))
	test.ExpectSuccess(t, snd.Enabled(2))

	snd.Beep(true)
	test.ExpectSuccess(t, snd.Enabled(sound.Beeper))
	test.ExpectEquality(t, snd.Frequency(sound.Beeper), sound.BeepFrequency)

	snd.Reset()
	for n := 0; n < sound.NumGenerators; n++ {
		test.ExpectFailure(t, snd.Enabled(n), n)
	}
}

func TestPCGWrite(t *testing.T) {
	snd, fnt := newSound(t)
	d := fnt.Data()

	// row 2 of glyph 0x81
	snd.WriteAddress(0x0a)
	snd.WriteData(0xf0)
	snd.WriteControl(0x10)
	test.ExpectEquality(t, d[font.Origin80PCG+0x81*font.GlyphRows+2], uint8(0x81))
	snd.WriteControl(0x00)
	test.ExpectEquality(t, d[font.Origin80PCG+0x81*font.GlyphRows+2], uint8(0xf0))
	test.ExpectEquality(t, d[font.Origin40PCG+0x81*font.GlyphRows*2+2], uint8(0xff))
	test.ExpectEquality(t, d[font.Origin40PCG+0x81*font.GlyphRows*2+2+font.GlyphRows], uint8(0x00))

	// address bits 8 and 9 come from the control port. row 0 of glyph 0xa0
	snd.WriteAddress(0x00)
	snd.WriteControl(0x11)
	snd.WriteControl(0x01)
	test.ExpectEquality(t, d[font.Origin80PCG+0xa0*font.GlyphRows], uint8(0xf0))

	// both bits falling restores the row from the character set
	snd.WriteControl(0x31)
	snd.WriteControl(0x01)
	test.ExpectEquality(t, d[font.Origin80PCG+0xa0*font.GlyphRows], uint8(0xa0))
	test.ExpectEquality(t, d[font.Origin40PCG+0xa0*font.GlyphRows*2], font.Doubling[0x0a])

	// no falling edge, no write
	gen := fnt.Generation()
	snd.WriteControl(0x00)
	snd.WriteControl(0x00)
	test.ExpectEquality(t, fnt.Generation(), gen)
}

func TestVolume(t *testing.T) {
	snd, _ := newSound(t)
	test.ExpectEquality(t, snd.Volume(), 8)
	test.ExpectEquality(t, snd.Gain(), 68)

	snd.SetVolume(16)
	test.ExpectEquality(t, snd.Volume(), 8)
	snd.SetVolume(-1)
	test.ExpectEquality(t, snd.Volume(), 8)

	for i := 0; i < 20; i++ {
		snd.VolumeUp()
	}
	test.ExpectEquality(t, snd.Volume(), sound.MaxVolume)
	test.ExpectEquality(t, snd.Gain(), sound.MaxGain)

	for i := 0; i < 20; i++ {
		snd.VolumeDown()
	}
	test.ExpectEquality(t, snd.Volume(), sound.MinVolume)
	test.ExpectEquality(t, snd.Gain(), 0)

	snd.SetVolume(3)
	snd.Mute()
	test.ExpectSuccess(t, snd.Muted())
	test.ExpectEquality(t, snd.Gain(), 0)
	test.ExpectEquality(t, snd.Volume(), 3)
	snd.Mute()
	test.ExpectEquality(t, snd.Gain(), 25)

	snd.Mute()
	snd.Reset()
	test.ExpectFailure(t, snd.Muted())
	test.ExpectEquality(t, snd.Gain(), 25)
}

func samples(t *testing.T, mx *sound.Mixer, n int) []float32 {
	t.Helper()
	b := make([]byte, n*4)
	c, err := mx.Read(b)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c, len(b))

	s := make([]float32, n)
	for i := range s {
		s[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return s
}

func TestMixer(t *testing.T) {
	snd, _ := newSound(t)
	snd.SetVolume(sound.MaxVolume)
	mx := sound.NewMixer(snd, sound.SampleRate)

	// nothing enabled
	for _, s := range samples(t, mx, 16) {
		test.ExpectEquality(t, s, float32(0))
	}

	// 4000000 / 0x014d is 12012Hz. four samples per cycle at 48000Hz
	snd.WriteMode(0x30)
	snd.WriteCounter(0, 0x4d)
	snd.WriteCounter(0, 0x01)
	snd.WriteControl(0x08)

	s := samples(t, mx, 4)
	test.ExpectSuccess(t, s[0] > 0)
	test.ExpectSuccess(t, s[1] < 0)
	test.ExpectSuccess(t, s[2] < 0)
	test.ExpectEquality(t, s[0], -s[1])

	snd.Suspend(true)
	for _, s := range samples(t, mx, 16) {
		test.ExpectEquality(t, s, float32(0))
	}
	snd.Suspend(false)

	snd.Mute()
	for _, s := range samples(t, mx, 16) {
		test.ExpectEquality(t, s, float32(0))
	}
}
