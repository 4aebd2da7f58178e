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

package sound

import (
	"encoding/binary"
	"math"

	"github.com/jetsetilly/gopher8001/hardware/sound/mix"
)

// SampleRate is the default sample rate of the Mixer.
const SampleRate = 48000

// Mixer produces samples from the generators of a Sound. It implements the
// io.Reader interface, producing mono float32 samples in little-endian byte
// order.
//
// A Mixer should only be used from one goroutine, normally the audio
// goroutine.
type Mixer struct {
	snd   *Sound
	rate  float64
	phase [NumGenerators]float64
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer(snd *Sound, sampleRate int) *Mixer {
	return &Mixer{
		snd:  snd,
		rate: float64(sampleRate),
	}
}

// Sample returns the next sample. Samples are centred on zero.
func (mx *Mixer) Sample() float32 {
	if mx.snd.suspended.Load() {
		return 0
	}

	var active, high int
	for i := range mx.snd.generators {
		g := &mx.snd.generators[i]
		if !g.enabled.Load() {
			continue
		}
		f := g.frequency.Load()
		if f <= 0 {
			continue
		}

		active++

		mx.phase[i] += float64(f) / mx.rate
		if mx.phase[i] >= 1.0 {
			mx.phase[i] -= math.Floor(mx.phase[i])
		}
		if mx.phase[i] < 0.5 {
			high++
		}
	}

	gain := float32(mx.snd.gain.Load()) / MaxGain
	return mix.Mono(high, gain) - mix.Mono(active, gain)/2
}

// Read implements the io.Reader interface.
func (mx *Mixer) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(mx.Sample()))
	}
	return n * 4, nil
}
