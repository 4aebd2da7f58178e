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

package tape

import "sort"

// Baud is the speed of recordings made by the PC-8001 BASIC.
const Baud = 600

// The two tones of the recording. A zero bit is a cycle of the low tone and a
// one bit is a cycle of the high tone.
const (
	lowTone  = 1200
	highTone = 2400
)

// cycles are classified as the high tone if they are shorter than the period
// of the threshold frequency.
const thresholdTone = (lowTone + highTone) / 2

// the number of bits in a frame, not counting the stop bits.
const frameBits = 9

// DecodeFSK demodulates a recording of a cassette into the bytes the USART
// would have received. Each byte is framed by a zero start bit and at least
// one stop bit. Frames with a missing stop bit are discarded.
func DecodeFSK(samples []float32, sampleRate int, baud int) []uint8 {
	if sampleRate <= 0 || baud <= 0 || len(samples) == 0 {
		return nil
	}

	// position and level of every complete cycle in the recording. a cycle
	// starts at a rising zero crossing
	var starts []int
	var levels []bool

	threshold := float64(sampleRate) / thresholdTone

	prev := -1
	for i := 1; i < len(samples); i++ {
		if samples[i-1] <= 0 && samples[i] > 0 {
			if prev >= 0 {
				starts = append(starts, prev)
				levels = append(levels, float64(i-prev) < threshold)
			}
			prev = i
		}
	}

	if len(starts) == 0 {
		return nil
	}

	// level of the line at sample t
	level := func(t int) (bool, bool) {
		i := sort.Search(len(starts), func(i int) bool { return starts[i] > t })
		if i == 0 {
			return true, false
		}
		return levels[i-1], t < prev
	}

	bitLen := float64(sampleRate) / float64(baud)

	var data []uint8

	c := 0
	for c < len(starts) {
		// look for the start of a zero bit following a one bit
		if levels[c] || (c > 0 && !levels[c-1]) {
			c++
			continue
		}

		origin := float64(starts[c])

		sample := func(bit int) (bool, bool) {
			return level(int(origin + (float64(bit)+0.5)*bitLen))
		}

		if v, ok := sample(0); !ok || v {
			c++
			continue
		}

		var b uint8
		ok := true
		for i := 0; i < 8; i++ {
			v, valid := sample(1 + i)
			if !valid {
				ok = false
				break
			}
			if v {
				b |= 0x01 << i
			}
		}

		stop, valid := sample(frameBits)
		if !ok || !valid {
			break
		}
		if !stop {
			c++
			continue
		}

		data = append(data, b)

		// continue from the middle of the stop bit
		end := int(origin + (frameBits+0.5)*bitLen)
		for c < len(starts) && starts[c] < end {
			c++
		}
	}

	return data
}
