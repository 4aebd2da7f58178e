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

// Package mix combines the output of the square wave generators into a single
// mono level.
//
// The mixing curve is the same soft curve used for sound chips with a
// resistor network output: each additional active generator adds a little
// less than the one before it.
package mix

// MaxGenerators is the number of generators that can be mixed.
const MaxGenerators = 4

var mono [MaxGenerators + 1]float32

// Mono returns the level of the mix when high generators are high, scaled by
// the gain. Gain is in the range 0 to 1.
func Mono(high int, gain float32) float32 {
	if high < 0 {
		high = 0
	} else if high > MaxGenerators {
		high = MaxGenerators
	}
	return mono[high] * gain
}

func init() {
	for n := range mono {
		mono[n] = float32(n) / MaxGenerators * (10 + MaxGenerators) / (10 + float32(n))
	}
}
