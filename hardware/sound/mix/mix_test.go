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

package mix_test

import (
	"testing"

	"github.com/jetsetilly/gopher8001/hardware/sound/mix"
	"github.com/jetsetilly/gopher8001/test"
)

func TestMono(t *testing.T) {
	test.ExpectEquality(t, mix.Mono(0, 1.0), float32(0))
	test.ExpectEquality(t, mix.Mono(mix.MaxGenerators, 1.0), float32(1.0))
	test.ExpectEquality(t, mix.Mono(mix.MaxGenerators+1, 1.0), float32(1.0))
	test.ExpectEquality(t, mix.Mono(mix.MaxGenerators, 0.0), float32(0))

	// every generator adds less than the last
	prev := mix.Mono(0, 1.0)
	step := float32(1.0)
	for n := 1; n <= mix.MaxGenerators; n++ {
		v := mix.Mono(n, 1.0)
		test.ExpectSuccess(t, v > prev, n)
		test.ExpectSuccess(t, v-prev < step, n)
		step = v - prev
		prev = v
	}
}
