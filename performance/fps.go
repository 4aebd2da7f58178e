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

package performance

import (
	"github.com/jetsetilly/gopher8001/hardware"
	"github.com/jetsetilly/gopher8001/television"
)

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / television.FramesPerSecond
	return fps, accuracy
}

// CalcClock takes the number of CPU cycles and duration (in seconds) and
// returns the effective clock rate in MHz and that rate as a percentage of the
// clock rate of the real machine.
func CalcClock(cycles int64, duration float64) (mhz float64, relative float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration
	return hz / 1000000, 100 * hz / hardware.ClockRate
}
