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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopher8001/hardware/commands"
)

// NoWait is the speed setting that runs the machine as fast as possible.
const NoWait = 0

// NormalSpeed is the speed setting of a real PC-8001.
const NormalSpeed = 5

// ClockRate is the number of CPU cycles per second at the normal speed.
const ClockRate = 4000000

// divisors for each speed setting. the divisor of the normal speed is six.
// larger divisors are faster
var divisors = [commands.NumSpeeds]int64{0, 22, 13, 9, 7, 6, 5, 4, 3, 2}

// Divisor returns the pacing divisor for the speed setting. Returns zero for
// the no-wait setting and for settings out of range.
func Divisor(speed int) int {
	if speed < 0 || speed >= len(divisors) {
		return 0
	}
	return int(divisors[speed])
}

// EmulatedTime returns the time taken by the number of clock cycles at the
// speed setting. The time is zero for the no-wait setting.
func EmulatedTime(cycles int64, speed int) time.Duration {
	d := int64(Divisor(speed))
	if d == 0 {
		return 0
	}
	return time.Duration(cycles * 6 * int64(time.Microsecond) / (4 * d))
}

// the pacer sleeps when the machine is ahead of real time by more than
// sleepThreshold and gives up trying to catch up when it is behind by more
// than resyncThreshold.
const (
	sleepThreshold  = 2 * time.Millisecond
	resyncThreshold = 100 * time.Millisecond
)

// pacer keeps the emulation running at the selected speed.
type pacer struct {
	speed int

	// cycles since origin
	origin time.Time
	cycles int64

	// replaced during testing
	now   func() time.Time
	sleep func(time.Duration)
}

func (p *pacer) setSpeed(speed int) {
	if speed < 0 || speed >= len(divisors) {
		speed = NormalSpeed
	}
	p.speed = speed
	p.resync()
}

// resync the emulated time with the real time.
func (p *pacer) resync() {
	if p.now == nil {
		p.now = time.Now
		p.sleep = time.Sleep
	}
	p.origin = p.now()
	p.cycles = 0
}

// pace is called after a number of cycles have been emulated.
func (p *pacer) pace(cycles int) {
	if p.speed == NoWait {
		return
	}

	p.cycles += int64(cycles)
	ahead := EmulatedTime(p.cycles, p.speed) - p.now().Sub(p.origin)

	switch {
	case ahead > sleepThreshold:
		p.sleep(ahead)
	case ahead < -resyncThreshold:
		p.resync()
	}
}
