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

package calendar_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8001/hardware/calendar"
	"github.com/jetsetilly/gopher8001/test"
)

func fixed() time.Time {
	return time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)
}

func strobe(cal *calendar.Calendar, cmd uint8) {
	cal.WriteCommand(cmd)
	cal.WriteControl(0x00)
	cal.WriteControl(0x02)
	cal.WriteControl(0x00)
}

// shiftOut reads n bits from the data out line, least significant bit first.
func shiftOut(cal *calendar.Calendar, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		if cal.DataOut() {
			v |= 1 << i
		}
		cal.WriteControl(0x04)
		cal.WriteControl(0x00)
	}
	return v
}

// shiftIn writes n bits to the data in line, least significant bit first.
func shiftIn(cal *calendar.Calendar, v uint64, n int) {
	for i := 0; i < n; i++ {
		cmd := uint8(calendar.CmdShift)
		if v&(1<<i) != 0 {
			cmd |= 0x08
		}
		cal.WriteCommand(cmd)
		cal.WriteControl(0x04)
		cal.WriteControl(0x00)
	}
}

func TestRead(t *testing.T) {
	cal := calendar.NewCalendarWithClock(fixed)

	strobe(cal, calendar.CmdRead)
	strobe(cal, calendar.CmdShift)
	v := shiftOut(cal, 40)

	test.ExpectEquality(t, v&0xff, uint64(0x26))
	test.ExpectEquality(t, v>>8&0xff, uint64(0x09))
	test.ExpectEquality(t, v>>16&0xff, uint64(0x15))
	test.ExpectEquality(t, v>>24&0xff, uint64(0x14))
	test.ExpectEquality(t, v>>32&0x0f, uint64(time.Saturday))
	test.ExpectEquality(t, v>>36&0x0f, uint64(3))
}

func TestSet(t *testing.T) {
	cal := calendar.NewCalendarWithClock(fixed)

	// 1st of December, 23:59:30
	strobe(cal, calendar.CmdShift)
	shiftIn(cal, 0x30|0x59<<8|0x23<<16|0x01<<24|0x0c<<36, 40)
	strobe(cal, calendar.CmdSet)

	now := cal.Now()
	test.ExpectEquality(t, now.Month(), time.December)
	test.ExpectEquality(t, now.Day(), 1)
	test.ExpectEquality(t, now.Hour(), 23)
	test.ExpectEquality(t, now.Minute(), 59)
	test.ExpectEquality(t, now.Second(), 30)
	test.ExpectEquality(t, now.Year(), 2026)

	// an invalid time is ignored
	strobe(cal, calendar.CmdShift)
	shiftIn(cal, 0x99, 40)
	strobe(cal, calendar.CmdSet)
	test.ExpectEquality(t, cal.Now().Month(), time.December)
}

func TestHold(t *testing.T) {
	cal := calendar.NewCalendarWithClock(fixed)
	strobe(cal, calendar.CmdRead)
	out := cal.DataOut()

	// the shift clock does nothing while holding
	cal.WriteControl(0x04)
	cal.WriteControl(0x00)
	cal.WriteControl(0x04)
	test.ExpectEquality(t, cal.DataOut(), out)
}
