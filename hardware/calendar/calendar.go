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

// Package calendar emulates the uPD1990AC calendar clock.
//
// The clock is driven through two ports. Port 0x10 latches the command (bits
// 0 to 2) and the serial data in (bit 3). Port 0x40 carries the strobe (bit
// 1) and the shift clock (bit 2). The serial data out is read through bit 4
// of port 0x40.
//
// Time is kept as an offset from the host clock. Setting the time changes
// the offset and reading the time loads the shift register from the host
// clock plus the offset.
package calendar

import (
	"time"
)

// Commands latched by a write to port 0x10.
const (
	CmdHold  = 0
	CmdShift = 1
	CmdSet   = 2
	CmdRead  = 3
)

// Bits of the two ports.
const (
	bitDataIn = 0x08
	bitStrobe = 0x02
	bitClock  = 0x04
)

// the shift register is 40 bits long
const registerBits = 40

// Calendar is the uPD1990AC.
type Calendar struct {
	now    func() time.Time
	offset time.Duration

	command uint8
	dataIn  bool

	strobe bool
	clock  bool

	mode  uint8
	shift uint64
	out   bool
}

// NewCalendar is the preferred method of initialisation for the Calendar
// type. The host clock is time.Now.
func NewCalendar() *Calendar {
	return NewCalendarWithClock(time.Now)
}

// NewCalendarWithClock returns a new Calendar using an alternative host
// clock.
func NewCalendarWithClock(now func() time.Time) *Calendar {
	return &Calendar{
		now:  now,
		mode: CmdHold,
	}
}

// WriteCommand handles the write to port 0x10.
func (cal *Calendar) WriteCommand(data uint8) {
	cal.command = data & 0x07
	cal.dataIn = data&bitDataIn == bitDataIn
}

// WriteControl handles the write to port 0x40. The strobe and the clock act on
// their rising edges.
func (cal *Calendar) WriteControl(data uint8) {
	strobe := data&bitStrobe == bitStrobe
	clock := data&bitClock == bitClock

	if strobe && !cal.strobe {
		cal.execute()
	}
	if clock && !cal.clock && cal.mode == CmdShift {
		cal.shift >>= 1
		if cal.dataIn {
			cal.shift |= 1 << (registerBits - 1)
		}
		cal.out = cal.shift&0x01 == 0x01
	}

	cal.strobe = strobe
	cal.clock = clock
}

func (cal *Calendar) execute() {
	switch cal.command {
	case CmdHold:
		cal.mode = CmdHold
	case CmdShift:
		cal.mode = CmdShift
		cal.out = cal.shift&0x01 == 0x01
	case CmdSet:
		cal.mode = CmdHold
		cal.set()
	case CmdRead:
		cal.mode = CmdHold
		cal.shift = encode(cal.Now())
		cal.out = cal.shift&0x01 == 0x01
	}
}

// DataOut returns the state of the serial data out line.
func (cal *Calendar) DataOut() bool {
	return cal.out
}

// Now returns the time as kept by the calendar.
func (cal *Calendar) Now() time.Time {
	return cal.now().Add(cal.offset)
}

func (cal *Calendar) set() {
	now := cal.now()
	t, ok := decode(cal.shift, now.Year(), now.Location())
	if !ok {
		return
	}
	cal.offset = t.Sub(now)
}

func bcd(v int) uint64 {
	return uint64((v/10)<<4 | v%10)
}

func unbcd(v uint64) int {
	return int(v>>4&0x0f)*10 + int(v&0x0f)
}

// encode the time in the layout of the shift register, least significant
// bit first: seconds, minutes, hours and day of the month in BCD, then the day
// of the week and the month in binary.
func encode(t time.Time) uint64 {
	return bcd(t.Second()) |
		bcd(t.Minute())<<8 |
		bcd(t.Hour())<<16 |
		bcd(t.Day())<<24 |
		uint64(t.Weekday())<<32 |
		uint64(t.Month())<<36
}

// decode the shift register into a time in the year given. The day of the
// week is ignored. Returns false if the register does not hold a valid time.
func decode(r uint64, year int, loc *time.Location) (time.Time, bool) {
	sec := unbcd(r & 0xff)
	minute := unbcd(r >> 8 & 0xff)
	hour := unbcd(r >> 16 & 0xff)
	day := unbcd(r >> 24 & 0xff)
	month := int(r >> 36 & 0x0f)

	if sec > 59 || minute > 59 || hour > 23 || day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc), true
}
