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

package keyboard

import (
	"github.com/jetsetilly/gopher8001/hardware/commands"
)

// The first host function key used for the emulator's hot-keys. Function keys
// below this are passed to the machine.
const FirstHotKey = 4

// HotKey returns the command for the host function key, with or without the
// shift key. Returns false if the function key is not a hot-key.
//
//	F12     menu
//	F11     reset (shift: cold boot)
//	F10     hot start
//	F9      PCG on/off
//	F8      mute
//	F7      volume up
//	F6      volume down
//	F5      tape rewind
//	F4      tape to end
func HotKey(function int, shift bool) (commands.Command, bool) {
	switch function {
	case 12:
		return commands.Menu, true
	case 11:
		if shift {
			return commands.ColdBoot, true
		}
		return commands.Reset, true
	case 10:
		return commands.HotStart, true
	case 9:
		return commands.PCG, true
	case 8:
		return commands.Mute, true
	case 7:
		return commands.VolumeUp, true
	case 6:
		return commands.VolumeDown, true
	case 5:
		return commands.TapeRewind, true
	case 4:
		return commands.TapeEOT, true
	}
	return 0, false
}

// SpeedKey returns the command for a digit pressed with the host's Alt key.
// Zero selects no-wait.
func SpeedKey(digit int) (commands.Command, bool) {
	if digit < 0 || digit >= commands.NumSpeeds {
		return 0, false
	}
	return commands.SetSpeed(digit), true
}
