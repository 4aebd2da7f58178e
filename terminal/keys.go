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

package terminal

import (
	"github.com/jetsetilly/gopher8001/hardware/commands"
)

// Translate the key to a machine command. Returns false if the key has no
// command. The quit key is translated by the Terminal itself and not here.
func Translate(key byte) (commands.Command, bool) {
	switch key {
	case 'm':
		return commands.Menu, true
	case 'r':
		return commands.Reset, true
	case 'R':
		return commands.ColdBoot, true
	case 'h':
		return commands.HotStart, true
	case 'x':
		return commands.Restart, true
	case 'p':
		return commands.PCG, true
	case 'b':
		return commands.BasicOnRAM, true
	case 'M':
		return commands.Mute, true
	case '+', '=':
		return commands.VolumeUp, true
	case '-':
		return commands.VolumeDown, true
	case 'w':
		return commands.TapeRewind, true
	case 'e':
		return commands.TapeEOT, true
	}

	if key >= '0' && key <= '9' {
		return commands.SetSpeed(int(key - '0')), true
	}

	return 0, false
}
