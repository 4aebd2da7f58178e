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

// Package commands lists the requests that can be made of a running machine.
// A command suspends the machine, is carried out and then the machine
// resumes.
package commands

import "fmt"

// Command is a request made of the machine.
type Command int

// List of valid Command values.
const (
	Menu Command = 0x1000 + iota
	HotStart
	Reset
	ColdBoot
	Restart
	PCG
	TapeRewind
	TapeEOT
	Mute
	VolumeUp
	VolumeDown
	N80
	BasicOnRAM
)

// Continue is returned by a menu that was cancelled. The machine continues
// without doing anything.
const Continue Command = -1

// Speed is the first of the speed commands. Speed+n selects speed n, where
// zero is no-wait.
const Speed Command = 0x2000

// Number of speed settings.
const NumSpeeds = 10

// SetSpeed returns the command that selects the speed.
func SetSpeed(n int) Command {
	return Speed + Command(n)
}

// IsSpeed returns the speed number if the command is a speed command.
func (cmd Command) IsSpeed() (int, bool) {
	if cmd >= Speed && cmd < Speed+NumSpeeds {
		return int(cmd - Speed), true
	}
	return 0, false
}

func (cmd Command) String() string {
	switch cmd {
	case Continue:
		return "continue"
	case Menu:
		return "menu"
	case HotStart:
		return "hot start"
	case Reset:
		return "reset"
	case ColdBoot:
		return "cold boot"
	case Restart:
		return "restart"
	case PCG:
		return "pcg"
	case TapeRewind:
		return "tape rewind"
	case TapeEOT:
		return "tape eot"
	case Mute:
		return "mute"
	case VolumeUp:
		return "volume up"
	case VolumeDown:
		return "volume down"
	case N80:
		return "n80"
	case BasicOnRAM:
		return "basic on ram"
	}
	if n, ok := cmd.IsSpeed(); ok {
		return fmt.Sprintf("speed %d", n)
	}
	return fmt.Sprintf("unknown command (%#04x)", int(cmd))
}

// Commander is implemented by types that accept commands.
type Commander interface {
	Command(cmd Command)
}
