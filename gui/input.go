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

package gui

import (
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/hardware/keyboard"
)

// Keyboard is the key matrix being driven. Implemented by keyboard.Keyboard.
type Keyboard interface {
	Press(keyboard.Key)
	Release(keyboard.Key)
	PadEnter() keyboard.Key
}

// Commander receives machine commands. Implemented by hardware.Machine.
type Commander interface {
	Command(commands.Command)
}

// Input translates host key events for the machine.
type Input struct {
	kb  Keyboard
	cmd Commander

	// whether the host's shift key is held. a key that needs shift must not
	// release it if it is being held
	shift bool

	// the key matrix position pressed for each held host key. the mapping can
	// change while a key is held (the pad enter setting) so we remember what
	// was pressed
	held map[string]keyboard.Key

	// called when the screenshot key is pressed. can be nil
	Screenshot func()
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(kb Keyboard, cmd Commander) *Input {
	return &Input{
		kb:   kb,
		cmd:  cmd,
		held: make(map[string]keyboard.Key),
	}
}

// HandleKeyboard handles a host key event. Returns true if the event was used.
//
// Function keys from keyboard.FirstHotKey are hot-keys and the Alt key with a
// digit sets the speed. Neither reaches the key matrix.
func (in *Input) HandleKeyboard(ev EventKeyboard) bool {
	if f, ok := functionKey(ev.Key); ok && f >= keyboard.FirstHotKey {
		if !ev.Down {
			return true
		}
		if cmd, ok := keyboard.HotKey(f, ev.Mod == KeyModShift); ok {
			in.cmd.Command(cmd)
		}
		return true
	}

	if ev.Mod == KeyModAlt {
		if d, ok := digit(ev.Key); ok {
			if ev.Down {
				if cmd, ok := keyboard.SpeedKey(d); ok {
					in.cmd.Command(cmd)
				}
			}
			return true
		}
	}

	if ev.Key == "PrintScreen" {
		if ev.Down && in.Screenshot != nil {
			in.Screenshot()
		}
		return true
	}

	if ev.Key == "Left Shift" || ev.Key == "Right Shift" {
		in.shift = ev.Down
	}

	m, ok := lookup(ev.Key)
	if !ok {
		return false
	}

	if ev.Down {
		k := m.key
		if m.padEnter {
			k = in.kb.PadEnter()
		}
		if m.shift {
			in.kb.Press(keyboard.KeyShift)
		}
		in.kb.Press(k)
		in.held[ev.Key] = k
		return true
	}

	k, ok := in.held[ev.Key]
	if !ok {
		return true
	}
	delete(in.held, ev.Key)
	in.kb.Release(k)
	if m.shift && !in.shift {
		in.kb.Release(keyboard.KeyShift)
	}

	return true
}

// ReleaseAll releases every held key. Should be called when the host window
// loses focus.
func (in *Input) ReleaseAll() {
	for name, k := range in.held {
		in.kb.Release(k)
		delete(in.held, name)
	}
	in.kb.Release(keyboard.KeyShift)
	in.shift = false
}
