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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/gopher8001/gui"
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/hardware/keyboard"
	"github.com/jetsetilly/gopher8001/test"
)

type commander struct {
	cmds []commands.Command
}

func (c *commander) Command(cmd commands.Command) {
	c.cmds = append(c.cmds, cmd)
}

func pressed(kb *keyboard.Keyboard, k keyboard.Key) bool {
	return kb.Row(k.Row)&(0x01<<k.Bit) == 0x00
}

func key(name string, down bool, mod gui.KeyMod) gui.EventKeyboard {
	return gui.EventKeyboard{Key: name, Down: down, Mod: mod}
}

func TestLetters(t *testing.T) {
	kb := keyboard.NewKeyboard()
	in := gui.NewInput(kb, &commander{})

	test.ExpectSuccess(t, in.HandleKeyboard(key("Q", true, gui.KeyModNone)))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyQ))
	test.ExpectSuccess(t, in.HandleKeyboard(key("Keypad 7", true, gui.KeyModNone)))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyPad7))

	test.ExpectSuccess(t, in.HandleKeyboard(key("Q", false, gui.KeyModNone)))
	test.ExpectFailure(t, pressed(kb, keyboard.KeyQ))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyPad7))

	in.ReleaseAll()
	test.ExpectFailure(t, pressed(kb, keyboard.KeyPad7))

	// unknown keys are not used
	test.ExpectFailure(t, in.HandleKeyboard(key("Menu", true, gui.KeyModNone)))
}

func TestShiftedKeys(t *testing.T) {
	kb := keyboard.NewKeyboard()
	in := gui.NewInput(kb, &commander{})

	// cursor down is shift and cursor up
	in.HandleKeyboard(key("Down", true, gui.KeyModNone))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyUp))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyShift))
	in.HandleKeyboard(key("Down", false, gui.KeyModNone))
	test.ExpectFailure(t, pressed(kb, keyboard.KeyUp))
	test.ExpectFailure(t, pressed(kb, keyboard.KeyShift))

	// a held shift key survives
	in.HandleKeyboard(key("Left Shift", true, gui.KeyModShift))
	in.HandleKeyboard(key("Left", true, gui.KeyModShift))
	in.HandleKeyboard(key("Left", false, gui.KeyModShift))
	test.ExpectFailure(t, pressed(kb, keyboard.KeyRight))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyShift))
	in.HandleKeyboard(key("Left Shift", false, gui.KeyModNone))
	test.ExpectFailure(t, pressed(kb, keyboard.KeyShift))
}

func TestPadEnter(t *testing.T) {
	kb := keyboard.NewKeyboard()
	in := gui.NewInput(kb, &commander{})

	in.HandleKeyboard(key("Keypad Enter", true, gui.KeyModNone))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyReturn))

	// the setting changes while the key is held. the release still releases
	// the key that was pressed
	kb.SetPadEnter(true)
	in.HandleKeyboard(key("Keypad Enter", false, gui.KeyModNone))
	test.ExpectFailure(t, pressed(kb, keyboard.KeyReturn))

	in.HandleKeyboard(key("Keypad Enter", true, gui.KeyModNone))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyPadEquals))
	test.ExpectFailure(t, pressed(kb, keyboard.KeyReturn))
}

func TestHotKeys(t *testing.T) {
	kb := keyboard.NewKeyboard()
	cmd := &commander{}
	in := gui.NewInput(kb, cmd)

	in.HandleKeyboard(key("F12", true, gui.KeyModNone))
	in.HandleKeyboard(key("F12", false, gui.KeyModNone))
	in.HandleKeyboard(key("F11", true, gui.KeyModShift))
	in.HandleKeyboard(key("F11", true, gui.KeyModNone))
	in.HandleKeyboard(key("3", true, gui.KeyModAlt))
	in.HandleKeyboard(key("Keypad 0", true, gui.KeyModAlt))

	test.DemandEquality(t, len(cmd.cmds), 5)
	test.ExpectEquality(t, cmd.cmds[0], commands.Menu)
	test.ExpectEquality(t, cmd.cmds[1], commands.ColdBoot)
	test.ExpectEquality(t, cmd.cmds[2], commands.Reset)
	test.ExpectEquality(t, cmd.cmds[3], commands.SetSpeed(3))
	test.ExpectEquality(t, cmd.cmds[4], commands.SetSpeed(0))

	// the key matrix is not touched by hot-keys
	test.ExpectFailure(t, pressed(kb, keyboard.Key3))

	// the lower function keys reach the machine
	in.HandleKeyboard(key("F2", true, gui.KeyModNone))
	test.ExpectSuccess(t, pressed(kb, keyboard.KeyF2))
	test.ExpectEquality(t, len(cmd.cmds), 5)
}

func TestScreenshotKey(t *testing.T) {
	in := gui.NewInput(keyboard.NewKeyboard(), &commander{})

	// nothing happens without a callback
	test.ExpectSuccess(t, in.HandleKeyboard(key("PrintScreen", true, gui.KeyModNone)))

	var n int
	in.Screenshot = func() { n++ }
	in.HandleKeyboard(key("PrintScreen", true, gui.KeyModNone))
	in.HandleKeyboard(key("PrintScreen", false, gui.KeyModNone))
	test.ExpectEquality(t, n, 1)
}
