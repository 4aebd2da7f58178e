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

package keyboard_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/hardware/keyboard"
	"github.com/jetsetilly/gopher8001/test"
)

func TestMatrix(t *testing.T) {
	kb := keyboard.NewKeyboard()
	for r := 0; r < keyboard.Rows; r++ {
		test.ExpectEquality(t, kb.Row(r), uint8(0xff), r)
	}
	test.ExpectEquality(t, kb.Row(10), uint8(0x00))

	kb.Press(keyboard.KeyA)
	kb.Press(keyboard.KeyG)
	test.ExpectEquality(t, kb.Row(2), uint8(0x7d))

	kb.Release(keyboard.KeyA)
	test.ExpectEquality(t, kb.Row(2), uint8(0x7f))

	kb.Reset()
	test.ExpectEquality(t, kb.Row(2), uint8(0xff))

	// keys outside the matrix are ignored
	kb.Press(keyboard.Key{Row: 10, Bit: 0})
	kb.Press(keyboard.Key{Row: 0, Bit: 8})
}

func TestSuspend(t *testing.T) {
	kb := keyboard.NewKeyboard()
	kb.Press(keyboard.KeyShift)
	kb.Suspend(true)
	test.ExpectEquality(t, kb.Row(8), uint8(0xff))
	kb.Press(keyboard.KeyShift)
	test.ExpectEquality(t, kb.Row(8), uint8(0xff))
	kb.Suspend(false)
	kb.Press(keyboard.KeyShift)
	test.ExpectEquality(t, kb.Row(8), uint8(0xbf))
}

func TestConcurrentRows(t *testing.T) {
	kb := keyboard.NewKeyboard()

	var wg sync.WaitGroup
	for b := 0; b < 8; b++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				kb.Press(keyboard.Key{Row: 9, Bit: b})
				kb.Release(keyboard.Key{Row: 9, Bit: b})
			}
			kb.Press(keyboard.Key{Row: 9, Bit: b})
		}(b)
	}
	wg.Wait()

	test.ExpectEquality(t, kb.Row(9), uint8(0x00))
}

func TestPadEnter(t *testing.T) {
	kb := keyboard.NewKeyboard()
	test.ExpectEquality(t, kb.PadEnter(), keyboard.KeyReturn)
	kb.SetPadEnter(true)
	test.ExpectEquality(t, kb.PadEnter(), keyboard.KeyPadEquals)
}

func TestHotKeys(t *testing.T) {
	cmd, ok := keyboard.HotKey(11, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, commands.ColdBoot)

	cmd, ok = keyboard.HotKey(11, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, commands.Reset)

	cmd, _ = keyboard.HotKey(12, false)
	test.ExpectEquality(t, cmd, commands.Menu)

	_, ok = keyboard.HotKey(keyboard.FirstHotKey-1, false)
	test.ExpectFailure(t, ok)

	cmd, ok = keyboard.SpeedKey(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, commands.Speed)

	_, ok = keyboard.SpeedKey(10)
	test.ExpectFailure(t, ok)
}
