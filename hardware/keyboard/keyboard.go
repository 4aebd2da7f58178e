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

// Package keyboard emulates the key matrix of the PC-8001 and maps the host's
// function keys to machine commands.
//
// The matrix is ten rows of eight keys, read through ports 0x00 to 0x09. A
// pressed key reads as a zero bit. Keys are pressed and released by the GUI
// goroutine and read by the CPU goroutine, so every row is an atomic value.
package keyboard

import (
	"sync/atomic"
)

// Rows is the number of rows in the key matrix.
const Rows = 10

// Key is a position in the key matrix.
type Key struct {
	Row int
	Bit int
}

// Keyboard is the key matrix.
type Keyboard struct {
	rows [Rows]atomic.Uint32

	padEnter  atomic.Bool
	suspended atomic.Bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard() *Keyboard {
	kb := &Keyboard{}
	kb.Reset()
	return kb
}

// Reset releases every key.
func (kb *Keyboard) Reset() {
	for i := range kb.rows {
		kb.rows[i].Store(0xff)
	}
}

// Row returns the state of the row. A pressed key is a zero bit. Rows outside
// the matrix read as zero.
func (kb *Keyboard) Row(n int) uint8 {
	if n < 0 || n >= Rows {
		return 0x00
	}
	return uint8(kb.rows[n].Load())
}

func (kb *Keyboard) update(k Key, pressed bool) {
	if k.Row < 0 || k.Row >= Rows || k.Bit < 0 || k.Bit > 7 {
		return
	}
	row := &kb.rows[k.Row]
	for {
		old := row.Load()
		v := old | 0x01<<k.Bit
		if pressed {
			v = old &^ (0x01 << k.Bit)
		}
		if row.CompareAndSwap(old, v) {
			return
		}
	}
}

// Press the key. Ignored while the keyboard is suspended.
func (kb *Keyboard) Press(k Key) {
	if kb.suspended.Load() {
		return
	}
	kb.update(k, true)
}

// Release the key.
func (kb *Keyboard) Release(k Key) {
	kb.update(k, false)
}

// Suspend stops the keyboard from taking key presses. All keys are released
// when the keyboard is suspended.
func (kb *Keyboard) Suspend(suspended bool) {
	kb.suspended.Store(suspended)
	if suspended {
		kb.Reset()
	}
}

// SetPadEnter changes the meaning of the enter key of the keypad. When true
// it is the keypad's equals key, otherwise it is RETURN.
func (kb *Keyboard) SetPadEnter(padEnter bool) {
	kb.padEnter.Store(padEnter)
}

// PadEnter returns the key to use for the host's keypad enter key.
func (kb *Keyboard) PadEnter() Key {
	if kb.padEnter.Load() {
		return KeyPadEquals
	}
	return KeyReturn
}
