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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8001/hardware/keyboard"
)

// mapping of a host key to the key matrix. Some PC-8001 keys need the shift key
// and some host keys change meaning with the settings.
type mapping struct {
	key      keyboard.Key
	shift    bool
	padEnter bool
}

// keys is laid out for a US host keyboard. Positions follow the PC-8001 where
// the legends differ.
var keys = map[string]mapping{
	"Return":    {key: keyboard.KeyReturn},
	"Space":     {key: keyboard.KeySpace},
	"Escape":    {key: keyboard.KeyEsc},
	"Backspace": {key: keyboard.KeyDelete},
	"Delete":    {key: keyboard.KeyDelete},
	"Insert":    {key: keyboard.KeyDelete, shift: true},
	"Home":      {key: keyboard.KeyHome},
	"End":       {key: keyboard.KeyStop},
	"Pause":     {key: keyboard.KeyStop},
	"Up":        {key: keyboard.KeyUp},
	"Right":     {key: keyboard.KeyRight},
	"Down":      {key: keyboard.KeyUp, shift: true},
	"Left":      {key: keyboard.KeyRight, shift: true},
	"F1":        {key: keyboard.KeyF1},
	"F2":        {key: keyboard.KeyF2},
	"F3":        {key: keyboard.KeyF3},
	"PageUp":    {key: keyboard.KeyF4},
	"PageDown":  {key: keyboard.KeyF5},

	"Left Shift":  {key: keyboard.KeyShift},
	"Right Shift": {key: keyboard.KeyShift},
	"Left Ctrl":   {key: keyboard.KeyCtrl},
	"Right Ctrl":  {key: keyboard.KeyCtrl},
	"Left Alt":    {key: keyboard.KeyGraph},
	"Right Alt":   {key: keyboard.KeyKana},

	"-":  {key: keyboard.KeyMinus},
	"=":  {key: keyboard.KeyCaret},
	"`":  {key: keyboard.KeyYen},
	"[":  {key: keyboard.KeyAt},
	"]":  {key: keyboard.KeyLeftBracket},
	"\\": {key: keyboard.KeyRightBracket},
	";":  {key: keyboard.KeySemicolon},
	"'":  {key: keyboard.KeyColon},
	",":  {key: keyboard.KeyComma},
	".":  {key: keyboard.KeyPeriod},
	"/":  {key: keyboard.KeySlash},

	"Keypad *":     {key: keyboard.KeyPadStar},
	"Keypad +":     {key: keyboard.KeyPadPlus},
	"Keypad =":     {key: keyboard.KeyPadEquals},
	"Keypad ,":     {key: keyboard.KeyPadComma},
	"Keypad .":     {key: keyboard.KeyPadPeriod},
	"Keypad -":     {key: keyboard.KeyMinus},
	"Keypad /":     {key: keyboard.KeySlash},
	"Keypad Enter": {padEnter: true},
}

var letters = [26]keyboard.Key{
	keyboard.KeyA, keyboard.KeyB, keyboard.KeyC, keyboard.KeyD, keyboard.KeyE,
	keyboard.KeyF, keyboard.KeyG, keyboard.KeyH, keyboard.KeyI, keyboard.KeyJ,
	keyboard.KeyK, keyboard.KeyL, keyboard.KeyM, keyboard.KeyN, keyboard.KeyO,
	keyboard.KeyP, keyboard.KeyQ, keyboard.KeyR, keyboard.KeyS, keyboard.KeyT,
	keyboard.KeyU, keyboard.KeyV, keyboard.KeyW, keyboard.KeyX, keyboard.KeyY,
	keyboard.KeyZ,
}

var digits = [10]keyboard.Key{
	keyboard.Key0, keyboard.Key1, keyboard.Key2, keyboard.Key3, keyboard.Key4,
	keyboard.Key5, keyboard.Key6, keyboard.Key7, keyboard.Key8, keyboard.Key9,
}

var padDigits = [10]keyboard.Key{
	keyboard.KeyPad0, keyboard.KeyPad1, keyboard.KeyPad2, keyboard.KeyPad3, keyboard.KeyPad4,
	keyboard.KeyPad5, keyboard.KeyPad6, keyboard.KeyPad7, keyboard.KeyPad8, keyboard.KeyPad9,
}

func init() {
	for i, k := range letters {
		keys[string(rune('A'+i))] = mapping{key: k}
	}
	for i, k := range digits {
		keys[strconv.Itoa(i)] = mapping{key: k}
	}
	for i, k := range padDigits {
		keys["Keypad "+strconv.Itoa(i)] = mapping{key: k}
	}
}

// lookup the mapping for the host key name.
func lookup(name string) (mapping, bool) {
	m, ok := keys[name]
	return m, ok
}

// functionKey returns the number of the host function key.
func functionKey(name string) (int, bool) {
	n, ok := strings.CutPrefix(name, "F")
	if !ok {
		return 0, false
	}
	f, err := strconv.Atoi(n)
	if err != nil || f < 1 || f > 12 {
		return 0, false
	}
	return f, true
}

// digit returns the value of a host digit key. Both the main keyboard and the
// keypad digits count.
func digit(name string) (int, bool) {
	name = strings.TrimPrefix(name, "Keypad ")
	if len(name) != 1 || name[0] < '0' || name[0] > '9' {
		return 0, false
	}
	return int(name[0] - '0'), true
}
