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

// The key matrix. Rows 0 and 1 are the keypad.
var (
	KeyPad0      = Key{0, 0}
	KeyPad1      = Key{0, 1}
	KeyPad2      = Key{0, 2}
	KeyPad3      = Key{0, 3}
	KeyPad4      = Key{0, 4}
	KeyPad5      = Key{0, 5}
	KeyPad6      = Key{0, 6}
	KeyPad7      = Key{0, 7}
	KeyPad8      = Key{1, 0}
	KeyPad9      = Key{1, 1}
	KeyPadStar   = Key{1, 2}
	KeyPadPlus   = Key{1, 3}
	KeyPadEquals = Key{1, 4}
	KeyPadComma  = Key{1, 5}
	KeyPadPeriod = Key{1, 6}
	KeyReturn    = Key{1, 7}

	KeyAt = Key{2, 0}
	KeyA  = Key{2, 1}
	KeyB  = Key{2, 2}
	KeyC  = Key{2, 3}
	KeyD  = Key{2, 4}
	KeyE  = Key{2, 5}
	KeyF  = Key{2, 6}
	KeyG  = Key{2, 7}

	KeyH = Key{3, 0}
	KeyI = Key{3, 1}
	KeyJ = Key{3, 2}
	KeyK = Key{3, 3}
	KeyL = Key{3, 4}
	KeyM = Key{3, 5}
	KeyN = Key{3, 6}
	KeyO = Key{3, 7}

	KeyP = Key{4, 0}
	KeyQ = Key{4, 1}
	KeyR = Key{4, 2}
	KeyS = Key{4, 3}
	KeyT = Key{4, 4}
	KeyU = Key{4, 5}
	KeyV = Key{4, 6}
	KeyW = Key{4, 7}

	KeyX            = Key{5, 0}
	KeyY            = Key{5, 1}
	KeyZ            = Key{5, 2}
	KeyLeftBracket  = Key{5, 3}
	KeyYen          = Key{5, 4}
	KeyRightBracket = Key{5, 5}
	KeyCaret        = Key{5, 6}
	KeyMinus        = Key{5, 7}

	Key0 = Key{6, 0}
	Key1 = Key{6, 1}
	Key2 = Key{6, 2}
	Key3 = Key{6, 3}
	Key4 = Key{6, 4}
	Key5 = Key{6, 5}
	Key6 = Key{6, 6}
	Key7 = Key{6, 7}

	Key8          = Key{7, 0}
	Key9          = Key{7, 1}
	KeyColon      = Key{7, 2}
	KeySemicolon  = Key{7, 3}
	KeyComma      = Key{7, 4}
	KeyPeriod     = Key{7, 5}
	KeySlash      = Key{7, 6}
	KeyUnderscore = Key{7, 7}

	KeyHome   = Key{8, 0}
	KeyUp     = Key{8, 1}
	KeyRight  = Key{8, 2}
	KeyDelete = Key{8, 3}
	KeyGraph  = Key{8, 4}
	KeyKana   = Key{8, 5}
	KeyShift  = Key{8, 6}
	KeyCtrl   = Key{8, 7}

	KeyStop  = Key{9, 0}
	KeyF1    = Key{9, 1}
	KeyF2    = Key{9, 2}
	KeyF3    = Key{9, 3}
	KeyF4    = Key{9, 4}
	KeyF5    = Key{9, 5}
	KeySpace = Key{9, 6}
	KeyEsc   = Key{9, 7}
)
