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

// Package terminal reads single key presses from the controlling terminal
// and turns them into machine commands. It is used in headless mode, where
// there is no window to take keyboard input.
//
// The terminal is put into cbreak mode while it is open. Close() restores the
// previous mode.
//
//	m		menu
//	r		reset
//	R		cold boot
//	h		hot start
//	x		restart
//	p		PCG on/off
//	b		BASIC on RAM
//	M		mute
//	+ -		volume up/down
//	w		tape rewind
//	e		tape to end
//	0-9		speed (0 is no-wait)
//	q		quit
package terminal
