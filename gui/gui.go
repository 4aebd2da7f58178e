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

// Package gui is the bridge between a host user interface and the emulated
// machine. Host keyboard events are described by the EventKeyboard type and
// passed to an Input, which translates them into key matrix changes or
// machine commands.
//
// The package does not depend on any particular GUI toolkit. The key names
// are those used by SDL.
package gui

// KeyMod identifies the modifier held with a key.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is a host key press or release.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// EventWindowClose is sent when the host window is closed.
type EventWindowClose struct{}
