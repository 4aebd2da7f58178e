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

// Package hardware is the base package for the PC-8001 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the machine's sub-systems. The machine is created with
// NewMachine() and set running with Run(). It continues running until its
// context is cancelled or until the Restart command is received.
//
// Commands (see the commands package) are the only way of changing the
// state of a running machine from another goroutine.
//
//	m.Command(commands.Reset)
//
// The command is carried out by the machine's goroutine in between two CPU
// instructions. If a command arrives before an earlier one has been carried
// out then the earlier one is lost.
package hardware
