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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse(). Flags
// must be added between the two calls:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "HEADLESS")
//	scale := md.AddInt("scale", 2, "window scale")
//	r, err := md.Parse()
//
// After parsing, Mode() returns the selected mode. The first sub-mode is the
// default and is selected if the first argument after the flags is not a
// sub-mode. Mode names are case insensitive.
//
// Each mode can have its own flags and sub-modes. Call NewMode() and then add
// the flags for the mode and call Parse() again:
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		r, err := md.Parse()
//		...
//	}
//
// Arguments that are neither flags nor mode selectors are available with
// RemainingArgs() and GetArg().
//
// A help flag (-help or -h) prints the flags of the current mode, the
// available sub-modes and any additional help. Parse() then returns
// ParseHelp.
package modalflag
