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

// Package curated is a helper package for errors that the emulator expects to
// happen: a ROM file that is missing, a disk image that can't be opened, a
// settings file that doesn't exist yet.
//
// Curated errors are created with Errorf(). The first argument is a pattern
// which identifies the error, rather than just formatting it:
//
//	const ROMSize = "memory: %s is %d bytes, expected %d"
//
//	err := curated.Errorf(ROMSize, "PC-8001.ROM", n, 0x6000)
//
//	if curated.Is(err, ROMSize) {
//		...
//	}
//
// Has() checks for the pattern anywhere in the chain of wrapped curated
// errors. IsAny() answers whether an error was created by Errorf() at all,
// which is a useful way of separating expected errors from unexpected ones.
//
// The Error() implementation removes duplicate adjacent parts of the message.
// This means a package can wrap an error with its own prefix without worrying
// if the inner error already carries the same prefix.
//
//	e := curated.Errorf("tape: %v", curated.Errorf("tape: file not found"))
//	fmt.Println(e)
//
// prints "tape: file not found".
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can see through them to any wrapped error.
package curated
