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

// Package digest is used to create a hash of the video and audio output of
// the television. Each digest is chained, meaning that the hash of a frame
// depends on the hash of every frame before it. Two runs with the same
// digest produced the same output frame for frame.
//
// Useful for regression testing, and for quickly checking that two builds of
// the emulator behave identically.
package digest

// Digest implementations compute a hash of the data passed to them.
type Digest interface {
	Hash() string
	ResetDigest()
}
