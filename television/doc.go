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

// Package television drives the video side of the emulation. It pulls
// scanlines from the CRT controller in batches, once per frame and at a fixed
// frame rate, and hands each complete frame to the registered PixelRenderers.
//
// The television also produces one frame's worth of audio samples for every
// frame and hands them to any registered AudioMixers. Live audio output does
// not go through the television.
//
// The television runs in its own goroutine, separate from the CPU. It must
// not touch machine state other than through the Source and AudioSource
// interfaces.
package television
