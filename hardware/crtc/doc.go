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

// Package crtc emulates the uPD3301 CRT controller of the PC-8001 together
// with the DMA fed pipeline that turns VRAM into pixels.
//
// The CPU side and the video side of the controller run on different
// goroutines. The CPU goroutine writes commands and parameters and, when
// asked to, rebuilds the attribute cache from VRAM with Refresh(). The video
// goroutine pulls pixels with Render(). The two sides share a pair of frames,
// a handful of atomic flags and nothing else.
//
// The render path is allocation free and takes no locks.
package crtc
