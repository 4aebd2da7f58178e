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


// Package performance measures how fast the emulation runs.
//
// Check() runs a machine with pacing turned off for a fixed duration of time,
// after a short lead time, and reports the frame rate of the television and
// the effective clock rate of the CPU. The run can be profiled.
//
// RunProfiler() wraps any function with the CPU, heap and trace profilers.
// It doesn't limit how long the function runs for.
//
// CalcFPS() and CalcClock() turn frame and cycle counts into rates, along
// with an accuracy value compared to the real machine. They are aggregate
// measures and not meant for live monitoring.
package performance
