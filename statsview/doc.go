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


// Package statsview serves live charts of the Go runtime (heap, goroutines,
// GC pauses) while the emulator is running. The charts come from
// "github.com/go-echarts/statsview".
//
// The server is only compiled in when the statsview build constraint is
// present:
//
//	go build -tags statsview .
//
// Otherwise Launch() does nothing and Available() returns false, and the
// -statsview flag is not offered on the command line. With the constraint the
// charts are at:
//
//	http://localhost:12600/debug/statsview
//
// The standard pprof endpoints are served alongside under /debug/pprof/.
package statsview
