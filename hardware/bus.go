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

package hardware

import (
	"github.com/jetsetilly/gopher8001/hardware/memory"
	"github.com/jetsetilly/gopher8001/hardware/ports"
)

// bus implements the cpu.Bus interface. Memory accesses go to the banking
// unit and I/O accesses go to the port router.
type bus struct {
	mem *memory.Memory
	io  *ports.Router
}

func (b *bus) Read(address uint16) uint8 {
	return b.mem.Read(address)
}

func (b *bus) Write(address uint16, data uint8) {
	b.mem.Write(address, data)
}

func (b *bus) In(port uint8) uint8 {
	return b.io.In(port)
}

func (b *bus) Out(port uint8, data uint8) {
	b.io.Out(port, data)
}
