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

package preferences

import "github.com/jetsetilly/gopher8001/hardware/disk"

// Snapshot is a copy of the settings at a moment in time.
type Snapshot struct {
	DiskUnit      bool
	PROM          bool
	PCG           bool
	PadEnter      bool
	ExpansionUnit int
	Volume        int
	Speed         int
	Tape          string
	Disk          [disk.NumDrives]string
}

// Snapshot the current settings. Paths are resolved.
func (p *Preferences) Snapshot() Snapshot {
	s := Snapshot{
		DiskUnit:      p.DiskUnit.Get().(bool),
		PROM:          p.PROM.Get().(bool),
		PCG:           p.PCG.Get().(bool),
		PadEnter:      p.PadEnter.Get().(bool),
		ExpansionUnit: p.ExpansionUnit.Get().(int),
		Volume:        p.Volume.Get().(int),
		Speed:         p.Speed.Get().(int),
		Tape:          Resolve(p.Tape.String()),
	}
	for i := range p.Disk {
		s.Disk[i] = Resolve(p.Disk[i].String())
	}
	return s
}
