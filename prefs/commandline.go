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

package prefs

import (
	"sort"
	"strings"
)

// Override sets preference values from a command line string of the form
// "KEY=value; KEY=value". The values are not saved to disk unless Save() is
// called afterwards.
//
// Returns the keys in the string that were not recognised, sorted and
// separated by commas.
func (dsk *Disk) Override(s string) string {
	unused := make([]string, 0)

	for _, kv := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(kv, separator)
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if p, ok := dsk.entries[key]; ok {
			_ = p.Set(value)
		} else {
			unused = append(unused, key)
		}
	}

	sort.Strings(unused)

	return strings.Join(unused, ", ")
}
