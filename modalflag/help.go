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

package modalflag

import (
	"flag"
	"fmt"
	"strings"
)

// help prints the flags and sub-modes of the current mode.
func (md *Modes) help() {
	s := &strings.Builder{}

	var n int
	md.flags.VisitAll(func(f *flag.Flag) {
		n++
	})

	if n == 0 && len(md.subModes) == 0 && md.additionalHelp == "" {
		s.WriteString("No help available")
		if len(md.path) > 0 {
			fmt.Fprintf(s, " for %s", md.Path())
		}
		s.WriteString("\n")
		md.output().Write([]byte(s.String()))
		return
	}

	if len(md.path) > 0 {
		fmt.Fprintf(s, "Usage of %s mode:\n", md.Path())
	} else {
		s.WriteString("Usage:\n")
	}

	md.flags.VisitAll(func(f *flag.Flag) {
		name, usage := flag.UnquoteUsage(f)
		fmt.Fprintf(s, "  -%s", f.Name)
		if name != "" {
			fmt.Fprintf(s, " %s", name)
		}
		fmt.Fprintf(s, "\n    \t%s", usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			fmt.Fprintf(s, " (default %s)", f.DefValue)
		}
		s.WriteString("\n")
	})

	if len(md.subModes) > 0 {
		fmt.Fprintf(s, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(s, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(s, "\n%s\n", md.additionalHelp)
	}

	md.output().Write([]byte(s.String()))
}
