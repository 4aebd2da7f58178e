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

// Package version reports the version of the program, taken from the build
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8001"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8001/version.number=v0.1"
var number string

// Info is the version information of the running program.
type Info struct {
	// the version number or "unreleased" for builds from a source tree with
	// vcs information. "local" if there is neither
	Version string

	// the vcs revision suffixed with "+dirty" if the source was modified.
	// "no revision information" if there is no vcs information
	Revision string

	// true if Version is a release number
	Release bool
}

var current Info

func init() {
	current = readInfo(number, debug.ReadBuildInfo)
}

func readInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var vcs, modified bool
	var revision string

	if bi, ok := read(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := Info{
		Version:  number,
		Revision: revision,
		Release:  number != "",
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision += "+dirty"
	}

	if !inf.Release {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}

// Version returns the version information of the running program.
func Version() Info {
	return current
}

// Title returns the application name with the version number, suitable for a
// window title.
func Title() string {
	if current.Release {
		return fmt.Sprintf("%s %s", ApplicationName, current.Version)
	}
	return ApplicationName
}
