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

// Package paths contains functions to prepare paths to gopher8001 resources:
// the ROM images, the settings file and the disk, tape and n80 directories.
//
// The ResourcePath() function prepends the base resource directory to the
// supplied resource path.
//
//	p := paths.ResourcePath("disk", "game.d88")
//
// The base resource directory is ".gopher8001" in the current directory if it
// exists, otherwise it is ".gopher8001" in the user's home directory. It can
// be overridden with SetBase(), which is what the -resources command line
// flag does.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".gopher8001"

// resource directories that are created by EnsureDirs()
var subDirs = []string{"disk", "tape", "n80"}

var override atomic.Value // string

// SetBase overrides the base resource directory.
func SetBase(dir string) {
	override.Store(dir)
}

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource directory.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// EnsureDirs creates the base resource directory and the disk, tape and n80
// subdirectories if they don't already exist.
func EnsureDirs() error {
	for _, d := range subDirs {
		if err := os.MkdirAll(ResourcePath(d), 0o700); err != nil {
			return err
		}
	}
	return nil
}

func getBasePath() string {
	if o, ok := override.Load().(string); ok && o != "" {
		return o
	}

	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(home, baseResourcePath)
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Used for screenshots and audio
// recordings.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// or if name is empty:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(name)
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
