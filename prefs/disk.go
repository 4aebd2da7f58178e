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
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8001/curated"
)

// Disk represents preference values as stored on disk. The file format is one
// KEY=value pair per line. Lines that aren't recognised are ignored.
type Disk struct {
	path string

	// keys in the order they were added. the file is written in this order
	keys    []string
	entries map[string]pref
}

// Sentinal errors returned by the disk functions.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	DiskError    = "prefs: %v"
)

// separator between key and value in the prefs file.
const separator = "="

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		keys:    make([]string, 0),
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Path returns the name of the file the Disk type is attached to.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// value is used in the file and is case sensitive.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.keys = append(dsk.keys, key)
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	for _, k := range dsk.keys {
		if _, err := w.WriteString(k + separator + dsk.entries[k].String() + "\n"); err != nil {
			f.Close()
			return curated.Errorf(DiskError, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. A value in the file that can't be set
// (for example, a number that isn't a number) leaves the preference as it
// was. Returns the NoPrefsFile error if the file doesn't exist.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}

		if p, ok := dsk.entries[strings.TrimSpace(key)]; ok {
			_ = p.Set(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}
