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

// Package preferences holds the settings of the emulated machine. The
// settings are stored in a KEY=value file in the resource directory. Values
// out of range are brought back to a safe default when they are loaded and
// paths to tapes and disks that no longer exist are cleared.
//
// The machine does not read the settings directly. It takes a Snapshot when it
// is reset so that changes made elsewhere only take effect at the next reset.
package preferences

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/disk"
	"github.com/jetsetilly/gopher8001/logger"
	"github.com/jetsetilly/gopher8001/paths"
	"github.com/jetsetilly/gopher8001/prefs"
)

// SettingsFile is the name of the settings file in the resource directory.
const SettingsFile = "PC-8001.INI"

// Sentinal error returned by NewPreferences().
const (
	PreferencesError = "preferences: %v"
)

// Default values and ranges.
const (
	DefaultVolume = 8
	MinVolume     = 0
	MaxVolume     = 15
	clampVolume   = 7

	DefaultSpeed = 5
	MinSpeed     = 0
	MaxSpeed     = 9

	DefaultExpansionUnit = 0
	MaxExpansionUnit     = 2
)

// Preferences are the settings of the machine.
type Preferences struct {
	dsk *prefs.Disk

	// a PC-80S31 mini disk unit is connected
	DiskUnit prefs.Bool

	// a USER ROM is fitted at 0x6000
	PROM prefs.Bool

	// the PCG-8100 is fitted
	PCG prefs.Bool

	// keypad enter is the keypad equals key rather than return
	PadEnter prefs.Bool

	// 0 for none, 1 for the PC-8011 and 2 for the PC-8012
	ExpansionUnit prefs.Int

	Volume prefs.Int
	Speed  prefs.Int

	Tape prefs.String
	Disk [disk.NumDrives]prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.Path()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The settings are loaded from path, or from the default settings file
// in the resource directory if path is empty. A missing file is created with
// the default values.
func NewPreferences(path string) (*Preferences, error) {
	if path == "" {
		path = paths.ResourcePath(SettingsFile)
	}

	p := &Preferences{}

	p.Volume.SetConstraint(prefs.Range(MinVolume, MaxVolume, clampVolume))
	p.Speed.SetConstraint(prefs.Range(MinSpeed, MaxSpeed, DefaultSpeed))
	p.ExpansionUnit.SetConstraint(prefs.Range(0, MaxExpansionUnit, DefaultExpansionUnit))

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	entries := []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			String() string
			Reset() error
		}
	}{
		{"PC80S31", &p.DiskUnit},
		{"PROM", &p.PROM},
		{"PCG", &p.PCG},
		{"PADENTER", &p.PadEnter},
		{"EXPUNIT", &p.ExpansionUnit},
		{"VOLUME", &p.Volume},
		{"SPEED", &p.Speed},
		{"TAPE", &p.Tape},
		{"DISK0", &p.Disk[0]},
		{"DISK1", &p.Disk[1]},
		{"DISK2", &p.Disk[2]},
		{"DISK3", &p.Disk[3]},
	}
	for _, e := range entries {
		err = p.dsk.Add(e.key, e.p)
		if err != nil {
			return nil, curated.Errorf(PreferencesError, err)
		}
	}

	err = p.Reset()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		if curated.Is(err, prefs.NoPrefsFile) {
			logger.Logf(logger.Allow, "preferences", "creating %s", filepath.Base(path))
			return p, p.Save()
		}
		return nil, curated.Errorf(PreferencesError, err)
	}

	cleared, err := p.ClearMissing()
	if err != nil {
		return nil, err
	}
	if cleared {
		err = p.Save()
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ClearMissing clears the paths to tapes and disks that no longer exist.
// Returns true if any path was cleared. The settings are not saved.
func (p *Preferences) ClearMissing() (bool, error) {
	var cleared bool

	check := func(s *prefs.String) error {
		v := s.String()
		if v == "" {
			return nil
		}
		if _, err := os.Stat(Resolve(v)); err != nil {
			logger.Logf(logger.Allow, "preferences", "clearing missing file %s", v)
			if err := s.Set(""); err != nil {
				return curated.Errorf(PreferencesError, err)
			}
			cleared = true
		}
		return nil
	}

	if err := check(&p.Tape); err != nil {
		return cleared, err
	}
	for i := range p.Disk {
		if err := check(&p.Disk[i]); err != nil {
			return cleared, err
		}
	}

	return cleared, nil
}

// Reset all settings to the default values. The settings are not saved.
func (p *Preferences) Reset() error {
	err := p.dsk.Reset()
	if err != nil {
		return curated.Errorf(PreferencesError, err)
	}
	for _, e := range []struct {
		p *prefs.Int
		v int
	}{
		{&p.Volume, DefaultVolume},
		{&p.Speed, DefaultSpeed},
		{&p.ExpansionUnit, DefaultExpansionUnit},
	} {
		err = e.p.Set(e.v)
		if err != nil {
			return curated.Errorf(PreferencesError, err)
		}
	}
	return nil
}

// Load the settings from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil {
		return curated.Errorf(PreferencesError, err)
	}
	return nil
}

// Save the settings to disk.
func (p *Preferences) Save() error {
	err := p.dsk.Save()
	if err != nil {
		return curated.Errorf(PreferencesError, err)
	}
	return nil
}

// Override settings with a string of the form "KEY=value; KEY=value". Returns
// the keys that were not recognised.
func (p *Preferences) Override(s string) string {
	return p.dsk.Override(s)
}

// Resolve returns the path of a tape or disk setting. Relative paths are
// relative to the resource directory.
func Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return paths.ResourcePath(path)
}
