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


package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries. hardware.Machine is the
// Permission of every sub-system of the machine and allows logging when it is
// in verbose mode.
type Permission interface {
	AllowLogging() bool
}

// Allowed is a fixed Permission.
type Allowed bool

// AllowLogging implements the Permission interface.
func (a Allowed) AllowLogging() bool {
	return bool(a)
}

// Allow and Deny are the fixed permissions. Allow is used for entries that
// should always be made, such as errors. Deny is useful in tests.
const (
	Allow Allowed = true
	Deny  Allowed = false
)
