// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package ivcol

import "time"

// Int adapts the builtin int to Ordered.
type Int int

// Compare satisfies Ordered.
func (c Int) Compare(o Int) int {
	switch {
	case c < o:
		return -1
	case c > o:
		return 1
	default:
		return 0
	}
}

// Float64 adapts the builtin float64 to Ordered.
type Float64 float64

// Compare satisfies Ordered.
func (c Float64) Compare(o Float64) int {
	switch {
	case c < o:
		return -1
	case c > o:
		return 1
	default:
		return 0
	}
}

// String adapts the builtin string to Ordered.
type String string

// Compare satisfies Ordered.
func (c String) Compare(o String) int {
	switch {
	case c < o:
		return -1
	case c > o:
		return 1
	default:
		return 0
	}
}

// Time adapts time.Time to Ordered.
type Time struct{ time.Time }

// Compare satisfies Ordered.
func (c Time) Compare(o Time) int {
	switch {
	case c.Before(o.Time):
		return -1
	case c.After(o.Time):
		return 1
	default:
		return 0
	}
}
