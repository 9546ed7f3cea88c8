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

import (
	"fmt"
	"hash/maphash"

	"github.com/pkg/errors"
)

// Ordered generalizes the teacher's Comparable interface into a type
// constraint: T must be able to compare itself to another T.
//
// Given c := a.Compare(b): c < 0 if a < b; c == 0 if a == b; c > 0 if a > b.
type Ordered[T any] interface {
	Compare(T) int
}

// ErrNoOverlap is returned by Overlap when the two intervals do not overlap.
var ErrNoOverlap = errors.New("ivcol: no overlap")

// Interval is an ordered pair (Low, High) of values from a totally ordered
// domain T, plus two booleans controlling whether each endpoint is included
// in the interval. Intervals are immutable once constructed.
type Interval[T Ordered[T]] struct {
	Low, High             T
	LowIncluded, HighIncluded bool
}

// New returns the interval [low, high] with the given endpoint inclusivity.
func New[T Ordered[T]](low, high T, lowIncluded, highIncluded bool) Interval[T] {
	return Interval[T]{Low: low, High: high, LowIncluded: lowIncluded, HighIncluded: highIncluded}
}

// Point returns the degenerate interval consisting of the single value x.
func Point[T Ordered[T]](x T) Interval[T] {
	return Interval[T]{Low: x, High: x, LowIncluded: true, HighIncluded: true}
}

// Copy returns a value copy of other.
func Copy[T Ordered[T]](other Interval[T]) Interval[T] {
	return other
}

// Valid reports whether iv is a valid interval: Low < High, or Low == High
// with both endpoints included.
func (iv Interval[T]) Valid() bool {
	switch c := iv.Low.Compare(iv.High); {
	case c < 0:
		return true
	case c == 0:
		return iv.LowIncluded && iv.HighIncluded
	default:
		return false
	}
}

// Equal reports whether iv and other are interval-equal: both endpoint
// values and both inclusivity flags match.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.Low.Compare(other.Low) == 0 &&
		iv.High.Compare(other.High) == 0 &&
		iv.LowIncluded == other.LowIncluded &&
		iv.HighIncluded == other.HighIncluded
}

// String renders iv using conventional interval bracket notation.
func (iv Interval[T]) String() string {
	openCh, closeCh := '(', ')'
	if iv.LowIncluded {
		openCh = '['
	}
	if iv.HighIncluded {
		closeCh = ']'
	}
	return string(openCh) + formatEndpoint(iv.Low) + ":" + formatEndpoint(iv.High) + string(closeCh)
}

func formatEndpoint[T Ordered[T]](v T) string {
	if s, ok := any(v).(interface{ String() string }); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// CompareLow compares the Low endpoints of a and b, breaking ties so that
// an included low precedes an excluded low (an included low starts no
// later than an excluded one at the same value).
func CompareLow[T Ordered[T]](a, b Interval[T]) int {
	if c := a.Low.Compare(b.Low); c != 0 {
		return c
	}
	switch {
	case a.LowIncluded == b.LowIncluded:
		return 0
	case a.LowIncluded:
		return -1
	default:
		return 1
	}
}

// CompareHigh compares the High endpoints of a and b, breaking ties so
// that an excluded high precedes an included high.
func CompareHigh[T Ordered[T]](a, b Interval[T]) int {
	if c := a.High.Compare(b.High); c != 0 {
		return c
	}
	switch {
	case a.HighIncluded == b.HighIncluded:
		return 0
	case a.HighIncluded:
		return 1
	default:
		return -1
	}
}

// IntervalCompare provides the canonical sorted order over intervals:
// by Low first (CompareLow), then by High (CompareHigh).
func IntervalCompare[T Ordered[T]](a, b Interval[T]) int {
	if c := CompareLow(a, b); c != 0 {
		return c
	}
	return CompareHigh(a, b)
}

// CompareLowHigh compares a's Low to b's High, honoring inclusivity. It
// returns a value <= 0 iff a starts at or before b ends, i.e. iff a does
// not lie entirely to the right of b. When the values tie, a and b meet
// at a single point: that point is shared only if both sides claim it
// (a.LowIncluded and b.HighIncluded are both true), which is what makes
// a closed point query fail to overlap an interval open at that point.
func CompareLowHigh[T Ordered[T]](a, b Interval[T]) int {
	if c := a.Low.Compare(b.High); c != 0 {
		return c
	}
	if a.LowIncluded && b.HighIncluded {
		return 0
	}
	return 1
}

// CompareHighLow is the dual of CompareLowHigh: it compares a's High to
// b's Low. A value >= 0 means a does not lie entirely to the left of b.
func CompareHighLow[T Ordered[T]](a, b Interval[T]) int {
	if c := a.High.Compare(b.Low); c != 0 {
		return c
	}
	if a.HighIncluded && b.LowIncluded {
		return 0
	}
	return -1
}

// Overlaps reports whether a and b share at least one point.
func Overlaps[T Ordered[T]](a, b Interval[T]) bool {
	return CompareLowHigh(a, b) <= 0 && CompareLowHigh(b, a) <= 0
}

// Contains reports whether a contains b: every point of b is a point of a.
func Contains[T Ordered[T]](a, b Interval[T]) bool {
	return CompareLow(a, b) <= 0 && CompareHigh(b, a) <= 0
}

// StrictlyContains reports whether a contains b and a is not interval-equal to b.
func StrictlyContains[T Ordered[T]](a, b Interval[T]) bool {
	return Contains(a, b) && !a.Equal(b)
}

// JoinedSpan returns the smallest interval covering both a and b.
func JoinedSpan[T Ordered[T]](a, b Interval[T]) Interval[T] {
	var low T
	var lowIncluded bool
	if CompareLow(a, b) <= 0 {
		low, lowIncluded = a.Low, a.LowIncluded
	} else {
		low, lowIncluded = b.Low, b.LowIncluded
	}
	var high T
	var highIncluded bool
	if CompareHigh(a, b) >= 0 {
		high, highIncluded = a.High, a.HighIncluded
	} else {
		high, highIncluded = b.High, b.HighIncluded
	}
	return Interval[T]{Low: low, High: high, LowIncluded: lowIncluded, HighIncluded: highIncluded}
}

// Overlap returns the intersection of a and b, or ErrNoOverlap if they
// share no point.
func Overlap[T Ordered[T]](a, b Interval[T]) (Interval[T], error) {
	if !Overlaps(a, b) {
		return Interval[T]{}, ErrNoOverlap
	}
	var low T
	var lowIncluded bool
	if CompareLow(a, b) >= 0 {
		low, lowIncluded = a.Low, a.LowIncluded
	} else {
		low, lowIncluded = b.Low, b.LowIncluded
	}
	var high T
	var highIncluded bool
	if CompareHigh(a, b) <= 0 {
		high, highIncluded = a.High, a.HighIncluded
	} else {
		high, highIncluded = b.High, b.HighIncluded
	}
	return Interval[T]{Low: low, High: high, LowIncluded: lowIncluded, HighIncluded: highIncluded}, nil
}

var hashSeed = maphash.MakeSeed()

// GetIntervalHashCode returns a hash of iv's (Low, High, inclusivity) that
// is equal for any two interval-equal intervals.
func GetIntervalHashCode[T Ordered[T]](iv Interval[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeEndpoint(&h, iv.Low, iv.LowIncluded)
	writeEndpoint(&h, iv.High, iv.HighIncluded)
	return h.Sum64()
}

func writeEndpoint[T Ordered[T]](h *maphash.Hash, v T, included bool) {
	h.WriteString(formatEndpoint(v))
	if included {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
}
