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

import "iter"

// between returns the gap separating prev from cur, two consecutive,
// non-overlapping intervals in ascending order, and reports whether that
// gap is non-empty. A gap is open on a side where the bounding interval
// is closed there, and closed on a side where the bounding interval is
// open there: two intervals that meet with both sides excluded leave a
// single included point between them.
func between[T Ordered[T]](prev, cur Interval[T]) (Interval[T], bool) {
	gap := Interval[T]{
		Low:          prev.High,
		LowIncluded:  !prev.HighIncluded,
		High:         cur.Low,
		HighIncluded: !cur.LowIncluded,
	}
	return gap, gap.Valid() && gap.Low.Compare(gap.High) <= 0
}

// Gaps returns the maximal sub-intervals not covered by any interval in
// seq, which must yield pairwise non-containing intervals in ascending
// order (as produced by a containment-free collection's sorted
// enumeration); overlapping neighbours simply leave no gap. It
// reports no gap before the first or after the last interval, since the
// domain has no known bound outside the stored span.
func Gaps[T Ordered[T]](seq iter.Seq[Interval[T]]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		var prev Interval[T]
		have := false
		for cur := range seq {
			if have {
				if gap, ok := between(prev, cur); ok {
					if !yield(gap) {
						return
					}
				}
			}
			prev = cur
			have = true
		}
	}
}

// FindGaps restricts Gaps to the sub-intervals of query not covered by
// any interval in seq, clipping leading, trailing, and interior gaps to
// query's bounds. seq must yield, in ascending order, the intervals of a
// containment-free collection that overlap query.
func FindGaps[T Ordered[T]](seq iter.Seq[Interval[T]], query Interval[T]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		leading := Interval[T]{Low: query.Low, LowIncluded: query.LowIncluded}
		var prev Interval[T]
		have := false
		for cur := range seq {
			if !have {
				leading.High, leading.HighIncluded = cur.Low, !cur.LowIncluded
				if leading.Valid() && leading.Low.Compare(leading.High) <= 0 {
					if !yield(leading) {
						return
					}
				}
			} else if gap, ok := between(prev, cur); ok {
				if !yield(gap) {
					return
				}
			}
			prev = cur
			have = true
		}

		trailing := Interval[T]{High: query.High, HighIncluded: query.HighIncluded}
		if have {
			trailing.Low, trailing.LowIncluded = prev.High, !prev.HighIncluded
		} else {
			trailing.Low, trailing.LowIncluded = query.Low, query.LowIncluded
		}
		if trailing.Valid() && trailing.Low.Compare(trailing.High) <= 0 {
			yield(trailing)
		}
	}
}
