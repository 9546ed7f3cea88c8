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
	"iter"
	"sort"
)

// BIS is a static Binary Interval Search index (component G): the same
// intervals held twice, once sorted by Low and once sorted by High, so
// FindOverlaps needs only two binary searches and a scan of whichever
// array gives the smaller window.
type BIS[T Ordered[T]] struct {
	lowSorted, highSorted     []*Interval[T]
	allowsReferenceDuplicates bool
}

// NewBIS builds a BIS from seq. allowsReferenceDuplicates controls
// whether bulk construction keeps more than one pointer to an
// interval-equal value; when false, later duplicates (by Equal) are
// dropped during construction.
func NewBIS[T Ordered[T]](seq iter.Seq[*Interval[T]], allowsReferenceDuplicates bool) *BIS[T] {
	var input []*Interval[T]
	for iv := range seq {
		input = append(input, iv)
	}
	sort.SliceStable(input, func(i, j int) bool { return IntervalCompare(*input[i], *input[j]) < 0 })
	if !allowsReferenceDuplicates {
		input = dedupeEqual(input)
	}

	b := &BIS[T]{allowsReferenceDuplicates: allowsReferenceDuplicates}
	b.lowSorted = append([]*Interval[T](nil), input...)
	sort.SliceStable(b.lowSorted, func(i, j int) bool { return CompareLow(*b.lowSorted[i], *b.lowSorted[j]) < 0 })
	b.highSorted = append([]*Interval[T](nil), input...)
	sort.SliceStable(b.highSorted, func(i, j int) bool { return CompareHigh(*b.highSorted[i], *b.highSorted[j]) < 0 })
	return b
}

// firstHighAtLeastLow returns the index in highSorted of the first
// element whose High overlaps-or-exceeds q.Low.
func (b *BIS[T]) firstHighAtLeastLow(q Interval[T]) int {
	return sort.Search(len(b.highSorted), func(i int) bool {
		return CompareHighLow(*b.highSorted[i], q) >= 0
	})
}

// firstLowPastHigh returns the index in lowSorted of the first element
// whose Low is entirely past q.High.
func (b *BIS[T]) firstLowPastHigh(q Interval[T]) int {
	return sort.Search(len(b.lowSorted), func(i int) bool {
		return CompareLowHigh(*b.lowSorted[i], q) > 0
	})
}

// Kind reports KindBIS.
func (b *BIS[T]) Kind() Kind { return KindBIS }

// IsEmpty reports whether the index holds no intervals.
func (b *BIS[T]) IsEmpty() bool { return len(b.lowSorted) == 0 }

// Count returns the number of admitted intervals.
func (b *BIS[T]) Count() int { return len(b.lowSorted) }

// AllowsOverlaps always reports true.
func (b *BIS[T]) AllowsOverlaps() bool { return true }

// AllowsContainments always reports true.
func (b *BIS[T]) AllowsContainments() bool { return true }

// AllowsReferenceDuplicates reports the construction-time flag.
func (b *BIS[T]) AllowsReferenceDuplicates() bool { return b.allowsReferenceDuplicates }

// IsReadOnly always reports true: BIS is a static index.
func (b *BIS[T]) IsReadOnly() bool { return true }

// Choose returns an arbitrary admitted interval.
func (b *BIS[T]) Choose() (*Interval[T], error) {
	if len(b.lowSorted) == 0 {
		return nil, ErrNoSuchItem
	}
	return b.lowSorted[0], nil
}

// Span returns the smallest interval covering every admitted interval.
func (b *BIS[T]) Span() (Interval[T], error) {
	if len(b.lowSorted) == 0 {
		return Interval[T]{}, ErrNoSuchItem
	}
	return JoinedSpan(*b.lowSorted[0], *b.highSorted[len(b.highSorted)-1]), nil
}

// LowestIntervals returns every admitted interval tied for lowest sort
// position.
func (b *BIS[T]) LowestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(b.Sorted())
}

// HighestIntervals returns every admitted interval tied for highest
// sort position.
func (b *BIS[T]) HighestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(b.sortedDescending())
}

func (b *BIS[T]) sortedDescending() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		for i := len(b.lowSorted) - 1; i >= 0; i-- {
			if !yield(b.lowSorted[i]) {
				return
			}
		}
	}
}

// MaximumDepth returns the largest number of admitted intervals sharing
// a common point.
func (b *BIS[T]) MaximumDepth() (int, *Interval[T], bool) {
	depth, witness, ok := MaximumDepthOf(valuesOf(b.Sorted()))
	if !ok {
		return 0, nil, false
	}
	return depth, &witness, true
}

// FindEquals returns every admitted interval interval-equal to query,
// located via binary search on lowSorted since IntervalCompare and
// CompareLow agree once Low is fixed to query's own Low.
func (b *BIS[T]) FindEquals(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		i := sort.Search(len(b.lowSorted), func(i int) bool {
			return IntervalCompare(*b.lowSorted[i], query) >= 0
		})
		for ; i < len(b.lowSorted) && IntervalCompare(*b.lowSorted[i], query) == 0; i++ {
			if !yield(b.lowSorted[i]) {
				return
			}
		}
	}
}

// FindOverlapsPoint returns every admitted interval overlapping point.
func (b *BIS[T]) FindOverlapsPoint(point T) iter.Seq[*Interval[T]] {
	return b.FindOverlapsInterval(Point(point))
}

// FindOverlapsInterval implements spec.md §4.G: two binary searches
// bound the candidate window, then whichever of the two arrays yields
// the smaller scan is walked and filtered by Overlaps.
func (b *BIS[T]) FindOverlapsInterval(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		first := b.firstHighAtLeastLow(query)
		last := b.firstLowPastHigh(query)
		highWindow := len(b.highSorted) - first
		lowWindow := last
		if highWindow <= lowWindow {
			for i := first; i < len(b.highSorted); i++ {
				if Overlaps(*b.highSorted[i], query) && !yield(b.highSorted[i]) {
					return
				}
			}
			return
		}
		for i := 0; i < last; i++ {
			if Overlaps(*b.lowSorted[i], query) && !yield(b.lowSorted[i]) {
				return
			}
		}
	}
}

// FindOverlapPoint returns one admitted interval overlapping point, if any.
func (b *BIS[T]) FindOverlapPoint(point T) (*Interval[T], bool) {
	return b.FindOverlapInterval(Point(point))
}

// FindOverlapInterval returns the first interval FindOverlapsInterval
// would yield, if any.
func (b *BIS[T]) FindOverlapInterval(query Interval[T]) (*Interval[T], bool) {
	for iv := range b.FindOverlapsInterval(query) {
		return iv, true
	}
	return nil, false
}

// CountOverlapsPoint counts admitted intervals overlapping point.
func (b *BIS[T]) CountOverlapsPoint(point T) int {
	return b.CountOverlapsInterval(Point(point))
}

// CountOverlapsInterval counts admitted intervals overlapping query in
// O(log n), no scan needed: every interval satisfies High >= Low, so
// {High < q.Low} and {Low > q.High} are disjoint and partition the
// non-overlapping intervals; the overlap count is therefore exactly
// last - first (spec.md §4.G), where first is the count excluded by
// the High-side search and N-last is the count excluded by the
// Low-side search.
func (b *BIS[T]) CountOverlapsInterval(query Interval[T]) int {
	first := b.firstHighAtLeastLow(query)
	last := b.firstLowPastHigh(query)
	return last - first
}

// Gaps scans Sorted (lowSorted, in IntervalCompare order), coalesced
// into covered runs first, since BIS admits containing pairs and Gaps
// needs pairwise non-containing input.
func (b *BIS[T]) Gaps() iter.Seq[Interval[T]] {
	return Gaps(coalesce(valuesOf(b.Sorted())))
}

// FindGaps restricts Gaps to query.
func (b *BIS[T]) FindGaps(query Interval[T]) iter.Seq[Interval[T]] {
	return FindGaps(coalesce(b.overlapsSortedByLow(query)), query)
}

func (b *BIS[T]) overlapsSortedByLow(query Interval[T]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		for _, iv := range b.lowSorted {
			if Overlaps(*iv, query) && !yield(*iv) {
				return
			}
		}
	}
}

// Add always fails: BIS is read-only.
func (b *BIS[T]) Add(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// AddAll always fails: BIS is read-only.
func (b *BIS[T]) AddAll(iter.Seq[*Interval[T]]) (int, error) { return 0, ErrReadOnly }

// Remove always fails: BIS is read-only.
func (b *BIS[T]) Remove(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// Clear always fails: BIS is read-only.
func (b *BIS[T]) Clear() error { return ErrReadOnly }

// Sorted enumerates admitted intervals in canonical IntervalCompare
// order: lowSorted's sort key is CompareLow, which agrees with
// IntervalCompare's primary key, but ties need IntervalCompare's own
// tie-break; lowSorted was built with SliceStable on CompareLow after
// an initial IntervalCompare sort, so same-Low runs are already in
// IntervalCompare order within themselves.
func (b *BIS[T]) Sorted() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		for _, iv := range b.lowSorted {
			if !yield(iv) {
				return
			}
		}
	}
}

// IndexingSpeed reports the asymptotic cost of At and IndexOf: both
// arrays are flat, so access is constant.
func (b *BIS[T]) IndexingSpeed() IndexingSpeed { return Constant }

// At returns the interval at Sorted (lowSorted) position i.
func (b *BIS[T]) At(i int) *Interval[T] { return b.lowSorted[i] }

// IndexOf returns the Sorted (lowSorted) position of interval,
// identified by reference, or -1 if it is not present.
func (b *BIS[T]) IndexOf(interval *Interval[T]) int {
	for i, iv := range b.lowSorted {
		if iv == interval {
			return i
		}
	}
	return -1
}

var (
	_ IntervalCollection[Int]       = (*BIS[Int])(nil)
	_ SortedIntervalCollection[Int] = (*BIS[Int])(nil)
)
