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

	"github.com/kortschak/ivcol/internal/endpointlist"
)

// Sorted is the dynamic endpoint-sorted interval collection (component
// D): a sequence kept in ascending IntervalCompare order over
// internal/endpointlist, admitting intervals that do not conflict with
// their would-be neighbors. With allowsOverlaps true it is
// containment-free (overlap is permitted, containment is not); with it
// false it is overlap-free, the stricter mode that also satisfies
// FiniteIntervalCollection.
type Sorted[T Ordered[T]] struct {
	list                      *endpointlist.List[Interval[T]]
	allowsOverlaps            bool
	allowsReferenceDuplicates bool
	readOnly                  bool
	listeners                 listeners[T]
}

// NewSorted returns an empty Sorted collection. allowsOverlaps selects
// the containment-free variant (true) or the overlap-free variant
// (false). allowsReferenceDuplicates controls whether two distinct
// pointers to interval-equal values may both be admitted.
func NewSorted[T Ordered[T]](allowsOverlaps, allowsReferenceDuplicates bool) *Sorted[T] {
	s := &Sorted[T]{allowsOverlaps: allowsOverlaps, allowsReferenceDuplicates: allowsReferenceDuplicates}
	s.list = endpointlist.New(compareIntervals[T], s.conflicts)
	return s
}

func compareIntervals[T Ordered[T]](a, b *Interval[T]) int {
	return IntervalCompare(*a, *b)
}

func (s *Sorted[T]) conflicts(newItem, neighbor *Interval[T]) bool {
	if !s.allowsReferenceDuplicates && newItem.Equal(*neighbor) {
		return true
	}
	if s.allowsOverlaps {
		return StrictlyContains(*newItem, *neighbor) || StrictlyContains(*neighbor, *newItem)
	}
	return Overlaps(*newItem, *neighbor)
}

// Kind reports KindSorted.
func (s *Sorted[T]) Kind() Kind { return KindSorted }

// IsEmpty reports whether the collection admits no intervals.
func (s *Sorted[T]) IsEmpty() bool { return s.list.Len() == 0 }

// Count returns the number of admitted intervals.
func (s *Sorted[T]) Count() int { return s.list.Len() }

// AllowsOverlaps reports whether this collection permits overlapping
// (but not containing) intervals.
func (s *Sorted[T]) AllowsOverlaps() bool { return s.allowsOverlaps }

// AllowsContainments always reports false: component D never admits a
// strictly containing pair.
func (s *Sorted[T]) AllowsContainments() bool { return false }

// AllowsReferenceDuplicates reports whether two distinct pointers to
// interval-equal values may both be admitted.
func (s *Sorted[T]) AllowsReferenceDuplicates() bool { return s.allowsReferenceDuplicates }

// IsReadOnly reports whether mutation is disabled on this collection.
func (s *Sorted[T]) IsReadOnly() bool { return s.readOnly }

// Freeze disables further mutation in place: Add, AddAll, Remove, and
// Clear all fail with ErrReadOnly from this point on. The underlying
// structure and its contents are unchanged.
func (s *Sorted[T]) Freeze() { s.readOnly = true }

// Choose returns an arbitrary admitted interval.
func (s *Sorted[T]) Choose() (*Interval[T], error) {
	if s.list.Len() == 0 {
		return nil, ErrNoSuchItem
	}
	return s.list.At(0), nil
}

// Span returns the smallest interval covering every admitted interval.
func (s *Sorted[T]) Span() (Interval[T], error) {
	if s.list.Len() == 0 {
		return Interval[T]{}, ErrNoSuchItem
	}
	low := s.list.At(0)
	high := s.list.At(s.list.Len() - 1)
	return JoinedSpan(*low, *high), nil
}

// LowestIntervals returns every admitted interval tied for lowest sort
// position.
func (s *Sorted[T]) LowestIntervals() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		if s.list.Len() == 0 {
			return
		}
		first := s.list.At(0)
		for iv := range s.Sorted() {
			if IntervalCompare(*iv, *first) != 0 {
				return
			}
			if !yield(iv) {
				return
			}
		}
	}
}

// HighestIntervals returns every admitted interval tied for highest
// sort position.
func (s *Sorted[T]) HighestIntervals() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		n := s.list.Len()
		if n == 0 {
			return
		}
		last := s.list.At(n - 1)
		for iv := range s.SortedBackwards() {
			if IntervalCompare(*iv, *last) != 0 {
				return
			}
			if !yield(iv) {
				return
			}
		}
	}
}

// MaximumDepth returns the largest number of admitted intervals sharing
// a common point.
func (s *Sorted[T]) MaximumDepth() (int, *Interval[T], bool) {
	depth, witness, ok := MaximumDepthOf(valuesOf(s.Sorted()))
	if !ok {
		return 0, nil, false
	}
	return depth, &witness, true
}

func valuesOf[T Ordered[T]](seq iter.Seq[*Interval[T]]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		for iv := range seq {
			if !yield(*iv) {
				return
			}
		}
	}
}

// FindEquals returns every admitted interval interval-equal to query.
func (s *Sorted[T]) FindEquals(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		idx := s.list.Find(&query)
		if idx < 0 {
			return
		}
		for i := idx; i < s.list.Len(); i++ {
			iv := s.list.At(i)
			if IntervalCompare(*iv, query) != 0 {
				return
			}
			if iv.Equal(query) && !yield(iv) {
				return
			}
		}
	}
}

func (s *Sorted[T]) overlapRange(query Interval[T]) (first, last int) {
	before := func(item *Interval[T]) bool { return CompareLowHigh(query, *item) > 0 }
	after := func(item *Interval[T]) bool { return CompareLowHigh(*item, query) > 0 }
	return s.list.FindFirst(before), s.list.FindLast(after)
}

// FindOverlapsPoint returns every admitted interval overlapping point.
func (s *Sorted[T]) FindOverlapsPoint(point T) iter.Seq[*Interval[T]] {
	return s.FindOverlapsInterval(Point(point))
}

// FindOverlapsInterval returns every admitted interval overlapping query.
func (s *Sorted[T]) FindOverlapsInterval(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		first, last := s.overlapRange(query)
		for i := first; i < last; i++ {
			if !yield(s.list.At(i)) {
				return
			}
		}
	}
}

// FindOverlapPoint returns one admitted interval overlapping point, if any.
func (s *Sorted[T]) FindOverlapPoint(point T) (*Interval[T], bool) {
	return s.FindOverlapInterval(Point(point))
}

// FindOverlapInterval returns one admitted interval overlapping query, if any.
func (s *Sorted[T]) FindOverlapInterval(query Interval[T]) (*Interval[T], bool) {
	first, last := s.overlapRange(query)
	if first >= last {
		return nil, false
	}
	return s.list.At(first), true
}

// CountOverlapsPoint counts admitted intervals overlapping point.
func (s *Sorted[T]) CountOverlapsPoint(point T) int {
	return s.CountOverlapsInterval(Point(point))
}

// CountOverlapsInterval counts admitted intervals overlapping query.
func (s *Sorted[T]) CountOverlapsInterval(query Interval[T]) int {
	first, last := s.overlapRange(query)
	if last < first {
		return 0
	}
	return last - first
}

// Gaps returns the complement of the union of admitted intervals.
func (s *Sorted[T]) Gaps() iter.Seq[Interval[T]] {
	return Gaps(valuesOf(s.Sorted()))
}

// FindGaps restricts Gaps to query.
func (s *Sorted[T]) FindGaps(query Interval[T]) iter.Seq[Interval[T]] {
	return FindGaps(valuesOf(s.FindOverlapsInterval(query)), query)
}

// Add admits interval, returning false if rejected by the conflict
// predicate or the collection is read-only.
func (s *Sorted[T]) Add(interval *Interval[T]) (bool, error) {
	if interval == nil {
		return false, precondition("Add", "interval must not be nil")
	}
	if s.readOnly {
		return false, ErrReadOnly
	}
	if !interval.Valid() {
		return false, precondition("Add", "interval is not valid")
	}
	if ok := s.list.Add(interval); !ok {
		return false, nil
	}
	s.listeners.added(interval)
	return true, nil
}

// AddAll admits every interval in intervals, returning the count admitted.
func (s *Sorted[T]) AddAll(intervals iter.Seq[*Interval[T]]) (int, error) {
	n := 0
	for iv := range intervals {
		ok, err := s.Add(iv)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// Remove deletes the interval that is the same object as interval.
func (s *Sorted[T]) Remove(interval *Interval[T]) (bool, error) {
	if interval == nil {
		return false, precondition("Remove", "interval must not be nil")
	}
	if s.readOnly {
		return false, ErrReadOnly
	}
	if !s.list.Remove(interval) {
		return false, nil
	}
	s.listeners.removed(interval)
	return true, nil
}

// Clear removes every admitted interval.
func (s *Sorted[T]) Clear() error {
	if s.readOnly {
		return ErrReadOnly
	}
	if s.list.Len() == 0 {
		return nil
	}
	s.list.Clear()
	s.listeners.cleared()
	return nil
}

// Listen registers fn to be called for every event this collection raises.
func (s *Sorted[T]) Listen(fn Listener[T]) func() { return s.listeners.Listen(fn) }

// Sorted enumerates admitted intervals by IntervalCompare.
func (s *Sorted[T]) Sorted() iter.Seq[*Interval[T]] { return s.list.All }

// SortedBackwards enumerates admitted intervals in descending order.
func (s *Sorted[T]) SortedBackwards() iter.Seq[*Interval[T]] { return s.list.Backward }

// IndexingSpeed reports the asymptotic cost of At and IndexOf: the
// backing store is tree-like, so access is logarithmic rather than
// constant.
func (s *Sorted[T]) IndexingSpeed() IndexingSpeed { return Logarithmic }

// At returns the interval at sorted position i.
func (s *Sorted[T]) At(i int) *Interval[T] { return s.list.At(i) }

// IndexOf returns the sorted position of interval, identified by
// reference, or -1 if it is not present.
func (s *Sorted[T]) IndexOf(interval *Interval[T]) int { return s.list.IndexOf(interval) }

// EnumerateFromPoint enumerates admitted intervals from the first at or
// after point, optionally including intervals merely overlapping it.
func (s *Sorted[T]) EnumerateFromPoint(point T, includeOverlaps bool) iter.Seq[*Interval[T]] {
	return s.EnumerateFromInterval(Point(point), includeOverlaps)
}

// EnumerateBackwardsFromPoint is the descending dual of EnumerateFromPoint.
func (s *Sorted[T]) EnumerateBackwardsFromPoint(point T, includeOverlaps bool) iter.Seq[*Interval[T]] {
	return s.EnumerateBackwardsFromInterval(Point(point), includeOverlaps)
}

// EnumerateFromInterval enumerates admitted intervals from the first
// whose Low is at or after query's Low (or, if includeInterval, the
// first overlapping query), ascending.
func (s *Sorted[T]) EnumerateFromInterval(query Interval[T], includeInterval bool) iter.Seq[*Interval[T]] {
	idx := 0
	if includeInterval {
		idx, _ = s.overlapRange(query)
	} else {
		idx = s.list.FindFirst(func(item *Interval[T]) bool { return CompareLow(*item, query) < 0 })
	}
	return func(yield func(*Interval[T]) bool) {
		s.list.Range(idx, s.list.Len(), yield)
	}
}

// EnumerateBackwardsFromInterval is the descending dual of
// EnumerateFromInterval: it enumerates admitted intervals from the last
// whose High is at or before query's High (or, if includeInterval, the
// last overlapping query), descending.
func (s *Sorted[T]) EnumerateBackwardsFromInterval(query Interval[T], includeInterval bool) iter.Seq[*Interval[T]] {
	var idx int
	if includeInterval {
		_, last := s.overlapRange(query)
		idx = last
	} else {
		idx = s.list.FindFirst(func(item *Interval[T]) bool { return CompareHigh(*item, query) <= 0 })
	}
	return func(yield func(*Interval[T]) bool) {
		s.list.RangeBackward(0, idx, yield)
	}
}

// EnumerateFromIndex enumerates admitted intervals from sorted position i.
func (s *Sorted[T]) EnumerateFromIndex(i int) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		s.list.Range(i, s.list.Len(), yield)
	}
}

// EnumerateBackwardsFromIndex enumerates admitted intervals backward
// from sorted position i.
func (s *Sorted[T]) EnumerateBackwardsFromIndex(i int) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		s.list.RangeBackward(0, i+1, yield)
	}
}

// NeighbourOfPoint returns the admitted interval overlapping point, if
// any; meaningful when the collection is overlap-free, in which case
// there can be at most one.
func (s *Sorted[T]) NeighbourOfPoint(point T) (*Interval[T], bool) {
	return s.FindOverlapPoint(point)
}

// NeighbourOfInterval returns the admitted interval overlapping query,
// if any.
func (s *Sorted[T]) NeighbourOfInterval(query Interval[T]) (*Interval[T], bool) {
	return s.FindOverlapInterval(query)
}

var (
	_ IntervalCollection[Int]                = (*Sorted[Int])(nil)
	_ SortedIntervalCollection[Int]           = (*Sorted[Int])(nil)
	_ ContainmentFreeIntervalCollection[Int] = (*Sorted[Int])(nil)
	_ FiniteIntervalCollection[Int]           = (*Sorted[Int])(nil)
)
