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
	"container/heap"
	"iter"
)

// DCL is a Dynamic Containment List (component I): an ordered stack of
// containment-free component-D sub-collections. Stacking lifts the
// containment-free restriction at the composite level — a sub only
// ever rejects a genuinely containing pair, so two intervals where one
// contains the other simply end up in different sub-collections.
type DCL[T Ordered[T]] struct {
	subs                      []*Sorted[T]
	allowsReferenceDuplicates bool
	listeners                 listeners[T]
}

// NewDCL returns an empty DCL. allowsReferenceDuplicates is passed
// through to every sub-collection it creates.
func NewDCL[T Ordered[T]](allowsReferenceDuplicates bool) *DCL[T] {
	return &DCL[T]{allowsReferenceDuplicates: allowsReferenceDuplicates}
}

// Kind reports KindDCL.
func (d *DCL[T]) Kind() Kind { return KindDCL }

// IsEmpty reports whether the index holds no intervals.
func (d *DCL[T]) IsEmpty() bool { return d.Count() == 0 }

// Count returns the number of admitted intervals across every sub-collection.
func (d *DCL[T]) Count() int {
	n := 0
	for _, s := range d.subs {
		n += s.Count()
	}
	return n
}

// AllowsOverlaps always reports true.
func (d *DCL[T]) AllowsOverlaps() bool { return true }

// AllowsContainments always reports true: stacking sub-collections is
// exactly what lifts the containment-free restriction.
func (d *DCL[T]) AllowsContainments() bool { return true }

// AllowsReferenceDuplicates reports the construction-time flag.
func (d *DCL[T]) AllowsReferenceDuplicates() bool { return d.allowsReferenceDuplicates }

// IsReadOnly always reports false: DCL is dynamic.
func (d *DCL[T]) IsReadOnly() bool { return false }

// Choose returns an arbitrary admitted interval from the first
// non-empty sub-collection.
func (d *DCL[T]) Choose() (*Interval[T], error) {
	for _, s := range d.subs {
		if !s.IsEmpty() {
			return s.Choose()
		}
	}
	return nil, ErrNoSuchItem
}

// Span returns the smallest interval covering every admitted interval
// across every sub-collection.
func (d *DCL[T]) Span() (Interval[T], error) {
	var span Interval[T]
	found := false
	for _, s := range d.subs {
		sp, err := s.Span()
		if err != nil {
			continue
		}
		if !found {
			span, found = sp, true
			continue
		}
		span = JoinedSpan(span, sp)
	}
	if !found {
		return Interval[T]{}, ErrNoSuchItem
	}
	return span, nil
}

// LowestIntervals returns every admitted interval tied for lowest sort
// position across the union.
func (d *DCL[T]) LowestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(d.Sorted())
}

// HighestIntervals returns every admitted interval tied for highest
// sort position across the union.
func (d *DCL[T]) HighestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(d.sortedDescending())
}

func (d *DCL[T]) sortedDescending() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		all := slice(d.Sorted())
		for i := len(all) - 1; i >= 0; i-- {
			if !yield(all[i]) {
				return
			}
		}
	}
}

// MaximumDepth is computed via the shared §4.A scan across the union
// of every sub-collection, per spec.md §4.I.
func (d *DCL[T]) MaximumDepth() (int, *Interval[T], bool) {
	depth, witness, ok := MaximumDepthOf(valuesOf(d.Sorted()))
	if !ok {
		return 0, nil, false
	}
	return depth, &witness, true
}

// FindEquals fans out across every sub-collection.
func (d *DCL[T]) FindEquals(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		for _, s := range d.subs {
			for iv := range s.FindEquals(query) {
				if !yield(iv) {
					return
				}
			}
		}
	}
}

// FindOverlapsPoint fans out across every sub-collection.
func (d *DCL[T]) FindOverlapsPoint(point T) iter.Seq[*Interval[T]] {
	return d.FindOverlapsInterval(Point(point))
}

// FindOverlapsInterval fans out across every sub-collection, per spec.md §4.I.
func (d *DCL[T]) FindOverlapsInterval(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		for _, s := range d.subs {
			for iv := range s.FindOverlapsInterval(query) {
				if !yield(iv) {
					return
				}
			}
		}
	}
}

// FindOverlapPoint returns one admitted interval overlapping point, if any.
func (d *DCL[T]) FindOverlapPoint(point T) (*Interval[T], bool) {
	return d.FindOverlapInterval(Point(point))
}

// FindOverlapInterval returns the first admitted interval found to
// overlap query, scanning sub-collections in order.
func (d *DCL[T]) FindOverlapInterval(query Interval[T]) (*Interval[T], bool) {
	for _, s := range d.subs {
		if iv, ok := s.FindOverlapInterval(query); ok {
			return iv, true
		}
	}
	return nil, false
}

// CountOverlapsPoint counts admitted intervals overlapping point.
func (d *DCL[T]) CountOverlapsPoint(point T) int {
	return d.CountOverlapsInterval(Point(point))
}

// CountOverlapsInterval sums each sub-collection's own count.
func (d *DCL[T]) CountOverlapsInterval(query Interval[T]) int {
	count := 0
	for _, s := range d.subs {
		count += s.CountOverlapsInterval(query)
	}
	return count
}

// coalesce merges a Sorted-order sequence of possibly overlapping or
// containing intervals into its covered, pairwise non-overlapping
// runs, so Gaps/FindGaps (which assume a pairwise non-containing sorted
// input) can be reused unchanged: DCL, BIS and Tree admit containing
// pairs, so each feeds its admitted set through coalesce first.
func coalesce[T Ordered[T]](seq iter.Seq[Interval[T]]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		var run Interval[T]
		open := false
		for iv := range seq {
			switch {
			case !open:
				run, open = iv, true
			case Overlaps(run, iv) || Contains(run, iv):
				run = JoinedSpan(run, iv)
			default:
				if !yield(run) {
					return
				}
				run = iv
			}
		}
		if open {
			yield(run)
		}
	}
}

// Gaps returns the complement of the union of admitted intervals,
// across every sub-collection.
func (d *DCL[T]) Gaps() iter.Seq[Interval[T]] {
	return Gaps(coalesce(valuesOf(d.Sorted())))
}

// FindGaps restricts Gaps to query, coalescing the overlapping
// intervals in Sorted order.
func (d *DCL[T]) FindGaps(query Interval[T]) iter.Seq[Interval[T]] {
	overlapping := func(yield func(*Interval[T]) bool) {
		for iv := range d.Sorted() {
			if Overlaps(*iv, query) && !yield(iv) {
				return
			}
		}
	}
	return FindGaps(coalesce(valuesOf(overlapping)), query)
}

// Add tries each sub-collection in order; the first one whose conflict
// predicate accepts interval (i.e. no containment conflict) keeps it.
// If every existing sub-collection rejects it, a new one is appended.
// When AllowsReferenceDuplicates is false, an interval interval-equal to
// one already held in any sub-collection is rejected.
func (d *DCL[T]) Add(interval *Interval[T]) (bool, error) {
	if interval == nil {
		return false, precondition("Add", "interval must not be nil")
	}
	if !interval.Valid() {
		return false, precondition("Add", "interval is not valid")
	}
	if !d.allowsReferenceDuplicates {
		for range d.FindEquals(*interval) {
			return false, nil
		}
	}
	for _, s := range d.subs {
		ok, err := s.Add(interval)
		if err != nil {
			return false, err
		}
		if ok {
			d.listeners.added(interval)
			return true, nil
		}
	}
	ns := NewSorted[T](true, d.allowsReferenceDuplicates)
	ok, err := ns.Add(interval)
	if err != nil || !ok {
		return false, err
	}
	d.subs = append(d.subs, ns)
	d.listeners.added(interval)
	return true, nil
}

// AddAll admits every interval in intervals, returning the count admitted.
func (d *DCL[T]) AddAll(intervals iter.Seq[*Interval[T]]) (int, error) {
	n := 0
	for iv := range intervals {
		ok, err := d.Add(iv)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// Remove deletes the interval that is the same object as interval from
// whichever sub-collection holds it, dropping that sub-collection if
// it becomes empty.
func (d *DCL[T]) Remove(interval *Interval[T]) (bool, error) {
	if interval == nil {
		return false, precondition("Remove", "interval must not be nil")
	}
	for i, s := range d.subs {
		ok, err := s.Remove(interval)
		if err != nil {
			return false, err
		}
		if ok {
			if s.IsEmpty() {
				d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
			}
			d.listeners.removed(interval)
			return true, nil
		}
	}
	return false, nil
}

// Clear removes every admitted interval from every sub-collection.
func (d *DCL[T]) Clear() error {
	if len(d.subs) == 0 {
		return nil
	}
	d.subs = nil
	d.listeners.cleared()
	return nil
}

// Listen registers fn to be called for every event this collection raises.
func (d *DCL[T]) Listen(fn Listener[T]) func() { return d.listeners.Listen(fn) }

type dclMergeEntry[T Ordered[T]] struct {
	sub, idx int
	iv       *Interval[T]
}

type dclMergeHeap[T Ordered[T]] []dclMergeEntry[T]

func (h dclMergeHeap[T]) Len() int { return len(h) }
func (h dclMergeHeap[T]) Less(i, j int) bool {
	return IntervalCompare(*h[i].iv, *h[j].iv) < 0
}
func (h dclMergeHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *dclMergeHeap[T]) Push(x interface{}) { *h = append(*h, x.(dclMergeEntry[T])) }
func (h *dclMergeHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// Sorted merges every sub-collection's own Sorted stream with a
// min-heap, the same k-way merge idiom used by lcl.go and tree.go, one
// entry per sub-collection instead of per layer or per node list.
func (d *DCL[T]) Sorted() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		var h dclMergeHeap[T]
		for i, s := range d.subs {
			if s.Count() > 0 {
				h = append(h, dclMergeEntry[T]{sub: i, idx: 0, iv: s.At(0)})
			}
		}
		heap.Init(&h)
		for h.Len() > 0 {
			top := heap.Pop(&h).(dclMergeEntry[T])
			if !yield(top.iv) {
				return
			}
			next := top.idx + 1
			if next < d.subs[top.sub].Count() {
				heap.Push(&h, dclMergeEntry[T]{sub: top.sub, idx: next, iv: d.subs[top.sub].At(next)})
			}
		}
	}
}

// IndexingSpeed reports the asymptotic cost of At and IndexOf: Sorted
// order requires a full merge across sub-collections, so access is linear.
func (d *DCL[T]) IndexingSpeed() IndexingSpeed { return Linear }

// At returns the interval at Sorted (merged) position i.
func (d *DCL[T]) At(i int) *Interval[T] {
	idx := 0
	for iv := range d.Sorted() {
		if idx == i {
			return iv
		}
		idx++
	}
	return nil
}

// IndexOf returns the Sorted (merged) position of interval, identified
// by reference, or -1 if it is not present.
func (d *DCL[T]) IndexOf(interval *Interval[T]) int {
	idx := 0
	for iv := range d.Sorted() {
		if iv == interval {
			return idx
		}
		idx++
	}
	return -1
}

var (
	_ IntervalCollection[Int]       = (*DCL[Int])(nil)
	_ SortedIntervalCollection[Int] = (*DCL[Int])(nil)
)
