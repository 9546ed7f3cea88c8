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
	"sort"
)

// constructionOrder orders intervals the way LCL and NCL construction
// needs: by Low ascending, then by High descending. Two intervals
// sharing a Low must process the wider (containing) one first, so a
// containment scan sees the container before the interval it contains;
// the canonical IntervalCompare (Low ascending, then High ascending)
// would process the narrower one first and miss the containment.
func constructionOrder[T Ordered[T]](a, b Interval[T]) int {
	if c := CompareLow(a, b); c != 0 {
		return c
	}
	return -CompareHigh(a, b)
}

// LCL is a static Layered Containment List (component E): intervals
// arranged into containment-free layers, each interval in layer i>0
// strictly contained by some interval in layer i-1.
type LCL[T Ordered[T]] struct {
	items                     []*Interval[T]
	childStart, childEnd      []int // parallel to items; child range in the next layer
	layers                    []layerRange
	allowsReferenceDuplicates bool
	isFindOverlapsSorted      bool
}

// NewLCL builds an LCL from seq. allowsReferenceDuplicates controls
// whether bulk construction keeps more than one pointer to an
// interval-equal value; when false, later duplicates (by Equal) are
// dropped during construction. sorted, if true, makes Sorted produce a
// globally IntervalCompare-ordered stream via a heap merge of the
// layers instead of the cheaper layer-by-layer order.
func NewLCL[T Ordered[T]](seq iter.Seq[*Interval[T]], allowsReferenceDuplicates, sorted bool) *LCL[T] {
	var input []*Interval[T]
	for iv := range seq {
		input = append(input, iv)
	}
	sort.SliceStable(input, func(i, j int) bool { return constructionOrder(*input[i], *input[j]) < 0 })
	if !allowsReferenceDuplicates {
		input = dedupeEqual(input)
	}

	l := &LCL[T]{allowsReferenceDuplicates: allowsReferenceDuplicates, isFindOverlapsSorted: sorted}
	if len(input) == 0 {
		return l
	}

	// Assign each interval to the lowest layer whose current last
	// element does not strictly contain it, tracking each placed
	// item's original scan position so later child-range computation
	// can recover layer interleaving order.
	var layerItems [][]*Interval[T]
	var layerScan [][]int
	for scanIdx, iv := range input {
		placed := false
		for L := range layerItems {
			last := layerItems[L][len(layerItems[L])-1]
			if !StrictlyContains(*last, *iv) {
				layerItems[L] = append(layerItems[L], iv)
				layerScan[L] = append(layerScan[L], scanIdx)
				placed = true
				break
			}
		}
		if !placed {
			layerItems = append(layerItems, []*Interval[T]{iv})
			layerScan = append(layerScan, []int{scanIdx})
		}
	}

	l.items, l.childStart, l.childEnd, l.layers = buildLayeredIndex(layerItems, layerScan)
	return l
}

func findFirstOverlap[T Ordered[T]](items []*Interval[T], lo, hi int, q Interval[T]) int {
	return lo + sort.Search(hi-lo, func(i int) bool {
		return CompareHighLow(*items[lo+i], q) >= 0
	})
}

func findLastOverlap[T Ordered[T]](items []*Interval[T], lo, hi int, q Interval[T]) int {
	return lo + sort.Search(hi-lo, func(i int) bool {
		return CompareLowHigh(*items[lo+i], q) > 0
	})
}

// walkOverlaps runs spec.md's layer-descent algorithm, invoking visit
// with the bounds [first, last) of each overlapping run found, one
// layer at a time, until visit returns false or no layer overlaps q.
func (l *LCL[T]) walkOverlaps(q Interval[T], visit func(layer, first, last int) bool) {
	if len(l.layers) == 0 {
		return
	}
	layer := 0
	lower, upper := l.layers[0].start, l.layers[0].end
	for lower < upper {
		first := lower
		if !Overlaps(*l.items[first], q) {
			first = findFirstOverlap(l.items, first+1, upper, q)
		}
		if first >= upper || CompareLowHigh(*l.items[first], q) > 0 {
			return
		}
		last := findLastOverlap(l.items, first, upper, q)
		if !visit(layer, first, last) {
			return
		}
		lower = childBoundary(l.layers, l.childStart, layer, first)
		upper = childBoundary(l.layers, l.childStart, layer, last)
		layer++
	}
}

// Kind reports KindLCL.
func (l *LCL[T]) Kind() Kind { return KindLCL }

// IsEmpty reports whether the index holds no intervals.
func (l *LCL[T]) IsEmpty() bool { return len(l.items) == 0 }

// Count returns the number of admitted intervals.
func (l *LCL[T]) Count() int { return len(l.items) }

// AllowsOverlaps always reports true: LCL exists to index overlapping,
// containing intervals.
func (l *LCL[T]) AllowsOverlaps() bool { return true }

// AllowsContainments always reports true.
func (l *LCL[T]) AllowsContainments() bool { return true }

// AllowsReferenceDuplicates reports the construction-time flag.
func (l *LCL[T]) AllowsReferenceDuplicates() bool { return l.allowsReferenceDuplicates }

// IsReadOnly always reports true: LCL is a static index.
func (l *LCL[T]) IsReadOnly() bool { return true }

// Choose returns an arbitrary admitted interval.
func (l *LCL[T]) Choose() (*Interval[T], error) {
	if len(l.items) == 0 {
		return nil, ErrNoSuchItem
	}
	return l.items[0], nil
}

// Span returns the smallest interval covering every admitted interval;
// layer 0 is containment-free and covers the full span.
func (l *LCL[T]) Span() (Interval[T], error) {
	if len(l.layers) == 0 {
		return Interval[T]{}, ErrNoSuchItem
	}
	first, last := l.layers[0].start, l.layers[0].end-1
	return JoinedSpan(*l.items[first], *l.items[last]), nil
}

// LowestIntervals returns every admitted interval tied for lowest sort
// position.
func (l *LCL[T]) LowestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(l.Sorted())
}

// HighestIntervals returns every admitted interval tied for highest
// sort position.
func (l *LCL[T]) HighestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(l.sortedDescending())
}

func tiedExtreme[T Ordered[T]](seq iter.Seq[*Interval[T]]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		var first *Interval[T]
		for iv := range seq {
			if first == nil {
				first = iv
			} else if IntervalCompare(*iv, *first) != 0 {
				return
			}
			if !yield(iv) {
				return
			}
		}
	}
}

func (l *LCL[T]) sortedDescending() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		all := slice(l.Sorted())
		for i := len(all) - 1; i >= 0; i-- {
			if !yield(all[i]) {
				return
			}
		}
	}
}

func slice[T Ordered[T]](seq iter.Seq[*Interval[T]]) []*Interval[T] {
	var out []*Interval[T]
	for iv := range seq {
		out = append(out, iv)
	}
	return out
}

// MaximumDepth returns the largest number of admitted intervals sharing
// a common point.
func (l *LCL[T]) MaximumDepth() (int, *Interval[T], bool) {
	depth, witness, ok := MaximumDepthOf(valuesOf(l.Sorted()))
	if !ok {
		return 0, nil, false
	}
	return depth, &witness, true
}

// FindEquals returns every admitted interval interval-equal to query.
func (l *LCL[T]) FindEquals(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		for _, iv := range l.items {
			if IntervalCompare(*iv, query) == 0 && !yield(iv) {
				return
			}
		}
	}
}

// FindOverlapsPoint returns every admitted interval overlapping point.
func (l *LCL[T]) FindOverlapsPoint(point T) iter.Seq[*Interval[T]] {
	return l.FindOverlapsInterval(Point(point))
}

// FindOverlapsInterval returns every admitted interval overlapping query.
func (l *LCL[T]) FindOverlapsInterval(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		l.walkOverlaps(query, func(_, first, last int) bool {
			for i := first; i < last; i++ {
				if !yield(l.items[i]) {
					return false
				}
			}
			return true
		})
	}
}

// FindOverlapPoint returns one admitted interval overlapping point, if any.
func (l *LCL[T]) FindOverlapPoint(point T) (*Interval[T], bool) {
	return l.FindOverlapInterval(Point(point))
}

// FindOverlapInterval binary-searches the first layer and returns the
// found interval if it overlaps query.
func (l *LCL[T]) FindOverlapInterval(query Interval[T]) (*Interval[T], bool) {
	if len(l.layers) == 0 {
		return nil, false
	}
	lo, hi := l.layers[0].start, l.layers[0].end
	idx := findFirstOverlap(l.items, lo, hi, query)
	if idx >= hi || !Overlaps(*l.items[idx], query) {
		return nil, false
	}
	return l.items[idx], true
}

// CountOverlapsPoint counts admitted intervals overlapping point.
func (l *LCL[T]) CountOverlapsPoint(point T) int {
	return l.CountOverlapsInterval(Point(point))
}

// CountOverlapsInterval accumulates last-first across every
// overlapping layer run.
func (l *LCL[T]) CountOverlapsInterval(query Interval[T]) int {
	count := 0
	l.walkOverlaps(query, func(_, first, last int) bool {
		count += last - first
		return true
	})
	return count
}

// Gaps reuses layer 0, which is containment-free and covers the span.
func (l *LCL[T]) Gaps() iter.Seq[Interval[T]] {
	return Gaps(layer0Values(l))
}

// FindGaps restricts Gaps to query, via layer 0's overlap scan.
func (l *LCL[T]) FindGaps(query Interval[T]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		if len(l.layers) == 0 {
			return
		}
		lo, hi := l.layers[0].start, l.layers[0].end
		first := findFirstOverlap(l.items, lo, hi, query)
		last := findLastOverlap(l.items, first, hi, query)
		seq := func(y func(Interval[T]) bool) {
			for i := first; i < last; i++ {
				if !y(*l.items[i]) {
					return
				}
			}
		}
		for gap := range FindGaps(seq, query) {
			if !yield(gap) {
				return
			}
		}
	}
}

func layer0Values[T Ordered[T]](l *LCL[T]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		if len(l.layers) == 0 {
			return
		}
		for i := l.layers[0].start; i < l.layers[0].end; i++ {
			if !yield(*l.items[i]) {
				return
			}
		}
	}
}

// Add always fails: LCL is read-only.
func (l *LCL[T]) Add(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// AddAll always fails: LCL is read-only.
func (l *LCL[T]) AddAll(iter.Seq[*Interval[T]]) (int, error) { return 0, ErrReadOnly }

// Remove always fails: LCL is read-only.
func (l *LCL[T]) Remove(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// Clear always fails: LCL is read-only.
func (l *LCL[T]) Clear() error { return ErrReadOnly }

// Sorted enumerates admitted intervals. By default this is the cheap
// layer-by-layer, within-layer order; when the index was constructed
// with sorted=true it instead merges the layers with a min-heap to
// produce a globally IntervalCompare-ordered stream.
func (l *LCL[T]) Sorted() iter.Seq[*Interval[T]] {
	if !l.isFindOverlapsSorted {
		return func(yield func(*Interval[T]) bool) {
			for _, iv := range l.items {
				if !yield(iv) {
					return
				}
			}
		}
	}
	return l.mergedSorted
}

type lclMergeEntry[T Ordered[T]] struct {
	layer, idx int
	iv         *Interval[T]
}

type lclMergeHeap[T Ordered[T]] []lclMergeEntry[T]

func (h lclMergeHeap[T]) Len() int { return len(h) }
func (h lclMergeHeap[T]) Less(i, j int) bool {
	return IntervalCompare(*h[i].iv, *h[j].iv) < 0
}
func (h lclMergeHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *lclMergeHeap[T]) Push(x interface{}) { *h = append(*h, x.(lclMergeEntry[T])) }
func (h *lclMergeHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func (l *LCL[T]) mergedSorted(yield func(*Interval[T]) bool) {
	var h lclMergeHeap[T]
	for L, layer := range l.layers {
		if layer.start < layer.end {
			h = append(h, lclMergeEntry[T]{layer: L, idx: layer.start, iv: l.items[layer.start]})
		}
	}
	heap.Init(&h)
	for h.Len() > 0 {
		top := heap.Pop(&h).(lclMergeEntry[T])
		if !yield(top.iv) {
			return
		}
		next := top.idx + 1
		if next < l.layers[top.layer].end {
			heap.Push(&h, lclMergeEntry[T]{layer: top.layer, idx: next, iv: l.items[next]})
		}
	}
}

// IndexingSpeed reports the asymptotic cost of At and IndexOf: the
// backing store is a flat array, so access is constant.
func (l *LCL[T]) IndexingSpeed() IndexingSpeed { return Constant }

// At returns the interval at unsorted (layer-major) position i.
func (l *LCL[T]) At(i int) *Interval[T] { return l.items[i] }

// IndexOf returns the position of interval, identified by reference,
// or -1 if it is not present.
func (l *LCL[T]) IndexOf(interval *Interval[T]) int {
	for i, iv := range l.items {
		if iv == interval {
			return i
		}
	}
	return -1
}

var (
	_ IntervalCollection[Int]       = (*LCL[Int])(nil)
	_ SortedIntervalCollection[Int] = (*LCL[Int])(nil)
)
