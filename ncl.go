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

// NCL is a static Nested Containment List (component F): intervals
// arranged into an explicit containment tree, each interval's sublist
// holding exactly those intervals whose nearest strictly-containing
// ancestor it is. Unlike LCL's containment-free layers, NCL groups by
// true nesting depth, so a query that lands strictly inside one node
// can take its whole sublist without re-checking overlap.
type NCL[T Ordered[T]] struct {
	items                     []*Interval[T]
	childStart, childEnd      []int // parallel to items; immediate children range
	layers                    []layerRange
	allowsReferenceDuplicates bool
}

// NewNCL builds an NCL from seq. allowsReferenceDuplicates controls
// whether bulk construction keeps more than one pointer to an
// interval-equal value; when false, later duplicates (by Equal) are
// dropped during construction.
func NewNCL[T Ordered[T]](seq iter.Seq[*Interval[T]], allowsReferenceDuplicates bool) *NCL[T] {
	var input []*Interval[T]
	for iv := range seq {
		input = append(input, iv)
	}
	sort.SliceStable(input, func(i, j int) bool { return constructionOrder(*input[i], *input[j]) < 0 })
	if !allowsReferenceDuplicates {
		input = dedupeEqual(input)
	}

	n := &NCL[T]{allowsReferenceDuplicates: allowsReferenceDuplicates}
	if len(input) == 0 {
		return n
	}

	// One pass with an explicit open-container stack assigns each
	// interval its nearest strictly-containing ancestor's scan
	// position, or -1 for a root (no container). constructionOrder
	// guarantees a container is scanned before anything it contains.
	parent := make([]int, len(input))
	var stack []int
	for i, iv := range input {
		for len(stack) > 0 && !StrictlyContains(*input[stack[len(stack)-1]], *iv) {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			parent[i] = -1
		} else {
			parent[i] = stack[len(stack)-1]
		}
		stack = append(stack, i)
	}

	// Group by parent (-1 first, as the root tier), depth by depth,
	// the same way LCL groups by layer, so buildLayeredIndex applies
	// unchanged: a node's children are exactly the intervals scanned
	// with it as their nearest container.
	depthOf := make([]int, len(input))
	for i := range input {
		if parent[i] == -1 {
			depthOf[i] = 0
		} else {
			depthOf[i] = depthOf[parent[i]] + 1
		}
	}
	maxDepth := 0
	for _, d := range depthOf {
		if d > maxDepth {
			maxDepth = d
		}
	}
	layerItems := make([][]*Interval[T], maxDepth+1)
	layerScan := make([][]int, maxDepth+1)
	for i, iv := range input {
		d := depthOf[i]
		layerItems[d] = append(layerItems[d], iv)
		layerScan[d] = append(layerScan[d], i)
	}

	n.items, n.childStart, n.childEnd, n.layers = buildLayeredIndex(layerItems, layerScan)
	return n
}

// yieldSubtree yields every descendant of the node at absolute position
// i, recursively, regardless of how many depth tiers separate them —
// used by the FindOverlaps "takeAll" shortcut: once a query strictly
// contains a node, every descendant is also contained and needs no
// further overlap check.
func (n *NCL[T]) yieldSubtree(i int, yield func(*Interval[T]) bool) bool {
	cs, ce := n.childStart[i], n.childEnd[i]
	for j := cs; j < ce; j++ {
		if !yield(n.items[j]) {
			return false
		}
		if !n.yieldSubtree(j, yield) {
			return false
		}
	}
	return true
}

// walkSublist recursively searches the sublist [lo, hi) for every node
// overlapping q, per spec.md §4.F: binary-search to the first
// candidate, then scan forward; a node strictly contained by q yields
// its whole subtree via the takeAll shortcut, otherwise recurse into
// just that node's own children.
func (n *NCL[T]) walkSublist(lo, hi int, q Interval[T], yield func(*Interval[T]) bool) bool {
	if lo >= hi {
		return true
	}
	i := findFirstOverlap(n.items, lo, hi, q)
	for i < hi && CompareLowHigh(*n.items[i], q) <= 0 {
		if Overlaps(*n.items[i], q) {
			if !yield(n.items[i]) {
				return false
			}
			if StrictlyContains(q, *n.items[i]) {
				if !n.yieldSubtree(i, yield) {
					return false
				}
				i++
				continue
			}
		}
		cs, ce := n.childStart[i], n.childEnd[i]
		if cs < ce && !n.walkSublist(cs, ce, q, yield) {
			return false
		}
		i++
	}
	return true
}

// Kind reports KindNCL.
func (n *NCL[T]) Kind() Kind { return KindNCL }

// IsEmpty reports whether the index holds no intervals.
func (n *NCL[T]) IsEmpty() bool { return len(n.items) == 0 }

// Count returns the number of admitted intervals.
func (n *NCL[T]) Count() int { return len(n.items) }

// AllowsOverlaps always reports true.
func (n *NCL[T]) AllowsOverlaps() bool { return true }

// AllowsContainments always reports true.
func (n *NCL[T]) AllowsContainments() bool { return true }

// AllowsReferenceDuplicates reports the construction-time flag.
func (n *NCL[T]) AllowsReferenceDuplicates() bool { return n.allowsReferenceDuplicates }

// IsReadOnly always reports true: NCL is a static index.
func (n *NCL[T]) IsReadOnly() bool { return true }

// Choose returns an arbitrary admitted interval.
func (n *NCL[T]) Choose() (*Interval[T], error) {
	if len(n.items) == 0 {
		return nil, ErrNoSuchItem
	}
	return n.items[0], nil
}

// Span returns the smallest interval covering every admitted interval;
// the root tier is containment-free and covers the full span.
func (n *NCL[T]) Span() (Interval[T], error) {
	if len(n.layers) == 0 {
		return Interval[T]{}, ErrNoSuchItem
	}
	first, last := n.layers[0].start, n.layers[0].end-1
	return JoinedSpan(*n.items[first], *n.items[last]), nil
}

// LowestIntervals returns every admitted interval tied for lowest sort
// position.
func (n *NCL[T]) LowestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(n.Sorted())
}

// HighestIntervals returns every admitted interval tied for highest
// sort position.
func (n *NCL[T]) HighestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(n.sortedDescending())
}

func (n *NCL[T]) sortedDescending() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		all := slice(n.Sorted())
		for i := len(all) - 1; i >= 0; i-- {
			if !yield(all[i]) {
				return
			}
		}
	}
}

// MaximumDepth returns the largest number of admitted intervals sharing
// a common point.
func (n *NCL[T]) MaximumDepth() (int, *Interval[T], bool) {
	depth, witness, ok := MaximumDepthOf(valuesOf(n.Sorted()))
	if !ok {
		return 0, nil, false
	}
	return depth, &witness, true
}

// FindEquals returns every admitted interval interval-equal to query.
func (n *NCL[T]) FindEquals(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		for _, iv := range n.items {
			if IntervalCompare(*iv, query) == 0 && !yield(iv) {
				return
			}
		}
	}
}

// FindOverlapsPoint returns every admitted interval overlapping point.
func (n *NCL[T]) FindOverlapsPoint(point T) iter.Seq[*Interval[T]] {
	return n.FindOverlapsInterval(Point(point))
}

// FindOverlapsInterval returns every admitted interval overlapping
// query, recursing the containment tree per spec.md §4.F.
func (n *NCL[T]) FindOverlapsInterval(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		if len(n.layers) == 0 {
			return
		}
		n.walkSublist(n.layers[0].start, n.layers[0].end, query, yield)
	}
}

// FindOverlapPoint returns one admitted interval overlapping point, if any.
func (n *NCL[T]) FindOverlapPoint(point T) (*Interval[T], bool) {
	return n.FindOverlapInterval(Point(point))
}

// FindOverlapInterval returns the first interval FindOverlapsInterval
// would yield, if any.
func (n *NCL[T]) FindOverlapInterval(query Interval[T]) (*Interval[T], bool) {
	var found *Interval[T]
	for iv := range n.FindOverlapsInterval(query) {
		found = iv
		break
	}
	return found, found != nil
}

// CountOverlapsPoint counts admitted intervals overlapping point.
func (n *NCL[T]) CountOverlapsPoint(point T) int {
	return n.CountOverlapsInterval(Point(point))
}

// CountOverlapsInterval counts admitted intervals overlapping query.
func (n *NCL[T]) CountOverlapsInterval(query Interval[T]) int {
	count := 0
	for range n.FindOverlapsInterval(query) {
		count++
	}
	return count
}

// Gaps reuses the root tier, which is containment-free and covers the span.
func (n *NCL[T]) Gaps() iter.Seq[Interval[T]] {
	return Gaps(n.rootValues())
}

// FindGaps restricts Gaps to query via the root tier's overlap scan.
func (n *NCL[T]) FindGaps(query Interval[T]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		if len(n.layers) == 0 {
			return
		}
		lo, hi := n.layers[0].start, n.layers[0].end
		first := findFirstOverlap(n.items, lo, hi, query)
		last := findLastOverlap(n.items, first, hi, query)
		seq := func(y func(Interval[T]) bool) {
			for i := first; i < last; i++ {
				if !y(*n.items[i]) {
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

func (n *NCL[T]) rootValues() iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		if len(n.layers) == 0 {
			return
		}
		for i := n.layers[0].start; i < n.layers[0].end; i++ {
			if !yield(*n.items[i]) {
				return
			}
		}
	}
}

// Add always fails: NCL is read-only.
func (n *NCL[T]) Add(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// AddAll always fails: NCL is read-only.
func (n *NCL[T]) AddAll(iter.Seq[*Interval[T]]) (int, error) { return 0, ErrReadOnly }

// Remove always fails: NCL is read-only.
func (n *NCL[T]) Remove(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// Clear always fails: NCL is read-only.
func (n *NCL[T]) Clear() error { return ErrReadOnly }

// Sorted enumerates admitted intervals in IntervalCompare order. It
// collects the full containment-tree pre-order and stably sorts it:
// pre-order alone puts a container before a contained interval sharing
// its Low, while IntervalCompare puts the narrower one first.
func (n *NCL[T]) Sorted() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		if len(n.layers) == 0 {
			return
		}
		var all []*Interval[T]
		n.preOrder(n.layers[0].start, n.layers[0].end, func(iv *Interval[T]) bool {
			all = append(all, iv)
			return true
		})
		sort.SliceStable(all, func(i, j int) bool { return IntervalCompare(*all[i], *all[j]) < 0 })
		for _, iv := range all {
			if !yield(iv) {
				return
			}
		}
	}
}

func (n *NCL[T]) preOrder(lo, hi int, yield func(*Interval[T]) bool) bool {
	for i := lo; i < hi; i++ {
		if !yield(n.items[i]) {
			return false
		}
		cs, ce := n.childStart[i], n.childEnd[i]
		if cs < ce && !n.preOrder(cs, ce, yield) {
			return false
		}
	}
	return true
}

// IndexingSpeed reports the asymptotic cost of At and IndexOf: both walk
// Sorted, which rebuilds the order from the tree on every call rather
// than reading a flat array position.
func (n *NCL[T]) IndexingSpeed() IndexingSpeed { return Linear }

// At returns the interval at Sorted position i.
func (n *NCL[T]) At(i int) *Interval[T] {
	var result *Interval[T]
	idx := 0
	for iv := range n.Sorted() {
		if idx == i {
			result = iv
			break
		}
		idx++
	}
	return result
}

// IndexOf returns the Sorted position of interval,
// identified by reference, or -1 if it is not present.
func (n *NCL[T]) IndexOf(interval *Interval[T]) int {
	idx := 0
	for iv := range n.Sorted() {
		if iv == interval {
			return idx
		}
		idx++
	}
	return -1
}

var (
	_ IntervalCollection[Int]       = (*NCL[Int])(nil)
	_ SortedIntervalCollection[Int] = (*NCL[Int])(nil)
)
