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

	"github.com/kortschak/ivcol/internal/median"
)

// treeNode is one median-split node of a static interval tree: key
// splits the admitted intervals into those entirely left of it (in
// left), entirely right of it (in right), and those straddling it,
// held at this node in two orders (byLow ascending, byHigh
// descending).
type treeNode[T Ordered[T]] struct {
	key         T
	left, right *treeNode[T]
	byLow       []*Interval[T]
	byHigh      []*Interval[T]
}

// Tree is a static median-split interval tree (component H).
type Tree[T Ordered[T]] struct {
	root                      *treeNode[T]
	sorted                    []*Interval[T] // IntervalCompare order, for the rank-indexed operations
	allowsReferenceDuplicates bool
}

// NewTree builds a Tree from seq. allowsReferenceDuplicates controls
// whether bulk construction keeps more than one pointer to an
// interval-equal value; when false, later duplicates (by Equal) are
// dropped during construction.
func NewTree[T Ordered[T]](seq iter.Seq[*Interval[T]], allowsReferenceDuplicates bool) *Tree[T] {
	var input []*Interval[T]
	for iv := range seq {
		input = append(input, iv)
	}
	if !allowsReferenceDuplicates {
		input = dedupeEqual(input)
	}

	t := &Tree[T]{allowsReferenceDuplicates: allowsReferenceDuplicates}
	t.sorted = append([]*Interval[T](nil), input...)
	sort.SliceStable(t.sorted, func(i, j int) bool { return IntervalCompare(*t.sorted[i], *t.sorted[j]) < 0 })
	t.root = buildTreeNode(input)
	return t
}

func lessKey[T Ordered[T]](a, b T) bool { return a.Compare(b) < 0 }

// buildTreeNode recursively partitions items around the median of
// their combined endpoint values, per spec.md §4.H.
func buildTreeNode[T Ordered[T]](items []*Interval[T]) *treeNode[T] {
	if len(items) == 0 {
		return nil
	}
	endpoints := make([]T, 0, 2*len(items))
	for _, iv := range items {
		endpoints = append(endpoints, iv.Low, iv.High)
	}
	key := endpoints[median.Select(endpoints, lessKey[T], len(endpoints)/2)]
	// A median endpoint that no interval contains would leave nothing
	// straddling the key; move the key to an endpoint an interval includes.
	straddled := false
	for _, iv := range items {
		straddled = straddled || Overlaps(*iv, Point(key))
	}
	for i := 0; !straddled && i < len(items); i++ {
		if iv := items[i]; iv.LowIncluded {
			key, straddled = iv.Low, true
		} else if iv.HighIncluded {
			key, straddled = iv.High, true
		}
	}

	var left, right, straddle []*Interval[T]
	for _, iv := range items {
		switch {
		case Overlaps(*iv, Point(key)):
			straddle = append(straddle, iv)
		case CompareHigh(*iv, Point(key)) <= 0:
			left = append(left, iv)
		default:
			right = append(right, iv)
		}
	}

	n := &treeNode[T]{key: key}
	n.byLow = append([]*Interval[T](nil), straddle...)
	sort.SliceStable(n.byLow, func(i, j int) bool { return IntervalCompare(*n.byLow[i], *n.byLow[j]) < 0 })
	n.byHigh = append([]*Interval[T](nil), straddle...)
	sort.SliceStable(n.byHigh, func(i, j int) bool { return CompareHigh(*n.byHigh[i], *n.byHigh[j]) > 0 })
	n.left = buildTreeNode(left)
	n.right = buildTreeNode(right)
	return n
}

// walkPoint implements spec.md §4.H's point query: at each node,
// stream the ascending-by-low list while it still overlaps p (when p
// is left of key) or the descending-by-high list (when p is right of
// key), then descend; when p equals key every straddling interval
// overlaps p trivially and no descent is needed, since left/right
// subtrees hold only intervals that cannot reach key.
func (t *Tree[T]) walkPoint(n *treeNode[T], p T, yield func(*Interval[T]) bool) bool {
	for n != nil {
		switch {
		case p.Compare(n.key) < 0:
			for _, iv := range n.byLow {
				if !Overlaps(*iv, Point(p)) {
					break
				}
				if !yield(iv) {
					return false
				}
			}
			n = n.left
		case p.Compare(n.key) > 0:
			for _, iv := range n.byHigh {
				if !Overlaps(*iv, Point(p)) {
					break
				}
				if !yield(iv) {
					return false
				}
			}
			n = n.right
		default:
			for _, iv := range n.byLow {
				if !yield(iv) {
					return false
				}
			}
			return true
		}
	}
	return true
}

// walkInterval implements spec.md §4.H's interval query: when the
// node's key itself falls in q, every straddling interval shares that
// point with q and overlaps unconditionally, and both children must
// still be explored (q may overlap intervals on either side too);
// otherwise only the relevant straddle sublist is scanned (stopping as
// soon as its sort key takes it out of range) and only the one
// relevant child is explored, since the other can hold nothing that
// could ever overlap q.
func (t *Tree[T]) walkInterval(n *treeNode[T], q Interval[T], yield func(*Interval[T]) bool) bool {
	if n == nil {
		return true
	}
	switch {
	case Overlaps(Point(n.key), q):
		for _, iv := range n.byLow {
			if !yield(iv) {
				return false
			}
		}
		if !t.walkInterval(n.left, q, yield) {
			return false
		}
		return t.walkInterval(n.right, q, yield)
	case q.High.Compare(n.key) <= 0:
		for _, iv := range n.byHigh {
			if CompareHighLow(*iv, q) < 0 {
				break
			}
			if Overlaps(*iv, q) && !yield(iv) {
				return false
			}
		}
		return t.walkInterval(n.left, q, yield)
	default:
		for _, iv := range n.byLow {
			if CompareLowHigh(*iv, q) > 0 {
				break
			}
			if Overlaps(*iv, q) && !yield(iv) {
				return false
			}
		}
		return t.walkInterval(n.right, q, yield)
	}
}

// Kind reports KindTree.
func (t *Tree[T]) Kind() Kind { return KindTree }

// IsEmpty reports whether the index holds no intervals.
func (t *Tree[T]) IsEmpty() bool { return len(t.sorted) == 0 }

// Count returns the number of admitted intervals.
func (t *Tree[T]) Count() int { return len(t.sorted) }

// AllowsOverlaps always reports true.
func (t *Tree[T]) AllowsOverlaps() bool { return true }

// AllowsContainments always reports true.
func (t *Tree[T]) AllowsContainments() bool { return true }

// AllowsReferenceDuplicates reports the construction-time flag.
func (t *Tree[T]) AllowsReferenceDuplicates() bool { return t.allowsReferenceDuplicates }

// IsReadOnly always reports true: Tree is a static index.
func (t *Tree[T]) IsReadOnly() bool { return true }

// Choose returns an arbitrary admitted interval.
func (t *Tree[T]) Choose() (*Interval[T], error) {
	if len(t.sorted) == 0 {
		return nil, ErrNoSuchItem
	}
	return t.sorted[0], nil
}

// Span returns the smallest interval covering every admitted interval.
func (t *Tree[T]) Span() (Interval[T], error) {
	if len(t.sorted) == 0 {
		return Interval[T]{}, ErrNoSuchItem
	}
	span := *t.sorted[0]
	for _, iv := range t.sorted[1:] {
		span = JoinedSpan(span, *iv)
	}
	return span, nil
}

// LowestIntervals returns every admitted interval tied for lowest sort
// position.
func (t *Tree[T]) LowestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(t.Sorted())
}

// HighestIntervals returns every admitted interval tied for highest
// sort position.
func (t *Tree[T]) HighestIntervals() iter.Seq[*Interval[T]] {
	return tiedExtreme(t.sortedDescending())
}

func (t *Tree[T]) sortedDescending() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		for i := len(t.sorted) - 1; i >= 0; i-- {
			if !yield(t.sorted[i]) {
				return
			}
		}
	}
}

// MaximumDepth returns the largest number of admitted intervals sharing
// a common point.
func (t *Tree[T]) MaximumDepth() (int, *Interval[T], bool) {
	depth, witness, ok := MaximumDepthOf(valuesOf(t.Sorted()))
	if !ok {
		return 0, nil, false
	}
	return depth, &witness, true
}

// FindEquals returns every admitted interval interval-equal to query,
// located via binary search on the auxiliary sorted array.
func (t *Tree[T]) FindEquals(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		i := sort.Search(len(t.sorted), func(i int) bool {
			return IntervalCompare(*t.sorted[i], query) >= 0
		})
		for ; i < len(t.sorted) && IntervalCompare(*t.sorted[i], query) == 0; i++ {
			if !yield(t.sorted[i]) {
				return
			}
		}
	}
}

// FindOverlapsPoint returns every admitted interval overlapping point.
func (t *Tree[T]) FindOverlapsPoint(point T) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		t.walkPoint(t.root, point, yield)
	}
}

// FindOverlapsInterval returns every admitted interval overlapping query.
func (t *Tree[T]) FindOverlapsInterval(query Interval[T]) iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		t.walkInterval(t.root, query, yield)
	}
}

// FindOverlapPoint returns one admitted interval overlapping point, if any.
func (t *Tree[T]) FindOverlapPoint(point T) (*Interval[T], bool) {
	for iv := range t.FindOverlapsPoint(point) {
		return iv, true
	}
	return nil, false
}

// FindOverlapInterval returns one admitted interval overlapping query, if any.
func (t *Tree[T]) FindOverlapInterval(query Interval[T]) (*Interval[T], bool) {
	for iv := range t.FindOverlapsInterval(query) {
		return iv, true
	}
	return nil, false
}

// CountOverlapsPoint counts admitted intervals overlapping point.
func (t *Tree[T]) CountOverlapsPoint(point T) int {
	count := 0
	for range t.FindOverlapsPoint(point) {
		count++
	}
	return count
}

// CountOverlapsInterval counts admitted intervals overlapping query.
func (t *Tree[T]) CountOverlapsInterval(query Interval[T]) int {
	count := 0
	for range t.FindOverlapsInterval(query) {
		count++
	}
	return count
}

// Gaps scans Sorted, coalesced into covered runs since the tree admits
// containing pairs.
func (t *Tree[T]) Gaps() iter.Seq[Interval[T]] {
	return Gaps(coalesce(valuesOf(t.Sorted())))
}

// FindGaps restricts Gaps to query, scanning the auxiliary
// IntervalCompare-ordered array for overlapping intervals.
func (t *Tree[T]) FindGaps(query Interval[T]) iter.Seq[Interval[T]] {
	overlapping := func(yield func(Interval[T]) bool) {
		for _, iv := range t.sorted {
			if Overlaps(*iv, query) && !yield(*iv) {
				return
			}
		}
	}
	return FindGaps(coalesce(overlapping), query)
}

// Add always fails: Tree is read-only.
func (t *Tree[T]) Add(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// AddAll always fails: Tree is read-only.
func (t *Tree[T]) AddAll(iter.Seq[*Interval[T]]) (int, error) { return 0, ErrReadOnly }

// Remove always fails: Tree is read-only.
func (t *Tree[T]) Remove(*Interval[T]) (bool, error) { return false, ErrReadOnly }

// Clear always fails: Tree is read-only.
func (t *Tree[T]) Clear() error { return ErrReadOnly }

type treeMergeEntry[T Ordered[T]] struct {
	list []*Interval[T]
	idx  int
}

type treeMergeHeap[T Ordered[T]] []treeMergeEntry[T]

func (h treeMergeHeap[T]) Len() int { return len(h) }
func (h treeMergeHeap[T]) Less(i, j int) bool {
	return IntervalCompare(*h[i].list[h[i].idx], *h[j].list[h[j].idx]) < 0
}
func (h treeMergeHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *treeMergeHeap[T]) Push(x interface{}) { *h = append(*h, x.(treeMergeEntry[T])) }
func (h *treeMergeHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func collectTreeLists[T Ordered[T]](n *treeNode[T], h *treeMergeHeap[T]) {
	if n == nil {
		return
	}
	if len(n.byLow) > 0 {
		*h = append(*h, treeMergeEntry[T]{list: n.byLow})
	}
	collectTreeLists(n.left, h)
	collectTreeLists(n.right, h)
}

// Sorted enumerates admitted intervals in canonical IntervalCompare
// order via a collection of every node's already-sorted
// straddle list, merged with a min-heap — the same k-way merge idiom
// lcl.go uses for its layers, here applied to the tree's per-node
// lists instead of per-layer ones, matching spec.md §4.H's
// "priority-queue of currently-open intervals" framing.
func (t *Tree[T]) Sorted() iter.Seq[*Interval[T]] {
	return func(yield func(*Interval[T]) bool) {
		var h treeMergeHeap[T]
		collectTreeLists(t.root, &h)
		heap.Init(&h)
		for h.Len() > 0 {
			top := heap.Pop(&h).(treeMergeEntry[T])
			if !yield(top.list[top.idx]) {
				return
			}
			if top.idx+1 < len(top.list) {
				heap.Push(&h, treeMergeEntry[T]{list: top.list, idx: top.idx + 1})
			}
		}
	}
}

// IndexingSpeed reports the asymptotic cost of At and IndexOf: both
// read the auxiliary flat array, so access is constant.
func (t *Tree[T]) IndexingSpeed() IndexingSpeed { return Constant }

// At returns the interval at Sorted (IntervalCompare) position i.
func (t *Tree[T]) At(i int) *Interval[T] { return t.sorted[i] }

// IndexOf returns the Sorted (IntervalCompare) position of interval,
// identified by reference, or -1 if it is not present.
func (t *Tree[T]) IndexOf(interval *Interval[T]) int {
	for i, iv := range t.sorted {
		if iv == interval {
			return i
		}
	}
	return -1
}

var (
	_ IntervalCollection[Int]       = (*Tree[Int])(nil)
	_ SortedIntervalCollection[Int] = (*Tree[Int])(nil)
)
