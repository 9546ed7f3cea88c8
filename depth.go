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

// openHighs is a min-heap of intervals ordered by High, used to track
// the intervals open at the scan position currently under consideration.
// There is no third-party priority-queue in the example corpus for this
// shape of problem, and container/heap is the idiomatic standard-library
// tool for exactly this kind of k-way "currently open" bookkeeping.
type openHighs[T Ordered[T]] []Interval[T]

func (h openHighs[T]) Len() int            { return len(h) }
func (h openHighs[T]) Less(i, j int) bool  { return CompareHigh(h[i], h[j]) < 0 }
func (h openHighs[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHighs[T]) Push(x interface{}) { *h = append(*h, x.(Interval[T])) }
func (h *openHighs[T]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// MaximumDepthOf scans seq in sorted order and returns the peak number of
// intervals sharing a common point, along with one witness interval where
// that peak is attained. ok is false when seq yields no intervals.
func MaximumDepthOf[T Ordered[T]](seq iter.Seq[Interval[T]]) (depth int, witness Interval[T], ok bool) {
	var items []Interval[T]
	for iv := range seq {
		items = append(items, iv)
	}
	sort.SliceStable(items, func(i, j int) bool { return IntervalCompare(items[i], items[j]) < 0 })

	var open openHighs[T]
	for _, iv := range items {
		for open.Len() > 0 && CompareHighLow(open[0], iv) < 0 {
			heap.Pop(&open)
		}
		heap.Push(&open, iv)
		if open.Len() > depth {
			depth = open.Len()
			witness = iv
			ok = true
		}
	}
	return depth, witness, ok
}
