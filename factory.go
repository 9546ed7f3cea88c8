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

// StaticKind selects which static index RebuildStatic produces.
type StaticKind int

const (
	// StaticLCL builds a Layered Containment List.
	StaticLCL StaticKind = iota
	// StaticNCL builds a Nested Containment List.
	StaticNCL
	// StaticBIS builds a Binary Interval Search index.
	StaticBIS
	// StaticTree builds a median-split interval tree.
	StaticTree
)

// RebuildStatic drains source's admitted intervals (by reference, no
// copying) into a new static index of the requested kind. source is
// left untouched; the caller retains ownership of it.
func RebuildStatic[T Ordered[T]](source SortedIntervalCollection[T], kind StaticKind) IntervalCollection[T] {
	items := source.Sorted()
	allowsReferenceDuplicates := source.AllowsReferenceDuplicates()
	switch kind {
	case StaticNCL:
		return NewNCL(items, allowsReferenceDuplicates)
	case StaticBIS:
		return NewBIS(items, allowsReferenceDuplicates)
	case StaticTree:
		return NewTree(items, allowsReferenceDuplicates)
	default:
		return NewLCL(items, allowsReferenceDuplicates, false)
	}
}

// RebuildDynamic drains source's admitted intervals (by reference)
// into a new dynamic collection: a DCL if source ever admits
// containing pairs (AllowsContainments), or a plain Sorted with
// source's own AllowsOverlaps mode otherwise. source is left untouched.
func RebuildDynamic[T Ordered[T]](source SortedIntervalCollection[T]) IntervalCollection[T] {
	allowsReferenceDuplicates := source.AllowsReferenceDuplicates()
	if source.AllowsContainments() {
		d := NewDCL[T](allowsReferenceDuplicates)
		for iv := range source.Sorted() {
			d.Add(iv)
		}
		return d
	}
	s := NewSorted[T](source.AllowsOverlaps(), allowsReferenceDuplicates)
	for iv := range source.Sorted() {
		s.Add(iv)
	}
	return s
}

// NewIndexFor builds the concrete index matching the requested
// capability flags from seq, per Design Note 9's capability-flag
// mapping over the three flags every IntervalCollection exposes
// directly (isReadOnly, allowsOverlaps, allowsReferenceDuplicates):
//
//   - isReadOnly=false always yields a Sorted (component D), mutable,
//     in the overlap-permitting or overlap-free mode requested.
//   - isReadOnly=true, allowsOverlaps=true yields an LCL, the
//     general-purpose static overlap-and-containment index.
//   - isReadOnly=true, allowsOverlaps=false yields a Sorted frozen in
//     place: the overlap-free endpoint-sorted structure already gives
//     every FiniteIntervalCollection guarantee a static index would,
//     so no separate static overlap-free family is needed.
//
// Containment-permitting composition (DCL) and the other static
// families (NCL, BIS, Tree) are one capability level finer than these
// three flags distinguish; callers wanting them call the constructor
// directly, or use RebuildStatic/RebuildDynamic once a concrete
// collection already exists.
func NewIndexFor[T Ordered[T]](seq iter.Seq[*Interval[T]], isReadOnly, allowsOverlaps, allowsReferenceDuplicates bool) IntervalCollection[T] {
	if isReadOnly && allowsOverlaps {
		return NewLCL(seq, allowsReferenceDuplicates, false)
	}
	s := NewSorted[T](allowsOverlaps, allowsReferenceDuplicates)
	for iv := range seq {
		s.Add(iv)
	}
	if isReadOnly {
		s.Freeze()
	}
	return s
}
