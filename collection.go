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

// IndexingSpeed characterizes the asymptotic cost of indexed access
// (operator[] / IndexOf) on a concrete SortedIntervalCollection.
type IndexingSpeed int

const (
	Constant IndexingSpeed = iota
	Logarithmic
	Linear
)

func (s IndexingSpeed) String() string {
	switch s {
	case Constant:
		return "constant"
	case Logarithmic:
		return "logarithmic"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// Kind identifies the concrete index family backing an IntervalCollection,
// for callers that branch on representation (for example, to decide
// whether a Rebuild into a static index is worthwhile).
type Kind int

const (
	KindSorted Kind = iota
	KindLCL
	KindNCL
	KindBIS
	KindTree
	KindDCL
)

func (k Kind) String() string {
	switch k {
	case KindSorted:
		return "sorted"
	case KindLCL:
		return "lcl"
	case KindNCL:
		return "ncl"
	case KindBIS:
		return "bis"
	case KindTree:
		return "tree"
	case KindDCL:
		return "dcl"
	default:
		return "unknown"
	}
}

// IntervalCollection is the capability set every index in this package
// exposes, regardless of internal representation.
type IntervalCollection[T Ordered[T]] interface {
	// Kind reports the concrete index family.
	Kind() Kind

	// IsEmpty reports whether the collection admits no intervals.
	IsEmpty() bool
	// Count returns the number of admitted intervals.
	Count() int
	// AllowsOverlaps, AllowsContainments, and AllowsReferenceDuplicates
	// report the static admission policy of the concrete index.
	AllowsOverlaps() bool
	AllowsContainments() bool
	AllowsReferenceDuplicates() bool
	// IsReadOnly reports whether Add/AddAll/Remove/Clear always fail.
	IsReadOnly() bool

	// Choose returns an arbitrary admitted interval, or ErrNoSuchItem if
	// the collection is empty.
	Choose() (*Interval[T], error)
	// Span returns the smallest interval covering every admitted
	// interval, or ErrNoSuchItem if the collection is empty.
	Span() (Interval[T], error)
	// LowestIntervals and HighestIntervals return every admitted
	// interval tied for the lowest (respectively highest) sort position.
	LowestIntervals() iter.Seq[*Interval[T]]
	HighestIntervals() iter.Seq[*Interval[T]]

	// MaximumDepth returns the largest number of admitted intervals
	// sharing a common point, and a witness interval attaining it.
	MaximumDepth() (depth int, witness *Interval[T], ok bool)

	// FindEquals returns every admitted interval that is interval-equal
	// to query.
	FindEquals(query Interval[T]) iter.Seq[*Interval[T]]
	// FindOverlapsPoint and FindOverlapsInterval return, in unspecified
	// order unless the concrete index documents otherwise, every
	// admitted interval overlapping the query.
	FindOverlapsPoint(point T) iter.Seq[*Interval[T]]
	FindOverlapsInterval(query Interval[T]) iter.Seq[*Interval[T]]
	// FindOverlapPoint and FindOverlapInterval return one overlapping
	// interval, if any exists.
	FindOverlapPoint(point T) (*Interval[T], bool)
	FindOverlapInterval(query Interval[T]) (*Interval[T], bool)
	// CountOverlapsPoint and CountOverlapsInterval count overlapping
	// intervals without materializing them.
	CountOverlapsPoint(point T) int
	CountOverlapsInterval(query Interval[T]) int

	// Gaps and FindGaps enumerate the complement of the union of
	// admitted intervals, unbounded or restricted to query.
	Gaps() iter.Seq[Interval[T]]
	FindGaps(query Interval[T]) iter.Seq[Interval[T]]

	// Add admits interval, returning false if rejected by the capability
	// predicates or the collection is read-only.
	Add(interval *Interval[T]) (bool, error)
	// AddAll admits every interval in intervals, returning the count
	// admitted.
	AddAll(intervals iter.Seq[*Interval[T]]) (int, error)
	// Remove deletes the interval that is the same object as interval,
	// returning false if it is not present or the collection is
	// read-only.
	Remove(interval *Interval[T]) (bool, error)
	// Clear removes every admitted interval. A no-op on an already
	// empty collection.
	Clear() error
}

// SortedIntervalCollection is implemented by indexes E, F, G, H, and D:
// every admitted interval is reachable by its position in Sorted's
// enumeration order.
type SortedIntervalCollection[T Ordered[T]] interface {
	IntervalCollection[T]

	// Sorted enumerates admitted intervals by IntervalCompare, except
	// that an LCL built with sorted=false enumerates layer by layer.
	Sorted() iter.Seq[*Interval[T]]
	// IndexingSpeed reports the asymptotic cost of At and IndexOf.
	IndexingSpeed() IndexingSpeed
	// At returns the interval at sorted position i (layer-major
	// position for LCL).
	At(i int) *Interval[T]
	// IndexOf returns the sorted position of interval, identified by
	// reference, or -1 if it is not present.
	IndexOf(interval *Interval[T]) int
}

// ContainmentFreeIntervalCollection is implemented by D and any other
// index whose admitted intervals are pairwise non-containing.
type ContainmentFreeIntervalCollection[T Ordered[T]] interface {
	SortedIntervalCollection[T]

	// SortedBackwards enumerates admitted intervals in descending
	// IntervalCompare order.
	SortedBackwards() iter.Seq[*Interval[T]]
	// EnumerateFromPoint and EnumerateBackwardsFromPoint enumerate from
	// the first (respectively last) admitted interval at or after
	// (before) point, optionally including intervals merely overlapping
	// it.
	EnumerateFromPoint(point T, includeOverlaps bool) iter.Seq[*Interval[T]]
	EnumerateBackwardsFromPoint(point T, includeOverlaps bool) iter.Seq[*Interval[T]]
	// EnumerateFromInterval and EnumerateBackwardsFromInterval are the
	// interval-query equivalents; includeInterval controls whether
	// intervals merely overlapping query are included.
	EnumerateFromInterval(query Interval[T], includeInterval bool) iter.Seq[*Interval[T]]
	EnumerateBackwardsFromInterval(query Interval[T], includeInterval bool) iter.Seq[*Interval[T]]
	// EnumerateFromIndex and EnumerateBackwardsFromIndex enumerate from
	// a sorted position.
	EnumerateFromIndex(i int) iter.Seq[*Interval[T]]
	EnumerateBackwardsFromIndex(i int) iter.Seq[*Interval[T]]
}

// FiniteIntervalCollection is the overlap-free specialization: at most
// one interval can ever cover a given point, so depth and neighborhood
// queries degenerate to a single result.
type FiniteIntervalCollection[T Ordered[T]] interface {
	SortedIntervalCollection[T]

	// NeighbourOfPoint and NeighbourOfInterval return the admitted
	// interval overlapping the query, if any; since the collection is
	// overlap-free there can be at most one.
	NeighbourOfPoint(point T) (*Interval[T], bool)
	NeighbourOfInterval(query Interval[T]) (*Interval[T], bool)
}
