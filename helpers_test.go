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

// ptrSeqOf adapts a slice of interval pointers, held by the caller so
// identity comparisons (IndexOf, Remove) remain meaningful, into the
// iter.Seq[*Interval[T]] the static index constructors consume.
func ptrSeqOf[T Ordered[T]](ivs []*Interval[T]) func(yield func(*Interval[T]) bool) {
	return func(yield func(*Interval[T]) bool) {
		for _, iv := range ivs {
			if !yield(iv) {
				return
			}
		}
	}
}

// collectPtrs drains a iter.Seq[*Interval[T]] into a slice of values,
// for order-insensitive or order-sensitive comparison in assertions.
func collectPtrs[T Ordered[T]](seq func(yield func(*Interval[T]) bool)) []Interval[T] {
	var out []Interval[T]
	for iv := range seq {
		out = append(out, *iv)
	}
	return out
}

// derefAll dereferences a plain slice of interval pointers, for
// asserting against a raw internal slice rather than an iter.Seq.
func derefAll[T Ordered[T]](ivs []*Interval[T]) []Interval[T] {
	out := make([]Interval[T], len(ivs))
	for i, iv := range ivs {
		out[i] = *iv
	}
	return out
}
