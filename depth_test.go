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
	"testing"

	"github.com/stretchr/testify/assert"
)

func seqOf[T Ordered[T]](ivs ...Interval[T]) func(yield func(Interval[T]) bool) {
	return func(yield func(Interval[T]) bool) {
		for _, iv := range ivs {
			if !yield(iv) {
				return
			}
		}
	}
}

func TestMaximumDepthOfEmpty(t *testing.T) {
	_, _, ok := MaximumDepthOf(seqOf[Int]())
	assert.False(t, ok)
}

func TestMaximumDepthOfNoOverlap(t *testing.T) {
	depth, witness, ok := MaximumDepthOf(seqOf(
		New(Int(0), Int(2), true, false),
		New(Int(2), Int(4), true, false),
	))
	assert.True(t, ok)
	assert.Equal(t, 1, depth)
	assert.Equal(t, New(Int(0), Int(2), true, false), witness)
}

func TestMaximumDepthOfNestedAndOverlapping(t *testing.T) {
	// Three intervals sharing the point 5: a wide container, one
	// overlapping pair straddling it.
	a := New(Int(0), Int(10), true, true)
	b := New(Int(4), Int(6), true, true)
	c := New(Int(5), Int(8), true, true)
	d := New(Int(20), Int(22), true, true)

	depth, witness, ok := MaximumDepthOf(seqOf(a, b, c, d))
	assert.True(t, ok)
	assert.Equal(t, 3, depth)
	assert.True(t, Overlaps(witness, a))
	assert.True(t, Overlaps(witness, b))
	assert.True(t, Overlaps(witness, c))
}

func TestMaximumDepthOfTouchingHalfOpen(t *testing.T) {
	// Half-open intervals that merely touch at a shared endpoint do not
	// stack: depth stays 1 throughout.
	depth, _, ok := MaximumDepthOf(seqOf(
		New(Int(0), Int(5), true, false),
		New(Int(5), Int(10), true, false),
		New(Int(10), Int(15), true, false),
	))
	assert.True(t, ok)
	assert.Equal(t, 1, depth)
}
