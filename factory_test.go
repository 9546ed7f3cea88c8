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
	"github.com/stretchr/testify/require"
)

func TestNewIndexForReadOnlyOverlapsYieldsLCL(t *testing.T) {
	a, b, c, d := lclFixture()
	idx := NewIndexFor(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), true, true, false)

	assert.Equal(t, KindLCL, idx.Kind())
	assert.Equal(t, 4, idx.Count())
	assert.True(t, idx.IsReadOnly())
}

func TestNewIndexForMutableOverlapPermitting(t *testing.T) {
	e, f, g := bisDisjointFixture()
	idx := NewIndexFor(ptrSeqOf([]*Interval[Int]{&e, &f, &g}), false, true, false)

	assert.Equal(t, KindSorted, idx.Kind())
	assert.Equal(t, 3, idx.Count())
	assert.False(t, idx.IsReadOnly())
	assert.True(t, idx.AllowsOverlaps())

	h := New(Int(30), Int(35), true, false)
	ok, err := idx.Add(&h)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, idx.Count())
}

func TestNewIndexForReadOnlyOverlapFreeFreezesSorted(t *testing.T) {
	e, f, g := bisDisjointFixture()
	idx := NewIndexFor(ptrSeqOf([]*Interval[Int]{&e, &f, &g}), true, false, false)

	assert.Equal(t, KindSorted, idx.Kind())
	assert.True(t, idx.IsReadOnly())
	assert.False(t, idx.AllowsOverlaps())

	_, err := idx.Add(&e)
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestNewIndexForMutableOverlapFree(t *testing.T) {
	e, f, g := bisDisjointFixture()
	idx := NewIndexFor(ptrSeqOf([]*Interval[Int]{&e, &f, &g}), false, false, false)

	assert.Equal(t, KindSorted, idx.Kind())
	assert.False(t, idx.IsReadOnly())
	assert.False(t, idx.AllowsOverlaps())
	assert.Equal(t, 3, idx.Count())
}

func overlapFreeSorted(t *testing.T) (*Sorted[Int], Interval[Int], Interval[Int], Interval[Int]) {
	t.Helper()
	e, f, g := bisDisjointFixture()
	s := NewSorted[Int](false, false)
	for _, iv := range []*Interval[Int]{&e, &f, &g} {
		_, err := s.Add(iv)
		require.NoError(t, err)
	}
	return s, e, f, g
}

func TestRebuildStatic(t *testing.T) {
	cases := []struct {
		name string
		kind StaticKind
		want Kind
	}{
		{"LCL", StaticLCL, KindLCL},
		{"NCL", StaticNCL, KindNCL},
		{"BIS", StaticBIS, KindBIS},
		{"Tree", StaticTree, KindTree},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, _, _, _ := overlapFreeSorted(t)
			rebuilt := RebuildStatic[Int](s, c.kind)
			assert.Equal(t, c.want, rebuilt.Kind())
			assert.Equal(t, 3, rebuilt.Count())
			// source is left untouched
			assert.Equal(t, 3, s.Count())
		})
	}
}

func TestRebuildDynamicFromContainmentFreeSourceYieldsSorted(t *testing.T) {
	s, _, _, _ := overlapFreeSorted(t)
	dyn := RebuildDynamic[Int](s)

	assert.Equal(t, KindSorted, dyn.Kind())
	assert.Equal(t, 3, dyn.Count())
	assert.Equal(t, 3, s.Count(), "source untouched")
}

func TestRebuildDynamicFromContainmentPermittingSourceYieldsDCL(t *testing.T) {
	a, b, c, d := lclFixture()
	lcl := NewLCL(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), false, false)

	dyn := RebuildDynamic[Int](lcl)
	assert.Equal(t, KindDCL, dyn.Kind())
	assert.Equal(t, 4, dyn.Count())
	assert.Equal(t, 4, lcl.Count(), "source untouched")
}
