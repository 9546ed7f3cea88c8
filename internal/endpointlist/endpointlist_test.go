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

package endpointlist

import (
	"math/rand"
	"testing"

	"github.com/kr/pretty"
	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func compareInt(a, b *int) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func noConflicts(*int, *int) bool { return false }

// rejectEqual conflicts only with a value-equal neighbor.
func rejectEqual(newItem, neighbor *int) bool { return *newItem == *neighbor }

// isBST reports whether every value in the subtree rooted at n falls
// between min and max inclusive, recursively; equal values may sit on
// either side of a node.
func isBST[V any](n *node[V], compare func(a, b *V) int, min, max *V) bool {
	if n == nil {
		return true
	}
	if min != nil && compare(n.item, min) < 0 {
		return false
	}
	if max != nil && compare(n.item, max) > 0 {
		return false
	}
	return isBST(n.left, compare, min, n.item) && isBST(n.right, compare, n.item, max)
}

// isSizeConsistent reports whether every node's cached size equals
// 1 plus the size of both children, the augmentation this tree adds
// on top of the teacher's range-augmented original.
func isSizeConsistent[V any](n *node[V]) bool {
	if n == nil {
		return true
	}
	if n.size != 1+sizeOf(n.left)+sizeOf(n.right) {
		return false
	}
	return isSizeConsistent(n.left) && isSizeConsistent(n.right)
}

// isBalanced reports whether every root-to-leaf path crosses the same
// number of black links, the LLRB black-height invariant.
func isBalanced[V any](n *node[V]) bool {
	var blacks int
	for x := n; x != nil; x = x.left {
		if x.color == black {
			blacks++
		}
	}
	return balancedAt(n, blacks)
}

func balancedAt[V any](n *node[V], blacks int) bool {
	if n == nil {
		return blacks == 0
	}
	if n.color == black {
		blacks--
	}
	return balancedAt(n.left, blacks) && balancedAt(n.right, blacks)
}

func noRedRed[V any](n *node[V]) bool {
	if n == nil {
		return true
	}
	if n.color == red && (colorOf(n.left) == red || colorOf(n.right) == red) {
		return false
	}
	return noRedRed(n.left) && noRedRed(n.right)
}

func (s *S) TestAddRejectsConflict(c *check.C) {
	l := New(compareInt, rejectEqual)
	a, b := 5, 5
	c.Check(l.Add(&a), check.Equals, true)
	c.Check(l.Add(&b), check.Equals, false)
	c.Check(l.Len(), check.Equals, 1)
}

func (s *S) TestRandomInsertionInvariants(c *check.C) {
	l := New(compareInt, noConflicts)
	const n = 2000
	values := make([]int, n)
	for i := range values {
		values[i] = rand.Intn(n * 10)
	}
	for i := range values {
		ok := l.Add(&values[i])
		c.Assert(ok, check.Equals, true)
		c.Assert(isBST(l.root, l.compare, (*int)(nil), (*int)(nil)), check.Equals, true,
			check.Commentf("tree: %# v", pretty.Formatter(l.root)))
		c.Assert(isSizeConsistent(l.root), check.Equals, true)
		c.Assert(noRedRed(l.root), check.Equals, true)
		c.Assert(isBalanced(l.root), check.Equals, true)
		c.Assert(l.Len(), check.Equals, i+1)
	}
}

func (s *S) TestSortedOrder(c *check.C) {
	l := New(compareInt, noConflicts)
	const n = 500
	values := make([]int, n)
	for i := range values {
		values[i] = rand.Intn(n * 4)
		l.Add(&values[i])
	}
	var got []int
	l.All(func(v *int) bool { got = append(got, *v); return true })
	for i := 1; i < len(got); i++ {
		c.Check(got[i-1] <= got[i], check.Equals, true)
	}

	var backward []int
	l.Backward(func(v *int) bool { backward = append(backward, *v); return true })
	c.Assert(len(backward), check.Equals, len(got))
	for i := range got {
		c.Check(backward[len(backward)-1-i], check.Equals, got[i])
	}
}

func (s *S) TestAtIndexOfRoundTrip(c *check.C) {
	l := New(compareInt, rejectEqual)
	ptrs := make([]*int, 0, 200)
	for i := 0; i < 200; i++ {
		v := i * 2
		p := &v
		if l.Add(p) {
			ptrs = append(ptrs, p)
		}
	}
	for i := 0; i < l.Len(); i++ {
		v := l.At(i)
		c.Assert(l.IndexOf(v), check.Equals, i)
	}
	for _, p := range ptrs {
		idx := l.IndexOf(p)
		c.Assert(idx >= 0, check.Equals, true)
		c.Check(l.At(idx), check.Equals, p)
	}
}

func (s *S) TestFindFirstLast(c *check.C) {
	l := New(compareInt, noConflicts)
	for _, v := range []int{10, 20, 20, 20, 30, 40} {
		vv := v
		l.Add(&vv)
	}
	target := 20
	first := l.FindFirst(func(item *int) bool { return *item < target })
	last := l.FindLast(func(item *int) bool { return *item > target })
	c.Check(first, check.Equals, 1)
	c.Check(last, check.Equals, 4)
	for i := first; i < last; i++ {
		c.Check(*l.At(i), check.Equals, target)
	}
}

func (s *S) TestRandomRemoval(c *check.C) {
	l := New(compareInt, rejectEqual)
	const n = 1000
	ptrs := make([]*int, 0, n)
	for i := 0; i < n; i++ {
		v := i
		if l.Add(&v) {
			ptrs = append(ptrs, &v)
		}
	}
	rand.Shuffle(len(ptrs), func(i, j int) { ptrs[i], ptrs[j] = ptrs[j], ptrs[i] })
	for i, p := range ptrs {
		ok := l.Remove(p)
		c.Assert(ok, check.Equals, true)
		c.Assert(l.Len(), check.Equals, len(ptrs)-i-1)
		c.Assert(isBST(l.root, l.compare, (*int)(nil), (*int)(nil)), check.Equals, true)
		c.Assert(isSizeConsistent(l.root), check.Equals, true)
		c.Assert(isBalanced(l.root), check.Equals, true)
	}
	c.Check(l.root, check.IsNil)
	c.Check(l.Remove(ptrs[0]), check.Equals, false)
}

func (s *S) TestClear(c *check.C) {
	l := New(compareInt, noConflicts)
	for i := 0; i < 10; i++ {
		v := i
		l.Add(&v)
	}
	l.Clear()
	c.Check(l.Len(), check.Equals, 0)
	c.Check(l.root, check.IsNil)
}

func (s *S) TestRangeBounds(c *check.C) {
	l := New(compareInt, noConflicts)
	for i := 0; i < 10; i++ {
		v := i
		l.Add(&v)
	}
	var got []int
	l.Range(3, 7, func(v *int) bool { got = append(got, *v); return true })
	c.Check(got, check.DeepEquals, []int{3, 4, 5, 6})

	got = nil
	l.RangeBackward(3, 7, func(v *int) bool { got = append(got, *v); return true })
	c.Check(got, check.DeepEquals, []int{6, 5, 4, 3})
}
