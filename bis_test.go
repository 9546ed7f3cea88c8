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

func TestBISSortedIsIntervalCompareOrder(t *testing.T) {
	a, b, c, d := lclFixture()
	bis := NewBIS(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), false)

	assert.Equal(t, 4, bis.Count())
	assert.Equal(t, []Interval[Int]{a, b, d, c}, collectPtrs(bis.Sorted()))
	assert.Equal(t, Constant, bis.IndexingSpeed())
	assert.Equal(t, &a, bis.At(0))
	assert.Equal(t, 0, bis.IndexOf(&a))
	assert.Equal(t, 2, bis.IndexOf(&d))
	assert.Equal(t, -1, bis.IndexOf(&Interval[Int]{}))
}

func TestBISSpan(t *testing.T) {
	a, b, c, d := lclFixture()
	bis := NewBIS(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), false)

	span, err := bis.Span()
	require.NoError(t, err)
	assert.Equal(t, a, span)
}

// FindOverlapsInterval picks whichever of the two endpoint-sorted
// arrays yields the smaller candidate window, so the emission order
// differs by query: a query favouring the high-sorted scan returns in
// High order, not Low order.
func TestBISFindOverlapsIntervalPicksSmallerWindow(t *testing.T) {
	a, b, c, d := lclFixture()
	bis := NewBIS(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), false)

	// lowWindow (3) < highWindow (4): scans lowSorted, Low order.
	got := collectPtrs(bis.FindOverlapsInterval(Point(Int(5))))
	assert.Equal(t, []Interval[Int]{a, b, d}, got)
	assert.Equal(t, 3, bis.CountOverlapsInterval(Point(Int(5))))

	// highWindow (2) < lowWindow (4): scans highSorted, High order.
	got = collectPtrs(bis.FindOverlapsInterval(Point(Int(15))))
	assert.Equal(t, []Interval[Int]{c, a}, got)
	assert.Equal(t, 2, bis.CountOverlapsInterval(Point(Int(15))))
}

func TestBISFindOverlapPoint(t *testing.T) {
	a, b, c, d := lclFixture()
	bis := NewBIS(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), false)

	iv, ok := bis.FindOverlapPoint(Int(5))
	assert.True(t, ok)
	assert.Equal(t, a, *iv)

	_, ok = bis.FindOverlapPoint(Int(100))
	assert.False(t, ok)
}

func TestBISFindEquals(t *testing.T) {
	a, b, c, d := lclFixture()
	bis := NewBIS(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), false)

	assert.Equal(t, []Interval[Int]{b}, collectPtrs(bis.FindEquals(b)))
	assert.Empty(t, collectPtrs(bis.FindEquals(New(Int(50), Int(60), true, true))))
}

func bisDisjointFixture() (e, f, g Interval[Int]) {
	e = New(Int(0), Int(5), true, false)
	f = New(Int(8), Int(12), true, false)
	g = New(Int(15), Int(20), true, true)
	return
}

func TestBISGapsOverDisjointIntervals(t *testing.T) {
	e, f, g := bisDisjointFixture()
	bis := NewBIS(ptrSeqOf([]*Interval[Int]{&e, &f, &g}), false)

	want := []Interval[Int]{
		New(Int(5), Int(8), true, false),
		New(Int(12), Int(15), true, false),
	}
	assert.Equal(t, want, collectIntervals(bis.Gaps()))

	query := New(Int(0), Int(20), true, true)
	wantFind := []Interval[Int]{
		New(Int(5), Int(8), true, false),
		New(Int(12), Int(15), true, false),
	}
	assert.Equal(t, wantFind, collectIntervals(bis.FindGaps(query)))
}

func TestBISIsReadOnly(t *testing.T) {
	a, b, c, d := lclFixture()
	bis := NewBIS(ptrSeqOf([]*Interval[Int]{&a, &b, &c, &d}), false)

	assert.True(t, bis.IsReadOnly())
	_, err := bis.Add(&a)
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = bis.AddAll(ptrSeqOf([]*Interval[Int]{}))
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = bis.Remove(&a)
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, bis.Clear(), ErrReadOnly)
}

func TestBISReferenceDuplicates(t *testing.T) {
	v1 := New(Int(0), Int(5), true, false)
	v2 := New(Int(0), Int(5), true, false)

	deduped := NewBIS(ptrSeqOf([]*Interval[Int]{&v1, &v2}), false)
	assert.Equal(t, 1, deduped.Count())

	kept := NewBIS(ptrSeqOf([]*Interval[Int]{&v1, &v2}), true)
	assert.Equal(t, 2, kept.Count())
}

func TestBISEmpty(t *testing.T) {
	bis := NewBIS[Int](ptrSeqOf([]*Interval[Int]{}), false)
	assert.True(t, bis.IsEmpty())
	_, err := bis.Choose()
	assert.ErrorIs(t, err, ErrNoSuchItem)
	_, err = bis.Span()
	assert.ErrorIs(t, err, ErrNoSuchItem)
}

func TestBISInterfaceAssertions(t *testing.T) {
	var _ IntervalCollection[Int] = (*BIS[Int])(nil)
	var _ SortedIntervalCollection[Int] = (*BIS[Int])(nil)
}
