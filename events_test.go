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

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "item added", ItemAdded.String())
	assert.Equal(t, "item removed", ItemRemoved.String())
	assert.Equal(t, "collection cleared", CollectionCleared.String())
	assert.Equal(t, "collection changed", CollectionChanged.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}

func TestListenersAddedRaisesInOrder(t *testing.T) {
	var l listeners[Int]
	var kinds []EventKind
	l.Listen(func(e Event[Int]) { kinds = append(kinds, e.Kind) })

	iv := New(Int(0), Int(5), true, false)
	l.added(&iv)
	require.Equal(t, []EventKind{ItemAdded, CollectionChanged}, kinds)
}

func TestListenersRemovedAndCleared(t *testing.T) {
	var l listeners[Int]
	var events []Event[Int]
	l.Listen(func(e Event[Int]) { events = append(events, e) })

	iv := New(Int(0), Int(5), true, false)
	l.removed(&iv)
	l.cleared()

	require.Len(t, events, 4)
	assert.Equal(t, ItemRemoved, events[0].Kind)
	assert.Same(t, &iv, events[0].Interval)
	assert.Equal(t, CollectionChanged, events[1].Kind)
	assert.Nil(t, events[1].Interval)
	assert.Equal(t, CollectionCleared, events[2].Kind)
	assert.Equal(t, CollectionChanged, events[3].Kind)
}

func TestListenersDeregister(t *testing.T) {
	var l listeners[Int]
	calls := 0
	stop := l.Listen(func(Event[Int]) { calls++ })
	iv := New(Int(0), Int(5), true, false)
	l.added(&iv)
	stop()
	l.added(&iv)
	assert.Equal(t, 2, calls)
}
