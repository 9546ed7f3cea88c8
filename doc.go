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

// Package ivcol implements a family of interval collections: container
// data structures that store half-open or closed one-dimensional
// intervals over a totally ordered key domain and answer range,
// stabbing, containment, gap, and sorted-enumeration queries.
//
// Five concrete index families share one query contract (collection.go):
// a static Layered Containment List (lcl.go), a static Nested Containment
// List (ncl.go), a static Binary Interval Search (bis.go), a static
// median-split interval tree (tree.go), and a dynamic endpoint-sorted
// collection (sorted.go) backed by the augmented tree in
// internal/endpointlist. A composite Dynamic Containment List (dcl.go)
// stacks endpoint-sorted collections to lift the containment-free
// restriction of a single one.
//
// The package performs no IO and holds no persisted state; every query
// returns a lazy iter.Seq that the caller pulls at its own pace.
package ivcol
