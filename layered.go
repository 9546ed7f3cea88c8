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

// layerRange is the [start, end) position of one depth tier within a
// flattened, arena-backed containment hierarchy, shared by LCL and
// NCL: both lay their nodes out depth-tier by depth-tier in one array
// and link a node to its immediate children via childStart/childEnd,
// which a caller walks recursively to reach arbitrary depth regardless
// of the flat array's physical tiering.
type layerRange struct{ start, end int }

// buildLayeredIndex flattens layerItems (each already containment- or
// depth-grouped, and listed in construction-scan order within its
// group) into one array, computing each item's immediate-children
// range in the next tier from the parallel scan-position index
// layerScan. A child's position in tier L+1 falls strictly between its
// parent's scan position and the next tier-L parent's scan position,
// since all items were emitted once, in a single construction-order
// scan.
func buildLayeredIndex[T Ordered[T]](layerItems [][]*Interval[T], layerScan [][]int) (items []*Interval[T], childStart, childEnd []int, layers []layerRange) {
	total := 0
	for _, layer := range layerItems {
		total += len(layer)
	}
	items = make([]*Interval[T], 0, total)
	childStart = make([]int, 0, total)
	childEnd = make([]int, 0, total)
	layers = make([]layerRange, len(layerItems))

	offset := 0
	for L, layer := range layerItems {
		layers[L] = layerRange{start: offset, end: offset + len(layer)}
		items = append(items, layer...)
		offset += len(layer)
	}

	for L := range layerItems {
		if L+1 >= len(layerItems) {
			for range layerItems[L] {
				childStart = append(childStart, layers[L].end)
				childEnd = append(childEnd, layers[L].end)
			}
			continue
		}
		next := layerScan[L+1]
		cursor := 0
		for p := range layerItems[L] {
			start := cursor
			if p+1 < len(layerItems[L]) {
				nextParentScan := layerScan[L][p+1]
				for cursor < len(next) && next[cursor] < nextParentScan {
					cursor++
				}
			} else {
				cursor = len(next)
			}
			childStart = append(childStart, layers[L+1].start+start)
			childEnd = append(childEnd, layers[L+1].start+cursor)
		}
	}
	return items, childStart, childEnd, layers
}

// childBoundary returns the absolute items-array index bounding the
// children, in the next tier, of position idx within tier layerIdx —
// valid both for a real item index and for idx == layers[layerIdx].end
// (one past the tier's last item).
func childBoundary(layers []layerRange, childStart []int, layerIdx, idx int) int {
	if idx < layers[layerIdx].end {
		return childStart[idx]
	}
	if layerIdx+1 < len(layers) {
		return layers[layerIdx+1].end
	}
	return idx
}

func dedupeEqual[T Ordered[T]](input []*Interval[T]) []*Interval[T] {
	out := input[:0:0]
	for _, iv := range input {
		dup := false
		for _, kept := range out {
			if kept.Equal(*iv) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, iv)
		}
	}
	return out
}
