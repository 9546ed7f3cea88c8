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

func TestIndexingSpeedString(t *testing.T) {
	assert.Equal(t, "constant", Constant.String())
	assert.Equal(t, "logarithmic", Logarithmic.String())
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "unknown", IndexingSpeed(99).String())
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindSorted: "sorted",
		KindLCL:    "lcl",
		KindNCL:    "ncl",
		KindBIS:    "bis",
		KindTree:   "tree",
		KindDCL:    "dcl",
		Kind(99):   "unknown",
	}
	for k, want := range tests {
		assert.Equal(t, want, k.String())
	}
}
