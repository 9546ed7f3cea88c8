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

import "github.com/pkg/errors"

// ErrNoSuchItem is returned by Choose and Span when the collection is
// empty.
var ErrNoSuchItem = errors.New("ivcol: no such item")

// ErrReadOnly is returned by Add, AddAll, Remove, and Clear on a
// collection that does not support mutation.
var ErrReadOnly = errors.New("ivcol: collection is read-only")

// ErrRejected names a conflict with a collection's admission rule
// (overlap-free or containment-free). No collection returns it: Add
// reports a rejected interval as false with a nil error, and AddAll
// leaves it out of the admitted count.
var ErrRejected = errors.New("ivcol: interval rejected by admission rule")

// PreconditionError reports a violated precondition of method Method,
// naming the offending argument.
type PreconditionError struct {
	Method string
	Reason string
}

func (e *PreconditionError) Error() string {
	return "ivcol: " + e.Method + ": " + e.Reason
}

func precondition(method, reason string) error {
	return errors.WithStack(&PreconditionError{Method: method, Reason: reason})
}
