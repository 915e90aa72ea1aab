// This file is part of Murmulator.
//
// Murmulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Murmulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Murmulator.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/murmulator/test"
)

func TestRingWriter(t *testing.T) {
	_, err := test.NewRingWriter(0)
	test.ExpectFailure(t, err)

	r, err := test.NewRingWriter(8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "")

	fmt.Fprint(r, "abc")
	fmt.Fprint(r, "def")
	test.ExpectEquality(t, r.String(), "abcdef")

	// exactly full
	fmt.Fprint(r, "gh")
	test.ExpectEquality(t, r.String(), "abcdefgh")

	// oldest bytes are dropped
	fmt.Fprint(r, "ij")
	test.ExpectEquality(t, r.String(), "cdefghij")

	// a write as long as the ring replaces everything
	fmt.Fprint(r, "12345678")
	test.ExpectEquality(t, r.String(), "12345678")

	// a write longer than the ring keeps its own end
	fmt.Fprint(r, "0123456789AB")
	test.ExpectEquality(t, r.String(), "456789AB")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
	n, err := r.Write([]byte("xyz"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, r.String(), "xyz")
}
