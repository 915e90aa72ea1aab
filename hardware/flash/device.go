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

package flash

import "errors"

// Device is the interface to the flash chip. Both EraseRange() and
// ProgramRange() are synchronous.
type Device interface {
	EraseRange(offset int, length int) error
	ProgramRange(offset int, data []uint8) error
	ReadRange(offset int, length int) ([]uint8, error)
}

// Size of the flash chip.
const Size = 2 * 1024 * 1024

// ErasedValue is the value of every byte in an erased range.
const ErasedValue = 0xff

// ErrOutOfRange is returned when an operation reaches beyond the end of the
// device.
var ErrOutOfRange = errors.New("flash: range out of bounds")
