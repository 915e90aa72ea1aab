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

package multicore

import "sync/atomic"

// Interrupts is a host model of the interrupt mask of the control core. On
// the board the mask stops interrupt handlers running from flash during a
// flash mutation. On the host nothing is masked; the state only records that
// the loader's critical section is in force, and is checked by tests of the
// loader.
type Interrupts struct {
	// a non-zero value means interrupts are disabled
	disabled atomic.Uint32
}

// SaveAndDisable disables interrupts and returns the previous state, to be
// passed to Restore().
func (i *Interrupts) SaveAndDisable() uint32 {
	return i.disabled.Swap(1)
}

// Restore the interrupt state returned by SaveAndDisable().
func (i *Interrupts) Restore(saved uint32) {
	i.disabled.Store(saved)
}

// Enabled returns true if interrupts are enabled.
func (i *Interrupts) Enabled() bool {
	return i.disabled.Load() == 0
}
