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

// Package cartridgeloader copies a cartridge file from the storage card into
// the cartridge region of flash.
//
// Flash cannot be read for code while it is being erased or programmed, so
// the copy happens in a critical section: interrupts on the control core are
// disabled and the scan-out core is locked out. The critical section cannot
// be cancelled.
//
// If the path of the requested cartridge is already recorded in the flash
// header the load is skipped. A change to the content of a file that keeps
// its name is therefore not detected.
package cartridgeloader
