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

// Package browser is the file browser of the control core. It lists the
// entries of a directory on the storage card in pages of PageSize entries,
// draws the page into the character plane and moves a selection cursor in
// response to input.
//
// Directories and archives on the card can be entered. The Select button
// returns to the parent directory, but never above the directory the browser
// was created for.
package browser
