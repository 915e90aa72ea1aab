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

// Package video is the text and graphics compositor. It owns the frame
// buffer and fills scanlines from it on request.
//
// The frame buffer has two planes. The character plane is a grid of glyph
// codes and colour bytes and is used in Text mode. The pixel plane is a
// linear array of palette indices and is used in Native mode. Only one plane
// is shown at a time, according to the Mode passed to FillLine().
//
// The control core draws into a back buffer. Publish() makes the back buffer
// visible by storing a copy of it as the front snapshot. The scan-out core
// loads the front snapshot once per frame and never sees a partially drawn
// frame.
package video
