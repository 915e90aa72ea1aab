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

import (
	"fmt"
	"os"

	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/logger"
)

// Image is a flash device held in memory and persisted to a file on the
// host.
type Image struct {
	env  *environment.Environment
	path string

	// amend Data only through EraseRange() and ProgramRange()
	Data []uint8

	// number of operations since the image was created
	Erases   int
	Programs int
}

// NewImage is the preferred method of initialisation for the Image type. The
// image starts erased and then any existing data is read from the file. An
// empty path creates an image that is never persisted.
func NewImage(env *environment.Environment, path string) *Image {
	img := &Image{
		env:  env,
		path: path,
		Data: make([]uint8, Size),
	}
	for i := range img.Data {
		img.Data[i] = ErasedValue
	}
	img.Read()
	return img
}

func (img *Image) check(offset int, length int) error {
	if offset < 0 || length < 0 || offset+length > len(img.Data) {
		return fmt.Errorf("%w: %#x + %#x", ErrOutOfRange, offset, length)
	}
	return nil
}

// EraseRange implements the Device interface.
func (img *Image) EraseRange(offset int, length int) error {
	if err := img.check(offset, length); err != nil {
		return err
	}
	for i := offset; i < offset+length; i++ {
		img.Data[i] = ErasedValue
	}
	img.Erases++
	return nil
}

// ProgramRange implements the Device interface. Programming can only clear
// bits so the new value of each byte is the AND of the old value and the
// data.
func (img *Image) ProgramRange(offset int, data []uint8) error {
	if err := img.check(offset, len(data)); err != nil {
		return err
	}
	for i, v := range data {
		img.Data[offset+i] &= v
	}
	img.Programs++
	return nil
}

// ReadRange implements the Device interface. The returned slice is a copy.
func (img *Image) ReadRange(offset int, length int) ([]uint8, error) {
	if err := img.check(offset, length); err != nil {
		return nil, err
	}
	d := make([]uint8, length)
	copy(d, img.Data[offset:])
	return d, nil
}

// Read image data from the file.
func (img *Image) Read() {
	if img.path == "" {
		return
	}

	d, err := os.ReadFile(img.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Logf(img.env, "flash", "could not load flash image: %v", err)
		}
		return
	}
	if len(d) != len(img.Data) {
		logger.Logf(img.env, "flash", "flash image is of incorrect length. %d should be %d", len(d), len(img.Data))
	}
	copy(img.Data, d)

	logger.Logf(img.env, "flash", "flash image loaded from %s", img.path)
}

// Write image data to the file.
func (img *Image) Write() error {
	if img.path == "" {
		return nil
	}
	if err := os.WriteFile(img.path, img.Data, 0o600); err != nil {
		return fmt.Errorf("flash: %w", err)
	}
	logger.Logf(img.env, "flash", "flash image saved to %s", img.path)
	return nil
}
