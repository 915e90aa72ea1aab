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
	"bytes"
	"fmt"

	"github.com/jetsetilly/murmulator/hardware/video"
)

// Layout of the cartridge region.
const (
	TargetOffset  = 1024 * 1024
	HeaderSize    = 4096
	HeaderPathLen = 256
	PayloadOffset = TargetOffset + HeaderSize

	// payload blocks are the size of the read buffer, which is the pixel
	// plane of the frame buffer
	BlockSize = video.NativeSize
)

// MaxPayload is the largest cartridge that fits in the region.
const MaxPayload = Size - PayloadOffset

// Header returns the content of the header block for the path. Paths longer
// than HeaderPathLen are truncated.
func Header(path string) []uint8 {
	h := make([]uint8, HeaderPathLen)
	copy(h, path)
	return h
}

// Resident returns the path recorded in the header block. An erased header
// returns the empty string.
func Resident(dev Device) (string, error) {
	h, err := dev.ReadRange(TargetOffset, HeaderPathLen)
	if err != nil {
		return "", fmt.Errorf("flash: reading header: %w", err)
	}
	if h[0] == ErasedValue {
		return "", nil
	}
	if i := bytes.IndexByte(h, 0); i >= 0 {
		h = h[:i]
	}
	return string(h), nil
}

// BlockOffset returns the flash offset of the payload block.
func BlockOffset(block int) int {
	return PayloadOffset + block*BlockSize
}

// Info describes the content of the cartridge region.
type Info struct {
	Path string

	// the payload length is not recorded in the header. Used is the offset
	// of the last byte in the payload that is not in the erased state, plus
	// one. trailing 0xff bytes of a cartridge are not counted
	Used   int
	Blocks int
}

func (inf Info) String() string {
	if inf.Path == "" {
		return "no cartridge"
	}
	return fmt.Sprintf("%s (%d bytes in %d blocks)", inf.Path, inf.Used, inf.Blocks)
}

// Inspect the cartridge region of the device.
func Inspect(dev Device) (Info, error) {
	var inf Info

	p, err := Resident(dev)
	if err != nil {
		return inf, err
	}
	inf.Path = p

	d, err := dev.ReadRange(PayloadOffset, MaxPayload)
	if err != nil {
		return inf, fmt.Errorf("flash: reading payload: %w", err)
	}
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] != ErasedValue {
			inf.Used = i + 1
			break
		}
	}
	inf.Blocks = (inf.Used + BlockSize - 1) / BlockSize

	return inf, nil
}
