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

package test

import "fmt"

// RingWriter is an io.Writer that keeps only the most recent bytes written to
// it. Useful for capturing the end of output that may be arbitrarily long.
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size is the number of bytes kept.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, 0, size),
		size:   size,
	}, nil
}

func (r *RingWriter) String() string {
	return string(r.buffer)
}

// Reset forgets everything written so far.
func (r *RingWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n >= r.size {
		r.buffer = append(r.buffer[:0], p[n-r.size:]...)
		return n, nil
	}

	if over := len(r.buffer) + n - r.size; over > 0 {
		r.buffer = append(r.buffer[:0], r.buffer[over:]...)
	}
	r.buffer = append(r.buffer, p...)

	return n, nil
}
