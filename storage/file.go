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

package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
)

// File is an open file on the card.
type File struct {
	f    fs.File
	name string
	size int64
}

// Open the file for reading.
func (c *Card) Open(p string) (*File, error) {
	if !c.mounted {
		return nil, ErrNotMounted
	}

	abs := c.abs(p)
	fsys, inner, err := c.resolve(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}

	f, err := fsys.Open(inner)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", notExist(err))
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("storage: open: %s: %w", p, ErrIsDirectory)
	}

	return &File{
		f:    f,
		name: path.Base(abs),
		size: fi.Size(),
	}, nil
}

// Name returns the base name of the file.
func (f *File) Name() string {
	return f.name
}

// Size returns the length of the file in bytes.
func (f *File) Size() int64 {
	return f.size
}

// ReadBlock reads len(p) bytes into p. Fewer bytes are read only if the end
// of the file is reached. Reaching the end of the file is not an error; once
// the end of the file has been reached ReadBlock returns zero and a nil
// error.
func (f *File) ReadBlock(p []byte) (int, error) {
	n, err := io.ReadFull(f.f, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	if err != nil {
		return n, fmt.Errorf("storage: read: %w", err)
	}
	return n, nil
}

// Close the file.
func (f *File) Close() error {
	return f.f.Close()
}
