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
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Entry is a single item in a directory.
type Entry struct {
	Name string

	// an archive is also considered to be a directory
	IsDir     bool
	IsArchive bool

	Size int64
}

func (e Entry) String() string {
	return e.Name
}

// Dir is an open directory for enumeration with Next().
type Dir struct {
	entries []Entry
	pattern string
	idx     int
}

// sort entries with directories first and then case insensitive by name
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i int, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// OpenDir opens the directory for enumeration. The order of enumeration is
// directories first and then by name, without regard to case.
func (c *Card) OpenDir(p string) (*Dir, error) {
	if !c.mounted {
		return nil, ErrNotMounted
	}

	fsys, inner, err := c.resolve(c.abs(p))
	if err != nil {
		return nil, fmt.Errorf("storage: opendir: %w", err)
	}

	des, err := fs.ReadDir(fsys, inner)
	if err != nil {
		return nil, fmt.Errorf("storage: opendir: %w", notExist(err))
	}

	d := &Dir{
		entries: make([]Entry, 0, len(des)),
		pattern: "*",
	}
	for _, de := range des {
		e := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if !e.IsDir {
			if fi, err := de.Info(); err == nil {
				e.Size = fi.Size()
			}
			if IsArchive(e.Name) {
				e.IsDir = true
				e.IsArchive = true
			}
		}
		d.entries = append(d.entries, e)
	}
	sortEntries(d.entries)

	return d, nil
}

// FindFirst opens the directory and returns the first entry that matches the
// pattern. The pattern syntax is that of path.Match(). Subsequent entries
// that match the pattern are returned by Next().
//
// Returns io.EOF if there are no matching entries. The Dir is still valid in
// that case.
func (c *Card) FindFirst(p string, pattern string) (*Dir, Entry, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, Entry{}, fmt.Errorf("storage: findfirst: %w", err)
	}

	d, err := c.OpenDir(p)
	if err != nil {
		return nil, Entry{}, err
	}
	d.pattern = pattern

	e, err := d.Next()
	return d, e, err
}

// Next returns the next entry in the directory. Returns io.EOF once all
// entries have been returned.
func (d *Dir) Next() (Entry, error) {
	for d.idx < len(d.entries) {
		e := d.entries[d.idx]
		d.idx++
		if ok, _ := path.Match(d.pattern, e.Name); ok {
			return e, nil
		}
	}
	return Entry{}, io.EOF
}

// Close the directory.
func (d *Dir) Close() error {
	d.entries = nil
	return nil
}
