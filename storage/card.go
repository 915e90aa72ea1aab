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
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/logger"
)

// Sentinel errors. Errors returned by the package wrap one of these or an
// error from the io/fs package.
var (
	ErrNotMounted   = errors.New("storage: card not mounted")
	ErrNoSuchEntry  = errors.New("storage: no such file or directory")
	ErrNotDirectory = errors.New("storage: not a directory")
	ErrIsDirectory  = errors.New("storage: is a directory")
)

// ArchiveExtension is the file extension of files treated as directories.
const ArchiveExtension = ".zip"

// IsArchive returns true if the name has the archive extension.
func IsArchive(name string) bool {
	return strings.EqualFold(path.Ext(name), ArchiveExtension)
}

// Card is the storage device.
type Card struct {
	env  *environment.Environment
	root fs.FS

	mounted bool

	// current directory as a clean slash separated path from the root. the
	// root is "."
	cwd string
}

// NewCard is the preferred method of initialisation for the Card type. On the
// host the root will usually be os.DirFS().
func NewCard(env *environment.Environment, root fs.FS) *Card {
	return &Card{
		env:  env,
		root: root,
		cwd:  ".",
	}
}

// Mount the card. Mounting an already mounted card has no effect.
func (c *Card) Mount() error {
	if c.mounted {
		return nil
	}
	fi, err := fs.Stat(c.root, ".")
	if err != nil {
		return fmt.Errorf("storage: mount: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("storage: mount: %w", ErrNotDirectory)
	}
	c.mounted = true
	c.cwd = "."
	logger.Log(c.env, "storage", "card mounted")
	return nil
}

// Mounted returns true if the card is mounted.
func (c *Card) Mounted() bool {
	return c.mounted
}

// Unmount the card. The current directory returns to the root.
func (c *Card) Unmount() {
	c.mounted = false
	c.cwd = "."
}

// Cwd returns the current directory. The root is returned as "/".
func (c *Card) Cwd() string {
	if c.cwd == "." {
		return "/"
	}
	return "/" + c.cwd
}

// ChDir changes the current directory.
func (c *Card) ChDir(p string) error {
	if !c.mounted {
		return ErrNotMounted
	}
	abs := c.abs(p)
	fsys, inner, err := c.resolve(abs)
	if err != nil {
		return fmt.Errorf("storage: chdir: %w", err)
	}
	fi, err := fs.Stat(fsys, inner)
	if err != nil {
		return fmt.Errorf("storage: chdir: %w", notExist(err))
	}
	if !fi.IsDir() {
		return fmt.Errorf("storage: chdir: %s: %w", p, ErrNotDirectory)
	}
	c.cwd = abs
	return nil
}

// abs converts the path to a clean slash separated path from the root.
// paths that reach above the root stop at the root.
func (c *Card) abs(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if strings.HasPrefix(p, "/") {
		p = path.Clean(strings.TrimLeft(p, "/"))
	} else {
		p = path.Join(c.cwd, p)
	}
	for strings.HasPrefix(p, "../") {
		p = p[3:]
	}
	if p == ".." {
		p = "."
	}
	return p
}

// resolve an absolute path to the file system that contains it and the path
// inside that file system. archives along the way are opened and their
// contents become the file system for the rest of the path.
func (c *Card) resolve(abs string) (fs.FS, string, error) {
	fsys := c.root
	if abs == "." {
		return fsys, ".", nil
	}

	parts := strings.Split(abs, "/")
	inner := "."

	for i, part := range parts {
		inner = path.Join(inner, part)
		if !IsArchive(part) {
			continue
		}

		fi, err := fs.Stat(fsys, inner)
		if err != nil {
			return nil, "", notExist(err)
		}
		if fi.IsDir() {
			continue
		}

		data, err := fs.ReadFile(fsys, inner)
		if err != nil {
			return nil, "", err
		}
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			// not a valid archive. it's only a problem if the path continues
			// beyond it
			if i < len(parts)-1 {
				return nil, "", fmt.Errorf("%s: %w", inner, ErrNotDirectory)
			}
			continue
		}

		fsys = zr
		inner = "."
	}

	return fsys, inner, nil
}

func notExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrNoSuchEntry, err)
	}
	return err
}
