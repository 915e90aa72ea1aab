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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"

	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/hardware/flash"
	"github.com/jetsetilly/murmulator/hardware/multicore"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/notifications"
	"github.com/jetsetilly/murmulator/storage"
)

// Sentinel errors returned by LoadCartridge(). The returned error wraps one
// of these and the underlying cause.
var (
	ErrOpen     = errors.New("cartridgeloader: cannot open cartridge")
	ErrTooLarge = errors.New("cartridgeloader: cartridge too large for flash")
	ErrRead     = errors.New("cartridgeloader: read failed")
	ErrFlash    = errors.New("cartridgeloader: flash operation failed")
	ErrBuffer   = errors.New("cartridgeloader: read buffer is the wrong size")
)

// Report describes the outcome of a LoadCartridge() call.
type Report struct {
	Path string

	// the cartridge was already resident and flash was not touched
	Skipped bool

	// the critical section ran and flash was changed. a failed load can
	// still have changed flash
	Flashed bool

	// number of payload blocks written and the number of bytes in them
	Blocks int
	Bytes  int

	// sha1 of the payload
	Hash string
}

func (r Report) String() string {
	if r.Skipped {
		return fmt.Sprintf("%s already resident", r.Path)
	}
	return fmt.Sprintf("%s loaded (%d bytes in %d blocks)", r.Path, r.Bytes, r.Blocks)
}

// Loader copies cartridges from the card to flash.
type Loader struct {
	env     *environment.Environment
	card    *storage.Card
	dev     flash.Device
	lockout *multicore.Lockout
	irq     *multicore.Interrupts

	// the read buffer is lent to the loader and must be flash.BlockSize
	// bytes long
	buffer []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(env *environment.Environment, card *storage.Card, dev flash.Device,
	lockout *multicore.Lockout, irq *multicore.Interrupts, buffer []uint8) *Loader {
	return &Loader{
		env:     env,
		card:    card,
		dev:     dev,
		lockout: lockout,
		irq:     irq,
		buffer:  buffer,
	}
}

// LoadCartridge copies the file at path on the card into flash.
//
// The path is recorded in the flash header and must be no longer than
// flash.HeaderPathLen. An empty path, a path that is too long, a file that
// cannot be opened or a file that is too large leave flash untouched. If reading the file fails part way through, the header block is
// erased so that the partially written cartridge is not reported as
// resident by a later call.
func (ld *Loader) LoadCartridge(path string) (Report, error) {
	rep := Report{Path: path}

	if len(ld.buffer) != flash.BlockSize {
		return rep, fmt.Errorf("%w: %d bytes", ErrBuffer, len(ld.buffer))
	}

	if path == "" {
		return rep, fmt.Errorf("%w: no path", ErrOpen)
	}
	if len(path) > flash.HeaderPathLen {
		return rep, fmt.Errorf("%w: path longer than %d bytes", ErrOpen, flash.HeaderPathLen)
	}

	resident, err := flash.Resident(ld.dev)
	if err != nil {
		return rep, fmt.Errorf("%w: %w", ErrFlash, err)
	}
	if resident == path {
		rep.Skipped = true
		logger.Logf(ld.env, "cartridgeloader", "%s is already resident", path)
		if err := ld.env.Notice(notifications.NotifyLoadSkipped); err != nil {
			logger.Log(ld.env, "cartridgeloader", err)
		}
		return rep, nil
	}

	if !ld.card.Mounted() {
		if err := ld.card.Mount(); err != nil {
			return rep, fmt.Errorf("%w: %w", ErrOpen, err)
		}
	}

	f, err := ld.card.Open(path)
	if err != nil {
		return rep, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if f.Size() > flash.MaxPayload {
		f.Close()
		return rep, fmt.Errorf("%w: %d bytes", ErrTooLarge, f.Size())
	}

	if err := ld.env.Notice(notifications.NotifyLoadStarted); err != nil {
		logger.Log(ld.env, "cartridgeloader", err)
	}

	saved := ld.irq.SaveAndDisable()
	ld.lockout.StartBlocking()
	rep.Flashed = true

	err = ld.mutate(f, &rep)

	f.Close()
	ld.irq.Restore(saved)
	ld.lockout.EndBlocking()

	if err := ld.env.Notice(notifications.NotifyLoadEnded); err != nil {
		logger.Log(ld.env, "cartridgeloader", err)
	}

	if err != nil {
		return rep, err
	}

	logger.Log(ld.env, "cartridgeloader", rep)

	return rep, nil
}

// mutate is the body of the critical section
func (ld *Loader) mutate(f *storage.File, rep *Report) error {
	if err := ld.dev.EraseRange(flash.TargetOffset, flash.HeaderSize); err != nil {
		return fmt.Errorf("%w: %w", ErrFlash, err)
	}
	if err := ld.dev.ProgramRange(flash.TargetOffset, flash.Header(rep.Path)); err != nil {
		return fmt.Errorf("%w: %w", ErrFlash, err)
	}

	hash := sha1.New()

	for {
		n, err := f.ReadBlock(ld.buffer)
		if err != nil {
			ld.rollback()
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		if n == 0 {
			break
		}

		offset := flash.BlockOffset(rep.Blocks)

		// the final block of a maximum sized cartridge is shorter than the
		// block size
		erase := min(flash.BlockSize, flash.Size-offset)
		if n > erase {
			ld.rollback()
			return fmt.Errorf("%w: at offset %#x", ErrTooLarge, offset)
		}

		if err := ld.dev.EraseRange(offset, erase); err != nil {
			ld.rollback()
			return fmt.Errorf("%w: %w", ErrFlash, err)
		}
		if err := ld.dev.ProgramRange(offset, ld.buffer[:n]); err != nil {
			ld.rollback()
			return fmt.Errorf("%w: %w", ErrFlash, err)
		}

		hash.Write(ld.buffer[:n])
		rep.Blocks++
		rep.Bytes += n
	}

	rep.Hash = fmt.Sprintf("%x", hash.Sum(nil))

	return nil
}

// rollback erases the header block. errors are logged because the original
// error is more important
func (ld *Loader) rollback() {
	if err := ld.dev.EraseRange(flash.TargetOffset, flash.HeaderSize); err != nil {
		logger.Logf(ld.env, "cartridgeloader", "rollback: %v", err)
	}
}
