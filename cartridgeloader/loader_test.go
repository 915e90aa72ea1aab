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

package cartridgeloader_test

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jetsetilly/murmulator/cartridgeloader"
	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/hardware/flash"
	"github.com/jetsetilly/murmulator/hardware/multicore"
	"github.com/jetsetilly/murmulator/notifications"
	"github.com/jetsetilly/murmulator/storage"
	"github.com/jetsetilly/murmulator/test"
)

type op struct {
	erase  bool
	offset int
	length int
}

// countingDevice records every erase and program operation and whether it
// happened inside the critical section
type countingDevice struct {
	*flash.Image
	irq     *multicore.Interrupts
	lockout *multicore.Lockout

	ops       []op
	unguarded int
}

func (dev *countingDevice) guard() {
	if dev.irq.Enabled() || !dev.lockout.Locked() {
		dev.unguarded++
	}
}

func (dev *countingDevice) EraseRange(offset int, length int) error {
	dev.guard()
	dev.ops = append(dev.ops, op{erase: true, offset: offset, length: length})
	return dev.Image.EraseRange(offset, length)
}

func (dev *countingDevice) ProgramRange(offset int, data []uint8) error {
	dev.guard()
	dev.ops = append(dev.ops, op{offset: offset, length: len(data)})
	return dev.Image.ProgramRange(offset, data)
}

// payload returns the operations on the payload blocks
func (dev *countingDevice) payload() []op {
	var p []op
	for _, o := range dev.ops {
		if o.offset >= flash.PayloadOffset {
			p = append(p, o)
		}
	}
	return p
}

type notices []notifications.Notice

func (n *notices) Notify(notice notifications.Notice) error {
	*n = append(*n, notice)
	return nil
}

// failingFS wraps a MapFS so that reading the named file fails after a
// number of bytes
type failingFS struct {
	fstest.MapFS
	name  string
	after int
}

var errBroken = errors.New("broken card")

func (f failingFS) Open(name string) (fs.File, error) {
	file, err := f.MapFS.Open(name)
	if err != nil || name != f.name {
		return file, err
	}
	return &failingFile{File: file, remain: f.after}, nil
}

type failingFile struct {
	fs.File
	remain int
}

func (f *failingFile) Read(p []byte) (int, error) {
	if f.remain <= 0 {
		return 0, errBroken
	}
	if len(p) > f.remain {
		p = p[:f.remain]
	}
	n, err := f.File.Read(p)
	f.remain -= n
	return n, err
}

type fixture struct {
	dev     *countingDevice
	irq     *multicore.Interrupts
	lockout *multicore.Lockout
	notices *notices
	buffer  []uint8
	ld      *cartridgeloader.Loader
}

func newFixture(root fs.FS) *fixture {
	fx := &fixture{
		irq:     &multicore.Interrupts{},
		lockout: multicore.NewLockout(),
		notices: &notices{},
		buffer:  make([]uint8, flash.BlockSize),
	}
	fx.dev = &countingDevice{
		Image:   flash.NewImage(nil, ""),
		irq:     fx.irq,
		lockout: fx.lockout,
	}

	env := environment.NewEnvironment("test", fx.notices)
	env.Quiet = true

	card := storage.NewCard(env, root)
	fx.ld = cartridgeloader.NewLoader(env, card, fx.dev, fx.lockout, fx.irq, fx.buffer)
	return fx
}

// cartridge data where each block starts with its block number
func cartridge(size int) []byte {
	d := bytes.Repeat([]byte{0x5a}, size)
	for i := 0; i < size; i += flash.BlockSize {
		d[i] = byte(i / flash.BlockSize)
	}
	return d
}

func TestChunking(t *testing.T) {
	for _, k := range []int{0, 1, 3} {
		for _, r := range []int{0, 1, 1000} {
			if k == 0 && r == 0 {
				continue
			}
			t.Run(fmt.Sprintf("k=%d r=%d", k, r), func(t *testing.T) {
				size := k*flash.BlockSize + r
				data := cartridge(size)
				fx := newFixture(fstest.MapFS{
					"SEGA/game.bin": {Data: data},
				})

				rep, err := fx.ld.LoadCartridge("SEGA\\game.bin")
				test.DemandSuccess(t, err)
				test.ExpectEquality(t, rep.Skipped, false)
				test.ExpectEquality(t, rep.Flashed, true)
				test.ExpectEquality(t, rep.Bytes, size)

				pairs := k
				if r > 0 {
					pairs++
				}
				test.ExpectEquality(t, rep.Blocks, pairs)

				p := fx.dev.payload()
				test.DemandEquality(t, len(p), pairs*2)
				for i := range pairs {
					erase := p[i*2]
					program := p[i*2+1]
					test.ExpectEquality(t, erase.erase, true)
					test.ExpectEquality(t, erase.offset, flash.BlockOffset(i))
					test.ExpectEquality(t, erase.length, flash.BlockSize)
					test.ExpectEquality(t, program.erase, false)
					test.ExpectEquality(t, program.offset, flash.BlockOffset(i))

					n := flash.BlockSize
					if i == pairs-1 && r > 0 {
						n = r
					}
					test.ExpectEquality(t, program.length, n)
				}

				// header erased then programmed before any payload operation
				test.ExpectEquality(t, fx.dev.ops[0], op{erase: true, offset: flash.TargetOffset, length: flash.HeaderSize})
				test.ExpectEquality(t, fx.dev.ops[1], op{offset: flash.TargetOffset, length: flash.HeaderPathLen})
				test.ExpectEquality(t, fx.dev.unguarded, 0)

				stored, err := fx.dev.ReadRange(flash.PayloadOffset, size)
				test.DemandSuccess(t, err)
				test.ExpectSuccess(t, bytes.Equal(stored, data))
				test.ExpectEquality(t, rep.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
			})
		}
	}
}

func TestIdempotence(t *testing.T) {
	fx := newFixture(fstest.MapFS{
		"SEGA/game.bin": {Data: cartridge(flash.BlockSize + 10)},
	})

	_, err := fx.ld.LoadCartridge("SEGA\\game.bin")
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, len(fx.dev.ops), 0)

	fx.dev.ops = nil
	rep, err := fx.ld.LoadCartridge("SEGA\\game.bin")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Skipped, true)
	test.ExpectEquality(t, rep.Flashed, false)
	test.ExpectEquality(t, len(fx.dev.ops), 0)
	test.ExpectEquality(t, fx.lockout.Count(), 1)

	test.ExpectEquality(t, len(*fx.notices), 3)
	test.ExpectEquality(t, (*fx.notices)[0], notifications.NotifyLoadStarted)
	test.ExpectEquality(t, (*fx.notices)[1], notifications.NotifyLoadEnded)
	test.ExpectEquality(t, (*fx.notices)[2], notifications.NotifyLoadSkipped)

	// a different path is loaded even though the content is the same
	_, err = fx.ld.LoadCartridge("SEGA\\copy.bin")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrOpen))
}

func TestOpenFailure(t *testing.T) {
	fx := newFixture(fstest.MapFS{
		"SEGA/game.bin": {Data: cartridge(10)},
	})

	_, err := fx.ld.LoadCartridge("SEGA\\missing.bin")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrOpen))
	test.ExpectSuccess(t, errors.Is(err, storage.ErrNoSuchEntry))

	// directories cannot be loaded
	_, err = fx.ld.LoadCartridge("SEGA")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrOpen))

	test.ExpectEquality(t, len(fx.dev.ops), 0)
	test.ExpectEquality(t, fx.lockout.Count(), 0)
	test.ExpectEquality(t, fx.irq.Enabled(), true)
	test.ExpectEquality(t, len(*fx.notices), 0)
}

func TestTooLarge(t *testing.T) {
	fx := newFixture(fstest.MapFS{
		"SEGA/huge.bin": {Data: make([]byte, flash.MaxPayload+1)},
	})

	rep, err := fx.ld.LoadCartridge("SEGA\\huge.bin")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrTooLarge))
	test.ExpectEquality(t, rep.Flashed, false)
	test.ExpectEquality(t, len(fx.dev.ops), 0)
	test.ExpectEquality(t, fx.lockout.Count(), 0)
}

func TestMaximumSize(t *testing.T) {
	data := cartridge(flash.MaxPayload)
	fx := newFixture(fstest.MapFS{
		"SEGA/big.bin": {Data: data},
	})

	rep, err := fx.ld.LoadCartridge("SEGA\\big.bin")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Bytes, flash.MaxPayload)

	// the last erase stops at the end of the device
	p := fx.dev.payload()
	last := p[len(p)-2]
	test.ExpectEquality(t, last.erase, true)
	test.ExpectEquality(t, last.offset+last.length, flash.Size)

	stored, err := fx.dev.ReadRange(flash.PayloadOffset, flash.MaxPayload)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(stored, data))
}

func TestReadFailure(t *testing.T) {
	fx := newFixture(failingFS{
		MapFS: fstest.MapFS{
			"SEGA/game.bin": {Data: cartridge(flash.BlockSize * 3)},
		},
		name:  "SEGA/game.bin",
		after: flash.BlockSize + 10,
	})

	rep, err := fx.ld.LoadCartridge("SEGA\\game.bin")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrRead))
	test.ExpectEquality(t, rep.Flashed, true)
	test.ExpectSuccess(t, errors.Is(err, errBroken))

	// the header has been rolled back
	resident, err := flash.Resident(fx.dev)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, resident, "")

	// header erase and program, one block, and the rollback
	test.ExpectEquality(t, len(fx.dev.ops), 5)
	test.ExpectEquality(t, fx.dev.ops[4], op{erase: true, offset: flash.TargetOffset, length: flash.HeaderSize})
	test.ExpectEquality(t, fx.dev.unguarded, 0)

	// critical section has been left
	test.ExpectEquality(t, fx.lockout.Locked(), false)
	test.ExpectEquality(t, fx.irq.Enabled(), true)
	test.ExpectEquality(t, len(*fx.notices), 2)
}

// erased flash records no path, so an empty path is never resident
func TestEmptyPath(t *testing.T) {
	fx := newFixture(fstest.MapFS{})

	rep, err := fx.ld.LoadCartridge("")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrOpen))
	test.ExpectEquality(t, rep.Skipped, false)
	test.ExpectEquality(t, rep.Flashed, false)
	test.ExpectEquality(t, len(fx.dev.ops), 0)
	test.ExpectEquality(t, len(*fx.notices), 0)
}

// the whole path must fit in the header for the resident check to be exact
func TestPathLength(t *testing.T) {
	longest := "SEGA\\" + strings.Repeat("a", flash.HeaderPathLen-len("SEGA\\"))
	tooLong := "SEGA\\" + strings.Repeat("b", flash.HeaderPathLen)
	fx := newFixture(fstest.MapFS{
		strings.ReplaceAll(longest, "\\", "/"): {Data: cartridge(100)},
		strings.ReplaceAll(tooLong, "\\", "/"): {Data: cartridge(100)},
	})

	test.DemandEquality(t, len(longest), flash.HeaderPathLen)
	rep, err := fx.ld.LoadCartridge(longest)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Flashed, true)

	resident, err := flash.Resident(fx.dev)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, resident, longest)

	// loading the longest path again is skipped
	fx.dev.ops = nil
	rep, err = fx.ld.LoadCartridge(longest)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Skipped, true)
	test.ExpectEquality(t, len(fx.dev.ops), 0)

	// a longer path is refused before flash is touched
	rep, err = fx.ld.LoadCartridge(tooLong)
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrOpen))
	test.ExpectEquality(t, rep.Flashed, false)
	test.ExpectEquality(t, len(fx.dev.ops), 0)
	test.ExpectEquality(t, fx.lockout.Count(), 1)

	resident, err = flash.Resident(fx.dev)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, resident, longest)
}

func TestBufferSize(t *testing.T) {
	env := environment.NewEnvironment("test", nil)
	env.Quiet = true
	card := storage.NewCard(env, fstest.MapFS{})
	ld := cartridgeloader.NewLoader(env, card, flash.NewImage(nil, ""),
		multicore.NewLockout(), &multicore.Interrupts{}, make([]uint8, 10))
	_, err := ld.LoadCartridge("game.bin")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrBuffer))
}
