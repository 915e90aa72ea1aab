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

package scanout

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/hardware/multicore"
	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/notifications"
)

// State of the Coordinator.
type State int32

// List of valid State values.
const (
	Idle State = iota
	WaitingForStart
	Rendering
	Halted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case WaitingForStart:
		return "waiting for start"
	case Rendering:
		return "rendering"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("unknown state (%d)", int32(s))
}

// Coordinator is the scan-out core.
type Coordinator struct {
	env     *environment.Environment
	fb      *video.FrameBuffer
	gen     Generator
	start   *multicore.Semaphore
	lockout *multicore.Lockout

	// the mode is chosen by the control core before the start semaphore is
	// released
	mode atomic.Int32

	state atomic.Int32

	// number of lines filled and number of frames started
	lines  atomic.Int64
	frames atomic.Int64

	halted   chan struct{}
	haltOnce sync.Once
}

// NewCoordinator is the preferred method of initialisation for the
// Coordinator type.
func NewCoordinator(env *environment.Environment, fb *video.FrameBuffer, gen Generator,
	start *multicore.Semaphore, lockout *multicore.Lockout) *Coordinator {
	return &Coordinator{
		env:     env,
		fb:      fb,
		gen:     gen,
		start:   start,
		lockout: lockout,
		halted:  make(chan struct{}),
	}
}

// SetMode sets the video mode. Must be called before the start semaphore is
// released. Calls after that have no effect on the running coordinator.
func (c *Coordinator) SetMode(mode video.Mode) {
	c.mode.Store(int32(mode))
}

// Mode returns the video mode.
func (c *Coordinator) Mode() video.Mode {
	return video.Mode(c.mode.Load())
}

// State returns the current state of the coordinator.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Halted returns a channel that is closed when the coordinator halts.
func (c *Coordinator) Halted() <-chan struct{} {
	return c.halted
}

// Lines returns the number of lines that have been filled.
func (c *Coordinator) Lines() int {
	return int(c.lines.Load())
}

// Frames returns the number of frames that have been started.
func (c *Coordinator) Frames() int {
	return int(c.frames.Load())
}

func (c *Coordinator) halt(reason any) {
	c.haltOnce.Do(func() {
		c.state.Store(int32(Halted))
		logger.Logf(c.env, "scanout", "halted: %v", reason)
		close(c.halted)
		if err := c.env.Notice(notifications.NotifyScanoutHalted); err != nil {
			logger.Log(c.env, "scanout", err)
		}
	})
}

// Run the coordinator. Run returns only when the coordinator halts, which
// happens when the generator stops producing lines or fails to initialise.
// Cancelling the context halts a coordinator that is still waiting for the
// start signal.
func (c *Coordinator) Run(ctx context.Context) {
	c.state.Store(int32(Idle))
	c.lockout.VictimInit()

	c.state.Store(int32(WaitingForStart))
	if err := c.start.Acquire(ctx); err != nil {
		c.halt(err)
		return
	}

	mode := c.Mode()
	w, h := mode.Resolution()
	if err := c.gen.Initialise(mode, w, h); err != nil {
		c.halt(fmt.Errorf("initialising generator: %w", err))
		return
	}
	logger.Logf(c.env, "scanout", "rendering %s mode at %dx%d", mode, w, h)

	c.state.Store(int32(Rendering))

	var planes *video.Planes
	for {
		line, ok := c.gen.NextLine()
		if !ok {
			c.halt("generator end of stream")
			return
		}

		c.lockout.Enter()
		if line.Row == 0 || planes == nil {
			planes = c.fb.Snapshot()
			c.frames.Add(1)
		}
		planes.FillLine(mode, line.Row, line.Samples)
		c.lockout.Exit()

		c.gen.Submit(line)
		c.lines.Add(1)
	}
}
