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

package limiter

import "sync"

// Manual ticks only when Tick() is called. Tick() does not return until the
// loop being driven has finished its previous iteration and is waiting, so
// the loop and the caller of Tick() run in lockstep.
//
// Tick() and Sync() must be called from a single goroutine.
type Manual struct {
	ready chan struct{}
	tick  chan struct{}

	stop     chan struct{}
	stopOnce sync.Once

	// the loop has signalled it is ready but the tick has not been sent
	haveReady bool
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual() *Manual {
	return &Manual{
		ready: make(chan struct{}),
		tick:  make(chan struct{}),
		stop:  make(chan struct{}),
	}
}

// Wait implements the Ticker interface.
func (m *Manual) Wait() bool {
	select {
	case m.ready <- struct{}{}:
	case <-m.stop:
		return false
	}
	select {
	case <-m.tick:
		return true
	case <-m.stop:
		return false
	}
}

// Sync blocks until the loop is waiting for the next tick. Returns false if
// the ticker is stopped.
func (m *Manual) Sync() bool {
	if m.haveReady {
		return true
	}
	select {
	case <-m.ready:
		m.haveReady = true
		return true
	case <-m.stop:
		return false
	}
}

// Tick allows the loop to run one iteration. Returns false if the ticker is
// stopped.
func (m *Manual) Tick() bool {
	if !m.Sync() {
		return false
	}
	m.haveReady = false
	select {
	case m.tick <- struct{}{}:
		return true
	case <-m.stop:
		return false
	}
}

// Stop the ticker. Any current and future calls to Wait() return false.
func (m *Manual) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}
