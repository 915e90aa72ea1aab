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

import (
	"sync"
	"time"
)

// Ticker is implemented by types that pace a loop. Wait blocks until the next
// tick and returns false if the ticker has been stopped.
type Ticker interface {
	Wait() bool
}

// Pulse ticks at a fixed interval.
type Pulse struct {
	pulse *time.Ticker

	stop     chan struct{}
	stopOnce sync.Once
}

// NewPulse is the preferred method of initialisation for the Pulse type.
func NewPulse(interval time.Duration) *Pulse {
	return &Pulse{
		pulse: time.NewTicker(interval),
		stop:  make(chan struct{}),
	}
}

// Wait implements the Ticker interface.
func (p *Pulse) Wait() bool {
	select {
	case <-p.pulse.C:
		return true
	case <-p.stop:
		return false
	}
}

// SetInterval changes the interval between ticks.
func (p *Pulse) SetInterval(interval time.Duration) {
	p.pulse.Reset(interval)
}

// Stop the pulse. Any current and future calls to Wait() return false.
func (p *Pulse) Stop() {
	p.stopOnce.Do(func() {
		p.pulse.Stop()
		close(p.stop)
	})
}
