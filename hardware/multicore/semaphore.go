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

package multicore

import "context"

// Semaphore is a single permit semaphore. It is used as a one-shot gate:
// acquired once by the waiting core and released once by the other.
//
// Releasing a semaphore that already holds its permit has no effect.
type Semaphore struct {
	permit chan struct{}
}

// NewSemaphore is the preferred method of initialisation for the Semaphore
// type. The semaphore starts without its permit.
func NewSemaphore() *Semaphore {
	return &Semaphore{
		permit: make(chan struct{}, 1),
	}
}

// Release makes the permit available.
func (s *Semaphore) Release() {
	select {
	case s.permit <- struct{}{}:
	default:
	}
}

// Acquire blocks until the permit is available and takes it. Returns the
// context's error if the context is done before the permit is taken.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case <-s.permit:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes the permit if it is available without blocking.
func (s *Semaphore) TryAcquire() bool {
	select {
	case <-s.permit:
		return true
	default:
		return false
	}
}
