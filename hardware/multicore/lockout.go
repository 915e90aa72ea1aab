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

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/murmulator/logger"
)

// Lockout forces the victim core into a quiesced state so that the other
// core can mutate flash.
//
// The victim brackets every unit of work with Enter() and Exit(). Between
// StartBlocking() and EndBlocking() the victim cannot enter, and
// StartBlocking() does not return until any unit of work that was already
// running has exited.
type Lockout struct {
	crit sync.RWMutex

	victim atomic.Bool
	locked atomic.Bool

	// number of completed lockouts
	count atomic.Int64
}

// NewLockout is the preferred method of initialisation for the Lockout type.
func NewLockout() *Lockout {
	return &Lockout{}
}

// VictimInit is called by the victim core before it does any work.
func (l *Lockout) VictimInit() {
	l.victim.Store(true)
}

// IsVictim returns true if a victim has called VictimInit().
func (l *Lockout) IsVictim() bool {
	return l.victim.Load()
}

// Enter is called by the victim before a unit of work. Blocks while the
// lockout is held.
func (l *Lockout) Enter() {
	l.crit.RLock()
}

// Exit is called by the victim after a unit of work.
func (l *Lockout) Exit() {
	l.crit.RUnlock()
}

// StartBlocking quiesces the victim. Returns once the victim has finished its
// current unit of work. If no victim has been installed the lockout is still
// taken.
func (l *Lockout) StartBlocking() {
	if !l.victim.Load() {
		logger.Log(logger.Allow, "multicore", "lockout started without a victim")
	}
	l.crit.Lock()
	l.locked.Store(true)
}

// EndBlocking releases the victim.
func (l *Lockout) EndBlocking() {
	l.locked.Store(false)
	l.count.Add(1)
	l.crit.Unlock()
}

// Locked returns true while the lockout is held.
func (l *Lockout) Locked() bool {
	return l.locked.Load()
}

// Count returns the number of completed lockouts.
func (l *Lockout) Count() int {
	return int(l.count.Load())
}
