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

package environment

import (
	"github.com/jetsetilly/murmulator/notifications"
)

// Label is used to name the environment.
type Label string

// MainBoard is the label of the environment used by the running board.
const MainBoard Label = ""

// Environment is passed to the components of a board. It is the logging
// permission for those components and the route by which they notify the
// host of events.
type Environment struct {
	Label Label

	// log entries are suppressed when Quiet is true
	Quiet bool

	// Notify may be nil
	Notify notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
func NewEnvironment(label Label, notify notifications.Notify) *Environment {
	return &Environment{
		Label:  label,
		Notify: notify,
	}
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env != nil && !env.Quiet
}

// Notice sends the notice to the host if a notifier has been set. Errors from
// the notifier are returned to the caller.
func (env *Environment) Notice(notice notifications.Notice) error {
	if env == nil || env.Notify == nil {
		return nil
	}
	return env.Notify.Notify(notice)
}
