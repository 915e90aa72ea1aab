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

package notifications

// Notice describes an event on the board.
type Notice string

// List of defined notifications.
const (
	// the loader has entered its critical section. the scan-out core is
	// locked out until NotifyLoadEnded
	NotifyLoadStarted Notice = "NotifyLoadStarted"
	NotifyLoadEnded   Notice = "NotifyLoadEnded"

	// the cartridge named by the user is already in flash
	NotifyLoadSkipped Notice = "NotifyLoadSkipped"

	// the scan-out core has stopped and will not restart
	NotifyScanoutHalted Notice = "NotifyScanoutHalted"

	// the control core has returned to the file browser
	NotifyReset Notice = "NotifyReset"
)

// Notify is implemented by hosts that want to know about board events.
type Notify interface {
	Notify(notice Notice) error
}
