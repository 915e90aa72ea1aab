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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer applies a colour to log entries according to their tag before
// writing them to the underlying io.Writer. Suitable for use as an echo
// writer with SetEcho().
type Colorizer struct {
	out     io.Writer
	tag     lipgloss.Style
	warning lipgloss.Style
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:     out,
		tag:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		warning: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(1)),
	}
}

// Write implements the io.Writer interface. Entries with a detail that
// mentions an error are coloured with the warning style.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.Split(strings.TrimSpace(string(p)), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			_, err = io.WriteString(c.out, l+"\n")
		} else {
			if strings.Contains(detail, "error") {
				detail = c.warning.Render(detail)
			}
			_, err = io.WriteString(c.out, c.tag.Render(tag)+": "+detail+"\n")
		}
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
