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

package board

import (
	"fmt"
	"time"

	"github.com/jetsetilly/murmulator/hardware/flash"
	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/prefs"
	"github.com/jetsetilly/murmulator/resources"
)

// the name of the preferences file in the resources directory
const prefsFile = "preferences"

// Preferences for the board.
type Preferences struct {
	dsk *prefs.Disk

	// video mode. text or native
	Mode prefs.String

	// host directory standing in for the storage card
	SDRoot prefs.String

	// directory on the card shown by the browser
	Directory prefs.String

	// input poll interval in milliseconds
	Tick prefs.Int

	// number of polls before a held direction repeats
	Repeat prefs.Int

	// do not write the flash image after a load
	Volatile prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("mode=%s sdroot=%s directory=%s tick=%s repeat=%s volatile=%s",
		p.Mode.String(), p.SDRoot.String(), p.Directory.String(), p.Tick.String(), p.Repeat.String(),
		p.Volatile.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the preferences file in the
// resources directory.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	// the selected path is <directory>\<name> and must fit in the flash header
	p.Directory.SetMaxLen(flash.HeaderPathLen / 2)

	p.Tick.SetHookPost(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("input tick must be positive (%dms)", v.(int))
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if path == "" {
		var err error
		path, err = resources.JoinPath(prefsFile)
		if err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	for _, err := range []error{
		p.dsk.Add("board.mode", &p.Mode),
		p.dsk.Add("board.sdroot", &p.SDRoot),
		p.dsk.Add("board.directory", &p.Directory),
		p.dsk.Add("input.tick", &p.Tick),
		p.dsk.Add("input.repeat", &p.Repeat),
		p.dsk.Add("board.volatile", &p.Volatile),
	} {
		if err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	for _, err := range []error{
		p.Mode.Set(video.Text.String()),
		p.SDRoot.Set("sdcard"),
		p.Directory.Set("SEGA"),
		p.Tick.Set(33),
		p.Repeat.Set(5),
		p.Volatile.Set(false),
	} {
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns the board configuration described by the preferences.
func (p *Preferences) Config() (Config, error) {
	mode, err := video.ParseMode(p.Mode.String())
	if err != nil {
		return Config{}, fmt.Errorf("board: %w", err)
	}

	tick := p.Tick.Get().(int)
	if tick <= 0 {
		return Config{}, fmt.Errorf("board: input tick must be positive (%dms)", tick)
	}

	return Config{
		Mode:        mode,
		Directory:   p.Directory.String(),
		Tick:        time.Duration(tick) * time.Millisecond,
		RepeatDelay: p.Repeat.Get().(int),
		Volatile:    p.Volatile.Get().(bool),
	}, nil
}
