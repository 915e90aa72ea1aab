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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hook is embedded by every pref type.
type hook struct {
	post func(value Value) error
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is called even if the value hasn't changed.
// An error from the callback is returned by Set() but the value has already
// been stored.
func (h *hook) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hook) after(v Value) error {
	if h.post == nil {
		return nil
	}
	return h.post(v)
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hook
	value atomic.Bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string other than "true" (case insensitive) is false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	p.value.Store(nv)
	return p.after(nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hook
	maxLen atomic.Int32
	value  atomic.Pointer[string]
}

func (p *String) String() string {
	if s := p.value.Load(); s != nil {
		return *s
	}
	return ""
}

func (p *String) crop(s string) string {
	if m := int(p.maxLen.Load()); m > 0 && len(s) > m {
		return s[:m]
	}
	return s
}

// SetMaxLen sets the maximum length of the string. A value less than or equal
// to zero means no limit. The existing string is cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen.Store(int32(max))
	if s := p.value.Load(); s != nil {
		c := p.crop(*s)
		p.value.Store(&c)
	}
}

// Set new value to String type. Values of any type are converted to a string
// using the %v verb.
func (p *String) Set(v Value) error {
	nv := p.crop(fmt.Sprintf("%v", v))
	p.value.Store(&nv)
	return p.after(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hook
	value atomic.Int64
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		var err error
		if nv, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	p.value.Store(int64(nv))
	return p.after(nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
