package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Property is a raw value of a component property. Presets store values
// opaquely; interpreting them is up to the component they are applied to.
type Property string

// NullProperty is an empty property value.
const NullProperty Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Modification is a single stored property modification of a preset.
// Path addresses a (possibly nested) property, e.g. "color.r".
type Modification struct {
	Path  string
	Value Property
}

func (m Modification) String() string {
	return fmt.Sprintf("%s=%s", m.Path, m.Value)
}

// RootProperty returns the root property of a property path, i.e. the path
// up to the first '.'.
//
//     RootProperty("color.r") => "color"
//
func RootProperty(path string) string {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return path
}
