package scene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/style"
)

// Component is a part of an object which presets may be applied to.
// Components are used as map keys and therefore have to be comparable;
// pointer types are the usual choice.
type Component interface {
	cascade.Target
}

// Root declares an object to be the root of a stylesheet cascade.
type Root struct {
	Sheet     *style.Sheet
	AutoApply bool // re-apply the subtree on Refresh

	// Capability applies presets for everything styled by this root.
	// If nil, BagCapability is used.
	Capability cascade.Capability
}

// NewRoot creates a stylesheet root for a sheet.
func NewRoot(sheet *style.Sheet) *Root {
	return &Root{Sheet: sheet}
}

func (r *Root) capability() cascade.Capability {
	if r.Capability == nil {
		return BagCapability{}
	}
	return r.Capability
}

// Object is a node of the scene tree.
type Object struct {
	Name       string
	Tag        *style.Tag // style name, may be nil
	Root       *Root      // stylesheet root declared by this object, may be nil
	parent     *Object
	children   childrenSlice
	components []Component
}

// NewObject creates a new object without children, tag or components.
func NewObject(name string) *Object {
	return &Object{Name: name}
}

func (o *Object) String() string {
	return fmt.Sprintf("(Object %s #ch=%d %v)", o.Name, o.ChildCount(), o.Tag)
}

// AddChild appends a child to o and sets o as the child's parent. If ch is
// currently attached to another object, it is isolated first.
// It returns o to allow for chaining.
func (o *Object) AddChild(ch *Object) *Object {
	if ch != nil {
		ch.Isolate()
		o.children.add(ch, o)
	}
	return o
}

// Parent returns the parent object or nil (for the root of the tree).
func (o *Object) Parent() *Object {
	return o.parent
}

// Isolate removes o from its parent. It returns o.
func (o *Object) Isolate() *Object {
	if o != nil && o.parent != nil {
		o.parent.children.remove(o)
	}
	return o
}

// ChildCount returns the number of children of o.
func (o *Object) ChildCount() int {
	return o.children.length()
}

// Child returns the n-th child of o.
func (o *Object) Child(n int) (*Object, bool) {
	ch := o.children.child(n)
	return ch, ch != nil
}

// Children returns a copy of the children of o, in order.
func (o *Object) Children() []*Object {
	return o.children.asSlice()
}

// AddComponent appends components to o. Nil components are ignored.
// It returns o to allow for chaining.
func (o *Object) AddComponent(cs ...Component) *Object {
	for _, c := range cs {
		if c != nil {
			o.components = append(o.components, c)
		}
	}
	return o
}

// Components returns the components of o, in order.
func (o *Object) Components() []Component {
	return o.components
}

// ComponentOf returns the first component of o with a given type name.
func (o *Object) ComponentOf(typeName string) (Component, bool) {
	for _, c := range o.components {
		if c.TypeName() == typeName {
			return c, true
		}
	}
	return nil, false
}

// StyleName returns the style name of o, or "" if o is untagged.
func (o *Object) StyleName() string {
	if o.Tag == nil {
		return ""
	}
	return o.Tag.Name
}

// SetStyleName tags o with a style name. A blank name removes the tag.
func (o *Object) SetStyleName(name string) {
	if strings.TrimSpace(name) == "" {
		o.Tag = nil
		return
	}
	if o.Tag == nil {
		o.Tag = style.NewTag(name)
		return
	}
	o.Tag.Name = name
}

// NearestRoot returns the stylesheet root of o, or of its closest ancestor declaring
// one, together with the object declaring it.
func (o *Object) NearestRoot() (*Root, *Object, bool) {
	for it := o; it != nil; it = it.parent {
		if it.Root != nil {
			return it.Root, it, true
		}
	}
	return nil, nil, false
}

// Walk visits o and its subtree depth-first, parents before children, children in
// order. If f returns an error, the walk stops and returns it.
func (o *Object) Walk(f func(*Object) error) error {
	if err := f(o); err != nil {
		return err
	}
	for _, ch := range o.Children() {
		if err := ch.Walk(f); err != nil {
			return err
		}
	}
	return nil
}

// --- Concurrency-safe slices of children ------------------------------------

type childrenSlice struct {
	sync.RWMutex
	slice []*Object
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) add(child *Object, parent *Object) {
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice) remove(child *Object) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == child {
			chs.slice = append(chs.slice[:i], chs.slice[i+1:]...)
			child.parent = nil
			break
		}
	}
}

func (chs *childrenSlice) child(n int) *Object {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice) asSlice() []*Object {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Object, len(chs.slice))
	copy(children, chs.slice)
	return children
}
