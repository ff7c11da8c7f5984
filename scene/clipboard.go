package scene

import (
	"strings"
	"sync"
)

// Clipboard holds a copied style name, to be pasted onto other objects.
// It is safe for concurrent use.
type Clipboard struct {
	sync.Mutex
	name  string
	valid bool
}

// Copy copies the style name of obj. Untagged objects leave the clipboard
// unchanged and Copy returns false.
func (cb *Clipboard) Copy(obj *Object) bool {
	if obj == nil || obj.Tag.IsBlank() {
		return false
	}
	cb.Lock()
	defer cb.Unlock()
	cb.name, cb.valid = strings.TrimSpace(obj.Tag.Name), true
	return true
}

// Content returns the style name on the clipboard.
func (cb *Clipboard) Content() (string, bool) {
	cb.Lock()
	defer cb.Unlock()
	return cb.name, cb.valid
}

// IsEmpty is a predicate: has nothing been copied yet?
func (cb *Clipboard) IsEmpty() bool {
	cb.Lock()
	defer cb.Unlock()
	return !cb.valid
}

// Clear empties the clipboard.
func (cb *Clipboard) Clear() {
	cb.Lock()
	defer cb.Unlock()
	cb.name, cb.valid = "", false
}

// Paste tags each of the objects with the copied style name and applies the
// cascade to them (see Apply). Pasting an empty clipboard does nothing.
func (cb *Clipboard) Paste(objs ...*Object) error {
	return cb.PasteWith(Selection{}, objs...)
}

// PasteWith is like Paste, with cascade options taken from sel.
func (cb *Clipboard) PasteWith(sel Selection, objs ...*Object) error {
	name, ok := cb.Content()
	if !ok {
		return nil
	}
	for _, obj := range objs {
		if obj != nil {
			obj.SetStyleName(name)
		}
	}
	return sel.Apply(objs...)
}
