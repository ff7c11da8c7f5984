package style

import "strings"

// Tag is attached to styled objects and holds the raw style name,
// e.g. "button.primary".
type Tag struct {
	Name string
}

// NewTag creates a tag for a style name.
func NewTag(name string) *Tag {
	return &Tag{Name: name}
}

// IsBlank is a predicate: is t nil or does it carry a blank name?
func (t *Tag) IsBlank() bool {
	return t == nil || strings.TrimSpace(t.Name) == ""
}

func (t *Tag) String() string {
	if t == nil {
		return "Tag()"
	}
	return "Tag(" + t.Name + ")"
}
