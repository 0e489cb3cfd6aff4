package docmodel

import "strings"

// Entity is a documentable declaration: the parsed parameter list together
// with the authored documentation that describes it.
type Entity struct {
	Name       string      `json:"name"`
	Kind       EntityKind  `json:"kind"`
	Location   Location    `json:"location"`
	Docstring  string      `json:"docstring,omitempty"` // Overall description, without tags
	Parameters []Parameter `json:"parameters"`          // Declaration order
	Tags       []*Tag      `json:"tags"`                // Authored and synthesized tags, in insertion order
}

// HasDocstring returns true if the entity has a non-empty description.
func (e *Entity) HasDocstring() bool {
	return strings.TrimSpace(e.Docstring) != ""
}

// TagsOf returns the tags of the given kind in insertion order.
// The returned slice is a snapshot; the tags themselves are shared.
func (e *Entity) TagsOf(kind string) []*Tag {
	var out []*Tag
	for _, t := range e.Tags {
		if t.Kind == kind {
			out = append(out, t)
		}
	}

	return out
}

// FindTag returns the first tag of the given kind whose name equals name,
// or nil. When several tags share a name the first one in insertion order
// wins.
func (e *Entity) FindTag(kind, name string) *Tag {
	return FindByName(e.TagsOf(kind), name)
}

// AddTag appends a tag to the entity.
func (e *Entity) AddTag(t *Tag) {
	e.Tags = append(e.Tags, t)
}

// Parameter returns the declared parameter with the given name.
func (e *Entity) Parameter(name string) (Parameter, bool) {
	for _, p := range e.Parameters {
		if p.Name == name {
			return p, true
		}
	}

	return Parameter{}, false
}

// FindByName returns the first tag in tags whose name equals name, or nil.
// Matching is exact: no case folding, no prefix matching.
func FindByName(tags []*Tag, name string) *Tag {
	for _, t := range tags {
		if t.Name == name {
			return t
		}
	}

	return nil
}
