package docmodel

import (
	"strconv"

	"paramdoc/internal/common"
)

// TagParam is the kind of a parameter documentation tag.
const TagParam = "param"

// FallbackType is the type name used when neither the declaration nor the
// author supplies type information.
const FallbackType = "Any"

// Parameter is a formal parameter of a declaration.
type Parameter struct {
	Name string `json:"name"`           // Parameter name as declared
	Type string `json:"type,omitempty"` // Declared type annotation; empty when absent
}

// HasType returns true if the parameter carries a declared type annotation.
func (p Parameter) HasType() bool {
	return p.Type != ""
}

// Tag is a single piece of authored documentation.
type Tag struct {
	// Kind is the tag word without the leading '@' (e.g. "param", "return").
	Kind string `json:"kind"`
	// Name is the documented parameter name. Empty for tags without a name.
	Name string `json:"name,omitempty"`
	// Types is the authored type list. A nil slice means no type
	// information was authored; an empty non-nil slice is an explicit
	// empty list ("@param [] name").
	Types []string `json:"types"`
	// Text is the free-form description.
	Text string `json:"text,omitempty"`
}

// HasTypes returns true if the tag carries at least one type.
func (t *Tag) HasTypes() bool {
	return len(t.Types) > 0
}

// TypesSet returns true if type information was ever authored or assigned.
func (t *Tag) TypesSet() bool {
	return t.Types != nil
}

// Location identifies where a declaration lives in source.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// String returns the location in file:line form.
func (l Location) String() string {
	if l.File == "" {
		return common.UnknownStr + ":" + strconv.Itoa(l.Line)
	}

	return l.File + ":" + strconv.Itoa(l.Line)
}

// EntityKind represents what sort of declaration an Entity documents.
type EntityKind int

const (
	EntityKindUnknown EntityKind = iota
	EntityKindFunc               // top-level function
	EntityKindMethod             // method with a receiver
	EntityKindDefined            // a declaration described in a manifest (class, define, resource, ...)
)

// String returns a human-readable representation of the EntityKind.
func (k EntityKind) String() string {
	switch k {
	case EntityKindFunc:
		return "func"
	case EntityKindMethod:
		return "method"
	case EntityKindDefined:
		return "defined"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EntityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseEntityKind maps a kind name back to an EntityKind.
func ParseEntityKind(s string) EntityKind {
	switch s {
	case "func", "function":
		return EntityKindFunc
	case "method":
		return EntityKindMethod
	case "", "defined", "class", "define", "resource", "type":
		return EntityKindDefined
	default:
		return EntityKindUnknown
	}
}
