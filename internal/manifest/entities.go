package manifest

import (
	"fmt"

	"paramdoc/internal/docmodel"
	"paramdoc/internal/doctag"
)

// Entities converts the declarations into documentable entities, one per
// declaration and in the same order. Tags found in the docstring come
// before structured tags.
func (f *File) Entities() []*docmodel.Entity {
	out := make([]*docmodel.Entity, 0, len(f.Declarations))

	for _, d := range f.Declarations {
		desc, tags := doctag.Parse(d.Docstring)

		for _, td := range d.Tags {
			tags = append(tags, &docmodel.Tag{
				Kind:  td.Tag,
				Name:  td.Name,
				Types: td.Types.Strings(),
				Text:  td.Text,
			})
		}

		params := make([]docmodel.Parameter, 0, len(d.Parameters))
		for _, p := range d.Parameters {
			params = append(params, docmodel.Parameter{Name: p.Name, Type: p.Type})
		}

		out = append(out, &docmodel.Entity{
			Name:       d.Name,
			Kind:       docmodel.ParseEntityKind(d.Kind),
			Location:   docmodel.Location{File: d.File, Line: d.Line},
			Docstring:  desc,
			Parameters: params,
			Tags:       tags,
		})
	}

	return out
}

// Update writes the description and tags of entities back into the
// declarations they were built from. entities must be the result of
// f.Entities(), possibly reconciled.
func (f *File) Update(entities []*docmodel.Entity) error {
	if len(entities) != len(f.Declarations) {
		return fmt.Errorf("failed to update manifest: %d entities for %d declarations", len(entities), len(f.Declarations))
	}

	for i, e := range entities {
		d := &f.Declarations[i]
		if d.Name != e.Name {
			return fmt.Errorf("failed to update manifest: entity %q does not match declaration %q", e.Name, d.Name)
		}

		d.Docstring = e.Docstring
		d.Tags = tagDefs(e.Tags)
	}

	return nil
}

// FromEntities builds a manifest describing entities.
func FromEntities(entities []*docmodel.Entity) *File {
	f := &File{Version: "1"}

	for _, e := range entities {
		params := make([]Parameter, 0, len(e.Parameters))
		for _, p := range e.Parameters {
			params = append(params, Parameter{Name: p.Name, Type: p.Type})
		}

		f.Declarations = append(f.Declarations, Declaration{
			Name:       e.Name,
			Kind:       e.Kind.String(),
			File:       e.Location.File,
			Line:       e.Location.Line,
			Docstring:  e.Docstring,
			Parameters: params,
			Tags:       tagDefs(e.Tags),
		})
	}

	return f
}

func tagDefs(tags []*docmodel.Tag) []TagDef {
	if len(tags) == 0 {
		return nil
	}

	out := make([]TagDef, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagDef{
			Tag:   t.Kind,
			Name:  t.Name,
			Types: StringOrArray(t.Types),
			Text:  t.Text,
		})
	}

	return out
}
