package reconcile

import (
	"fmt"

	"paramdoc/internal/diagnostic"
	"paramdoc/internal/docmodel"
	"paramdoc/internal/match"
)

// Reconciler reconciles entities against a fixed diagnostic sink.
type Reconciler struct {
	sink diagnostic.Sink
}

// New creates a Reconciler reporting to sink. A nil sink discards warnings.
func New(sink diagnostic.Sink) *Reconciler {
	if sink == nil {
		sink = diagnostic.NopSink{}
	}

	return &Reconciler{sink: sink}
}

// Reconcile reconciles entity using the Reconciler's sink.
func (r *Reconciler) Reconcile(entity *docmodel.Entity) {
	Reconcile(entity, r.sink)
}

// Reconcile sets the @param tag types of entity from its declared
// parameters and reports inconsistencies to sink. The entity is borrowed
// for the duration of the call only.
func Reconcile(entity *docmodel.Entity, sink diagnostic.Sink) {
	if entity == nil {
		return
	}
	if sink == nil {
		sink = diagnostic.NopSink{}
	}

	// Lookups use the tags present before reconciliation; synthesized
	// tags are appended to the entity only.
	tags := entity.TagsOf(docmodel.TagParam)

	for _, tag := range tags {
		if _, ok := entity.Parameter(tag.Name); ok {
			continue
		}

		d := warning(entity, diagnostic.CodeOrphanParamTag, tag.Name,
			fmt.Sprintf("The @param tag for parameter '%s' has no matching parameter at %s.", tag.Name, entity.Location))
		d.Suggestions = match.Suggest(tag.Name, paramNames(entity), match.DefaultThreshold)
		sink.Warn(d)
	}

	for _, param := range entity.Parameters {
		tag := docmodel.FindByName(tags, param.Name)
		if tag == nil {
			if entity.HasDocstring() {
				sink.Warn(warning(entity, diagnostic.CodeMissingParamTag, param.Name,
					fmt.Sprintf("Missing @param tag for parameter '%s' near %s.", param.Name, entity.Location)))
			}

			entity.AddTag(&docmodel.Tag{
				Kind:  docmodel.TagParam,
				Name:  param.Name,
				Types: []string{typeOrFallback(param)},
			})

			continue
		}

		if param.HasType() && tag.HasTypes() && !isExactly(tag.Types, param.Type) {
			sink.Warn(warning(entity, diagnostic.CodeRedundantParamType, param.Name,
				fmt.Sprintf("The @param tag for parameter '%s' should not contain a type specification near %s: ignoring in favor of parameter type information.",
					param.Name, entity.Location)))
		}

		switch {
		case param.HasType():
			tag.Types = []string{param.Type}
		case !tag.TypesSet():
			tag.Types = []string{docmodel.FallbackType}
		}
	}
}

// isExactly reports whether types is the single-element list [typ]. A tag
// that already holds exactly the declared type is not a conflict, which
// keeps a second reconciliation of the same entity silent.
func isExactly(types []string, typ string) bool {
	return len(types) == 1 && types[0] == typ
}

func paramNames(entity *docmodel.Entity) []string {
	names := make([]string, 0, len(entity.Parameters))
	for _, p := range entity.Parameters {
		names = append(names, p.Name)
	}

	return names
}

func typeOrFallback(p docmodel.Parameter) string {
	if p.HasType() {
		return p.Type
	}

	return docmodel.FallbackType
}

func warning(entity *docmodel.Entity, code, name, message string) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Code:     code,
		Message:  message,
		Entity:   entity.Name,
		Name:     name,
		Location: entity.Location,
	}
}
