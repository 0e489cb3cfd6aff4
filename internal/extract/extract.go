package extract

import (
	"context"
	"errors"
	"fmt"

	"paramdoc/internal/diagnostic"
	"paramdoc/internal/docmodel"
	"paramdoc/internal/logging"
	"paramdoc/internal/reconcile"
)

// ErrWarnings is returned in strict mode when any warning was reported.
var ErrWarnings = errors.New("documentation warnings reported")

// Options controls a pipeline run.
type Options struct {
	// Strict makes Run return ErrWarnings when any warning was reported.
	Strict bool
	// Sink additionally receives every warning, after the result's own
	// collector (e.g. a diagnostic.LogSink).
	Sink diagnostic.Sink
}

// Result is the outcome of a pipeline run.
type Result struct {
	Entities    []*docmodel.Entity
	Diagnostics *diagnostic.Diagnostics
}

// Run reconciles entities one at a time, in order. Cancellation is checked
// between entities; an entity is never left half reconciled.
func Run(ctx context.Context, entities []*docmodel.Entity, opts Options) (*Result, error) {
	log := logging.FromContext(ctx)

	res := &Result{
		Entities:    entities,
		Diagnostics: &diagnostic.Diagnostics{},
	}

	sink := diagnostic.Sink(res.Diagnostics)
	if opts.Sink != nil {
		sink = diagnostic.MultiSink{res.Diagnostics, opts.Sink}
	}

	r := reconcile.New(sink)

	for i, e := range entities {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("failed to reconcile after %d of %d entities: %w", i, len(entities), err)
		}

		before := res.Diagnostics.Count()
		r.Reconcile(e)

		log.Debug().
			Str("entity", e.Name).
			Str("location", e.Location.String()).
			Int("params", len(e.Parameters)).
			Int("warnings", res.Diagnostics.Count()-before).
			Msg("Reconciled entity")
	}

	log.Info().
		Int("entities", len(entities)).
		Int("warnings", res.Diagnostics.Count()).
		Msg("Reconciliation finished")

	if opts.Strict && res.Diagnostics.HasWarnings() {
		return res, fmt.Errorf("%w: %d", ErrWarnings, res.Diagnostics.Count())
	}

	return res, nil
}
