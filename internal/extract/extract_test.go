package extract

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paramdoc/internal/diagnostic"
	"paramdoc/internal/docmodel"
	"paramdoc/internal/logging"
)

func sampleEntities() []*docmodel.Entity {
	return []*docmodel.Entity{
		{
			Name:       "first",
			Location:   docmodel.Location{File: "a.pp", Line: 1},
			Docstring:  "documented",
			Parameters: []docmodel.Parameter{{Name: "x"}},
		},
		{
			Name:       "second",
			Location:   docmodel.Location{File: "b.pp", Line: 2},
			Parameters: []docmodel.Parameter{{Name: "y", Type: "String"}},
		},
	}
}

func TestRun(t *testing.T) {
	res, err := Run(context.Background(), sampleEntities(), Options{})
	require.NoError(t, err)

	require.Len(t, res.Entities, 2)
	assert.Equal(t, 1, res.Diagnostics.Count())
	assert.Equal(t, "first", res.Diagnostics.All()[0].Entity)
	assert.Equal(t, []string{"String"}, res.Entities[1].FindTag(docmodel.TagParam, "y").Types)
}

func TestRun_Strict(t *testing.T) {
	res, err := Run(context.Background(), sampleEntities(), Options{Strict: true})
	require.ErrorIs(t, err, ErrWarnings)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Diagnostics.Count())

	clean := sampleEntities()[1:]
	_, err = Run(context.Background(), clean, Options{Strict: true})
	assert.NoError(t, err)
}

func TestRun_ExtraSinkAndLogging(t *testing.T) {
	var logs bytes.Buffer
	log := logging.NewJSON(&logs, "debug")
	ctx := logging.WithLogger(context.Background(), &log)

	extra := &diagnostic.Diagnostics{}
	res, err := Run(ctx, sampleEntities(), Options{Sink: diagnostic.MultiSink{extra, diagnostic.NewLogSink(log)}})
	require.NoError(t, err)

	assert.Equal(t, res.Diagnostics.All(), extra.All())
	assert.Contains(t, logs.String(), `"code":"missing_param_tag"`)
	assert.Contains(t, logs.String(), "Reconciled entity")
	assert.Contains(t, logs.String(), "Reconciliation finished")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entities := sampleEntities()
	res, err := Run(ctx, entities, Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Diagnostics.Count())
	assert.Empty(t, entities[0].Tags)
}
