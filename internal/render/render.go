// Package render writes reconciliation results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"paramdoc/internal/config"
	"paramdoc/internal/diagnostic"
	"paramdoc/internal/doctag"
	"paramdoc/internal/extract"
	"paramdoc/internal/manifest"
)

var (
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	nameColor    = color.New(color.Bold)
)

// Options tunes the text renderer.
type Options struct {
	// ShowTags prints every entity with its reconciled tags.
	ShowTags bool
}

// Write renders res to w in the given format.
func Write(w io.Writer, format string, res *extract.Result, opts Options) error {
	switch format {
	case config.FormatText, "":
		return Text(w, res, opts)
	case config.FormatJSON:
		return JSON(w, res)
	case config.FormatYAML:
		return YAML(w, res)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Text writes one line per diagnostic followed by a summary line.
func Text(w io.Writer, res *extract.Result, opts Options) error {
	var b strings.Builder

	if opts.ShowTags {
		for _, e := range res.Entities {
			fmt.Fprintf(&b, "%s %s (%s)\n", nameColor.Sprint(e.Name), e.Kind, e.Location)
			for _, t := range e.Tags {
				fmt.Fprintf(&b, "  %s\n", strings.ReplaceAll(doctag.FormatTag(t), "\n", "\n  "))
			}
		}
	}

	diags := res.Diagnostics.All()
	for _, d := range diags {
		fmt.Fprintf(&b, "%s: %s: %s [%s]\n", d.Location, severityLabel(d.Severity), d.Message, d.Code)
		if len(d.Suggestions) > 0 {
			fmt.Fprintf(&b, "  did you mean '%s'?\n", strings.Join(d.Suggestions, "', '"))
		}
	}

	fmt.Fprintf(&b, "%d %s, %d %s\n",
		len(res.Entities), plural(len(res.Entities), "declaration", "declarations"),
		len(diags), plural(len(diags), "warning", "warnings"))

	_, err := io.WriteString(w, b.String())
	return err
}

type jsonReport struct {
	Entities    any                     `json:"entities"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
}

// JSON writes the entities and diagnostics as a single JSON document.
func JSON(w io.Writer, res *extract.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	diags := res.Diagnostics.All()
	if diags == nil {
		diags = []diagnostic.Diagnostic{}
	}

	if err := enc.Encode(jsonReport{Entities: res.Entities, Diagnostics: diags}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}

// YAML writes the reconciled entities as a manifest.
func YAML(w io.Writer, res *extract.Result) error {
	data, err := manifest.Marshal(manifest.FromEntities(res.Entities))
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	_, err = w.Write(data)
	return err
}

func severityLabel(s diagnostic.Severity) string {
	switch s {
	case diagnostic.SeverityError:
		return errorColor.Sprint(s.String())
	case diagnostic.SeverityWarning:
		return warningColor.Sprint(s.String())
	default:
		return infoColor.Sprint(s.String())
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
