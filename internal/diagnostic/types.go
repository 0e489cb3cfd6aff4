package diagnostic

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"paramdoc/internal/common"
	"paramdoc/internal/docmodel"
)

// Diagnostic codes emitted while reconciling parameter documentation.
const (
	CodeOrphanParamTag     = "orphan_param_tag"
	CodeMissingParamTag    = "missing_param_tag"
	CodeRedundantParamType = "redundant_param_type"
)

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Entity names the declaration this relates to (if any).
	Entity string `json:"entity,omitempty"`
	// Name is the parameter or tag name that triggered the diagnostic.
	Name string `json:"name,omitempty"`
	// Location is the declaration's source position.
	Location docmodel.Location `json:"location"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Location.File != "" {
		return d.Location.String() + ": " + msg
	}

	return msg
}

// Diagnostics collects diagnostics in emission order. It is safe for
// concurrent use and implements Sink.
type Diagnostics struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Warn records a diagnostic. The severity is forced to warning.
func (d *Diagnostics) Warn(diag Diagnostic) {
	diag.Severity = SeverityWarning
	d.add(diag)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, loc docmodel.Location) {
	d.add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Location: loc})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, loc docmodel.Location) {
	d.add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Location: loc})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, loc docmodel.Location) {
	d.add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Location: loc})
}

func (d *Diagnostics) add(diag Diagnostic) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.items = append(d.items, diag)
}

// All returns a copy of every recorded diagnostic.
func (d *Diagnostics) All() []Diagnostic {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Diagnostic, len(d.items))
	copy(out, d.items)

	return out
}

// Filter returns the recorded diagnostics with the given severity.
func (d *Diagnostics) Filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.All() {
		if diag.Severity == sev {
			out = append(out, diag)
		}
	}

	return out
}

// Count returns the number of recorded diagnostics.
func (d *Diagnostics) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.items)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Filter(SeverityError))
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return !common.IsEmpty(d.Filter(SeverityWarning))
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil || other == d {
		return
	}

	for _, diag := range other.All() {
		d.add(diag)
	}
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	errs := d.Filter(SeverityError)
	if len(errs) == 0 {
		return nil
	}

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
