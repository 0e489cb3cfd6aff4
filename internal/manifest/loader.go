package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"paramdoc/internal/docmodel"
)

// ErrInvalidManifest is returned when a manifest fails validation.
var ErrInvalidManifest = errors.New("invalid manifest")

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Declarations {
		d := &f.Declarations[i]
		if d.Kind == "" {
			d.Kind = docmodel.EntityKindDefined.String()
		}

		for j := range d.Tags {
			if d.Tags[j].Tag == "" {
				d.Tags[j].Tag = docmodel.TagParam
			}
		}
	}
}

// Validate checks structural constraints the frontends rely on.
func Validate(f *File) error {
	var errs []error

	for i, d := range f.Declarations {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("declaration %d: missing name", i))
			continue
		}

		if docmodel.ParseEntityKind(d.Kind) == docmodel.EntityKindUnknown {
			errs = append(errs, fmt.Errorf("declaration %q: unknown kind %q", d.Name, d.Kind))
		}

		seen := make(map[string]bool, len(d.Parameters))
		for j, p := range d.Parameters {
			if p.Name == "" {
				errs = append(errs, fmt.Errorf("declaration %q: parameter %d: missing name", d.Name, j))
				continue
			}

			if seen[p.Name] {
				errs = append(errs, fmt.Errorf("declaration %q: duplicate parameter %q", d.Name, p.Name))
			}
			seen[p.Name] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, errors.Join(errs...))
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
