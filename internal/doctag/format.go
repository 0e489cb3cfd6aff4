package doctag

import (
	"strings"

	"paramdoc/internal/docmodel"
)

// FormatTag renders a tag in YARD style with the types after the name.
func FormatTag(t *docmodel.Tag) string {
	var b strings.Builder

	b.WriteString("@")
	b.WriteString(t.Kind)

	if t.Name != "" {
		b.WriteString(" ")
		b.WriteString(t.Name)
	}

	if t.Types != nil {
		b.WriteString(" [")
		b.WriteString(strings.Join(t.Types, ", "))
		b.WriteString("]")
	}

	if t.Text != "" {
		lines := strings.Split(t.Text, "\n")
		b.WriteString(" ")
		b.WriteString(lines[0])

		for _, l := range lines[1:] {
			b.WriteString("\n  ")
			b.WriteString(l)
		}
	}

	return b.String()
}

// Format renders a description followed by its tags.
func Format(description string, tags []*docmodel.Tag) string {
	parts := make([]string, 0, len(tags)+1)
	if description != "" {
		parts = append(parts, description)
	}

	for _, t := range tags {
		parts = append(parts, FormatTag(t))
	}

	return strings.Join(parts, "\n")
}
