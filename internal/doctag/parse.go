package doctag

import (
	"strings"
	"unicode"

	"paramdoc/internal/docmodel"
)

// namedTags take a name after the tag word (or after the type list).
var namedTags = map[string]bool{
	docmodel.TagParam: true,
	"yieldparam":      true,
	"option":          true,
}

// typedTags accept a leading [Types] list.
var typedTags = map[string]bool{
	docmodel.TagParam: true,
	"yieldparam":      true,
	"option":          true,
	"return":          true,
	"yieldreturn":     true,
	"raise":           true,
}

// Parse splits text into its description and its tags, in source order.
func Parse(text string) (string, []*docmodel.Tag) {
	var (
		desc    []string
		tags    []*docmodel.Tag
		current *docmodel.Tag
		body    []string
	)

	flush := func() {
		if current == nil {
			return
		}

		current.Text = strings.TrimSpace(strings.Join(body, "\n"))
		tags = append(tags, current)
		current, body = nil, nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case isTagLine(trimmed):
			flush()
			current, body = parseTagLine(trimmed[1:])

		case current != nil && trimmed != "" && startsIndented(line):
			body = append(body, trimmed)

		case current != nil && trimmed == "":
			flush()

		default:
			flush()
			desc = append(desc, strings.TrimRightFunc(line, unicode.IsSpace))
		}
	}
	flush()

	return strings.TrimSpace(strings.Join(desc, "\n")), tags
}

func isTagLine(s string) bool {
	return len(s) > 1 && s[0] == '@' && unicode.IsLetter(rune(s[1]))
}

func startsIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// parseTagLine parses the part of a tag line after '@'. It returns the tag
// and the first line of its text.
func parseTagLine(s string) (*docmodel.Tag, []string) {
	kind, rest := splitWord(s)
	tag := &docmodel.Tag{Kind: kind}

	if typedTags[kind] {
		if types, after, ok := parseTypeList(rest); ok {
			tag.Types = types
			rest = after
		}
	}

	if namedTags[kind] {
		tag.Name, rest = splitWord(rest)

		// "@param name [Types] text"
		if tag.Types == nil {
			if types, after, ok := parseTypeList(rest); ok {
				tag.Types = types
				rest = after
			}
		}
	}

	if rest == "" {
		return tag, nil
	}

	return tag, []string{rest}
}

// splitWord returns the first whitespace-delimited word of s and the
// trimmed remainder.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)

	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}

	return s[:idx], strings.TrimSpace(s[idx:])
}

// parseTypeList parses a leading "[A, B<C, D>]" list. It returns ok=false
// when s does not start with a well-formed list. An empty "[]" yields a
// non-nil empty slice.
func parseTypeList(s string) ([]string, string, bool) {
	if !strings.HasPrefix(s, "[") {
		return nil, s, false
	}

	depth := 0
	start := 1
	types := []string{}
	var quote rune

	for i, r := range s {
		if quote != 0 {
			if r == quote {
				quote = 0
			}

			continue
		}

		switch r {
		case '\'', '"':
			quote = r
		case '[', '<', '{', '(':
			depth++
		case '>':
			// "=>" separates hash key and value types.
			if i > 0 && s[i-1] == '=' {
				break
			}

			fallthrough
		case ']', '}', ')':
			depth--
			if depth == 0 {
				if t := strings.TrimSpace(s[start:i]); t != "" {
					types = append(types, t)
				}

				return types, strings.TrimSpace(s[i+1:]), true
			}
		case ',':
			if depth == 1 {
				if t := strings.TrimSpace(s[start:i]); t != "" {
					types = append(types, t)
				}
				start = i + 1
			}
		}
	}

	return nil, s, false
}
