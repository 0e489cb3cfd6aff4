package manifest

// File is the root of a manifest.
type File struct {
	// Version of the manifest schema.
	Version string `yaml:"version"`
	// Declarations in discovery order.
	Declarations []Declaration `yaml:"declarations"`
}

// Declaration describes one documentable entity.
type Declaration struct {
	// Name of the declaration (e.g. "apache::vhost").
	Name string `yaml:"name"`
	// Kind of the declaration (class, define, function, ...). Defaults to "defined".
	Kind string `yaml:"kind,omitempty"`
	// File and Line locate the declaration for diagnostics.
	File string `yaml:"file,omitempty"`
	Line int    `yaml:"line,omitempty"`
	// Docstring is the raw documentation text, possibly containing @tags.
	Docstring string `yaml:"docstring,omitempty"`
	// Parameters in declaration order.
	Parameters []Parameter `yaml:"parameters,omitempty"`
	// Tags are structured tags in addition to those found in Docstring.
	Tags []TagDef `yaml:"tags,omitempty"`
}

// Parameter is a declared parameter with an optional type annotation.
type Parameter struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

// TagDef is a structured documentation tag.
type TagDef struct {
	// Tag is the tag kind. Defaults to "param".
	Tag  string `yaml:"tag"`
	Name string `yaml:"name,omitempty"`
	// Types accepts a single string or a list.
	Types StringOrArray `yaml:"types,omitempty"`
	Text  string        `yaml:"text,omitempty"`
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// A nil value means no types were given.
type StringOrArray []string
