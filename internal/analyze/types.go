package analyze

import (
	"errors"
	"go/types"
	"strings"
)

// ErrPackageErrors is returned when loaded packages report errors.
var ErrPackageErrors = errors.New("package errors")

// Config controls which declarations are documentable.
type Config struct {
	// Dir is the directory patterns are resolved from. Empty means the
	// current directory.
	Dir string
	// IncludeUnexported also documents unexported functions and methods.
	IncludeUnexported bool
	// Tests also loads _test.go files.
	Tests bool
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{}
}

// ParamType returns the annotation for a parameter of type t declared in
// pkg, or "" when the type carries no information (any, interface{}).
// Types from pkg are unqualified; others use their package name.
func ParamType(t types.Type, pkg *types.Package, variadic bool) string {
	if variadic {
		if s, ok := t.(*types.Slice); ok {
			elem := ParamType(s.Elem(), pkg, false)
			if elem == "" {
				return ""
			}

			return "..." + elem
		}
	}

	if isOpaque(t) {
		return ""
	}

	return types.TypeString(t, func(p *types.Package) string {
		if p == pkg {
			return ""
		}

		return p.Name()
	})
}

// isOpaque reports whether t is the empty interface, spelled either as
// any or interface{}. Named empty interfaces still carry a name.
func isOpaque(t types.Type) bool {
	iface, ok := types.Unalias(t).(*types.Interface)
	return ok && iface.Empty()
}

// receiverName returns the base type name of a method receiver.
func receiverName(recv *types.Var) string {
	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	switch rt := types.Unalias(t).(type) {
	case *types.Named:
		return rt.Obj().Name()
	default:
		return strings.TrimPrefix(types.TypeString(t, nil), "*")
	}
}
