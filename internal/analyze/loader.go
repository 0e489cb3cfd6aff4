package analyze

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"paramdoc/internal/docmodel"
	"paramdoc/internal/doctag"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and extracts documentable entities.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// LoadPackages loads the packages matching patterns and returns one entity
// per documentable function or method, ordered by file and line.
// Patterns are standard Go package patterns (e.g., "./...", "paramdoc/store").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*docmodel.Entity, error) {
	cfg := &packages.Config{
		Mode:  LoadMode,
		Dir:   a.cfg.Dir,
		Tests: a.cfg.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrPackageErrors, errs)
	}

	base := a.cfg.Dir
	if base == "" {
		base, _ = os.Getwd()
	}

	var entities []*docmodel.Entity
	seen := make(map[token.Position]bool)

	for _, pkg := range pkgs {
		if isTestMain(pkg) {
			continue
		}

		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if !ok {
					continue
				}

				entity := a.funcEntity(pkg, fd, base)
				if entity == nil {
					continue
				}

				// Test variants of a package repeat its declarations.
				pos := pkg.Fset.Position(fd.Pos())
				if seen[pos] {
					continue
				}
				seen[pos] = true

				entities = append(entities, entity)
			}
		}
	}

	slices.SortStableFunc(entities, func(x, y *docmodel.Entity) int {
		if c := cmp.Compare(x.Location.File, y.Location.File); c != 0 {
			return c
		}

		return cmp.Compare(x.Location.Line, y.Location.Line)
	})

	return entities, nil
}

// isTestMain reports whether pkg is the generated test binary package that
// go/packages adds when tests are loaded.
func isTestMain(pkg *packages.Package) bool {
	return strings.HasSuffix(pkg.ID, ".test")
}

// funcEntity builds the entity for a function declaration, or returns nil
// if the declaration is not documentable.
func (a *Analyzer) funcEntity(pkg *packages.Package, fd *ast.FuncDecl, base string) *docmodel.Entity {
	fn, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
	if !ok {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil
	}

	entity := &docmodel.Entity{
		Name: fn.Name(),
		Kind: docmodel.EntityKindFunc,
	}

	if recv := sig.Recv(); recv != nil {
		recvName := receiverName(recv)
		if !a.cfg.IncludeUnexported && !token.IsExported(recvName) {
			return nil
		}

		entity.Name = recvName + "." + fn.Name()
		entity.Kind = docmodel.EntityKindMethod
	}

	if !a.cfg.IncludeUnexported && !fn.Exported() {
		return nil
	}

	pos := pkg.Fset.Position(fd.Pos())
	entity.Location = docmodel.Location{File: relPath(base, pos.Filename), Line: pos.Line}
	entity.Docstring, entity.Tags = doctag.Parse(fd.Doc.Text())

	params := sig.Params()
	for i := range params.Len() {
		p := params.At(i)

		// Blank and unnamed parameters cannot be documented.
		if p.Name() == "" || p.Name() == "_" {
			continue
		}

		variadic := sig.Variadic() && i == params.Len()-1
		entity.Parameters = append(entity.Parameters, docmodel.Parameter{
			Name: p.Name(),
			Type: ParamType(p.Type(), pkg.Types, variadic),
		})
	}

	return entity
}

func relPath(base, path string) string {
	if base == "" {
		return path
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}

	return rel
}
