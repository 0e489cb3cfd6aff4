// Package analyze loads Go packages and turns their function and method
// declarations into documentable entities.
//
// It uses golang.org/x/tools/go/packages with AST and go/types:
//   - the doc comment is split into description and @tags by doctag
//   - the parameter list comes from the *types.Signature, in order
//   - parameters typed any or interface{} carry no type information
package analyze
