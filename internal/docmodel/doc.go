// Package docmodel holds the documentation model shared by the frontends
// and the reconciler.
//
// Key types:
//   - Parameter: a declared formal parameter with an optional type annotation
//   - Tag: an authored documentation tag (@param, @return, ...)
//   - Entity: a documentable declaration owning its parameters and tags
package docmodel
