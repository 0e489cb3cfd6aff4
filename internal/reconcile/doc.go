// Package reconcile matches a declaration's parameters against its @param
// documentation tags.
//
// Reconciliation runs two passes over one entity:
//   - every @param tag without a declared parameter is reported and kept
//   - every declared parameter ends up with a typed @param tag, either by
//     synthesizing one or by filling in the type of the authored tag
//
// Declared types always win over authored ones. Authored types survive
// only when the declaration has nothing to say. All findings are
// warnings; Reconcile never fails.
package reconcile
