// Package extract runs reconciliation over the entities discovered by a
// frontend and gathers the results.
package extract
