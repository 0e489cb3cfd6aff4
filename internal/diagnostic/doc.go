// Package diagnostic provides structured warnings for documentation
// inconsistencies and the sinks that receive them.
//
// Key capabilities:
//   - Orphan @param tag warnings
//   - Missing @param tag warnings
//   - Redundant type specification warnings
//   - Recording, logging and fan-out sinks
package diagnostic
