// Package match ranks parameter names by similarity to a misspelled one.
//
// It backs the "did you mean" hints attached to orphan @param warnings.
// Matching between tags and parameters stays exact; suggestions are
// advisory only.
package match
