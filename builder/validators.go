// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping the matching sentinel
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validatePartition checks that the two integers n1 and n2 are each ≥ MinPartition.
// Used by CompleteBipartite to enforce non-empty partitions.
//
// Complexity: O(1) time and space.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
			method, MinPartition, n1, n2, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Used by RandomSparse.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
