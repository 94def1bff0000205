// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r, c) is vertex r*cols + c (row-major order).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(1) extra.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// 2) All cells exist, even a 1×1 grid with no edges.
		s.grow(rows * cols)

		// 3) Emit edges: for each (r,c), connect to Right and Bottom neighbors if they exist.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					s.add(u, u+1, cfg.weight())
				}
				if r+1 < rows {
					s.add(u, u+cols, cfg.weight())
				}
			}
		}

		return nil
	}
}
