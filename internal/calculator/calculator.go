// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator provides the integer arithmetic exercised by the
// addition suite.
package calculator

// Add returns a + b. Overflow wraps using Go's two's-complement int
// arithmetic.
func Add(a, b int) int {
	return a + b
}
