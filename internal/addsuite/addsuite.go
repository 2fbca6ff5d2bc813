// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package addsuite registers the addition test groups on a harness.
//
// The "Addition (fail)" group is kept exactly as it was written: it
// requires add(0,3) and add(0,4) to equal 0, so it fails against a correct
// Add. Its expectations must not be corrected.
package addsuite

import (
	"fmt"

	"add-suite/internal/calculator"
	"add-suite/internal/harness"
)

// Group names in registration order.
const (
	FailGroup = "Addition (fail)"
	PassGroup = "Addition (pass)"
)

// Tag carried by every addition group.
const Tag = "[add]"

// AddFunc is the signature of the addition under test.
type AddFunc func(a, b int) int

// Register adds the addition groups to h, exercising calculator.Add.
func Register(h *harness.Harness) error {
	return RegisterWith(h, calculator.Add)
}

// RegisterWith adds the addition groups to h, exercising add.
func RegisterWith(h *harness.Harness, add AddFunc) error {
	groups := []struct {
		name string
		fn   func(*harness.T)
	}{
		{
			name: FailGroup,
			fn: func(t *harness.T) {
				requireAdd(t, add, 0, 1, 1)
				requireAdd(t, add, 0, 3, 0)
				requireAdd(t, add, 0, 4, 0)
			},
		},
		{
			name: PassGroup,
			fn: func(t *harness.T) {
				requireAdd(t, add, 0, 0, 0)
			},
		},
	}

	for _, g := range groups {
		if err := h.Register(g.name, []string{Tag}, g.fn); err != nil {
			return fmt.Errorf("failed to register addition suite: %w", err)
		}
	}
	return nil
}

func requireAdd(t *harness.T, add AddFunc, a, b, want int) bool {
	return t.RequireEqual(fmt.Sprintf("add(%d, %d)", a, b), add(a, b), want)
}
