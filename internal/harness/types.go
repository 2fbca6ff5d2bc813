// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package harness

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned when a group is registered without a name.
var ErrEmptyName = errors.New("group name is required")

// ErrDuplicateGroup is returned when a group name is registered twice.
var ErrDuplicateGroup = errors.New("group already registered")

// ErrNilFunc is returned when a group is registered without a body.
var ErrNilFunc = errors.New("group func is required")

// AssertionFailure records a single REQUIRE whose computed value did not
// match the literal expectation.
type AssertionFailure struct {
	// Group is the name of the test group the assertion belongs to
	Group string
	// Expr is the evaluated expression, operands included (e.g. "add(0, 3)")
	Expr string
	// Expected is the literal value the expression was required to equal
	Expected int
	// Actual is the value the expression produced
	Actual int
}

// Error implements the error interface
func (f *AssertionFailure) Error() string {
	return fmt.Sprintf("%s: REQUIRE( %s == %d ) failed: got %d", f.Group, f.Expr, f.Expected, f.Actual)
}

// Group is a named unit of execution holding one or more assertions.
type Group struct {
	Name string
	Tags []string
	Func func(*T)
}

// GroupResult is the outcome of executing one group.
type GroupResult struct {
	Name       string
	Tags       []string
	Assertions int
	Failures   []*AssertionFailure
	// Panic holds the recovered value when the group func panicked
	Panic string
	// Skipped is set when the group never ran (fail-fast or cancellation)
	Skipped bool
}

// Failed reports whether the group ran and produced a failure or panic.
func (r *GroupResult) Failed() bool {
	return len(r.Failures) > 0 || r.Panic != ""
}

// Passed reports whether the group ran to completion without failures.
func (r *GroupResult) Passed() bool {
	return !r.Skipped && !r.Failed()
}
