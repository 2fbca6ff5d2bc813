// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package harness runs named groups of integer equality assertions and
// collects their failures into a report.
package harness

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Harness holds registered groups and runs them in registration order.
type Harness struct {
	groups   []Group
	names    map[string]bool
	failFast bool
	tags     map[string]bool
	logger   *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithFailFast stops the run at the first failed assertion.
func WithFailFast(enabled bool) Option {
	return func(h *Harness) {
		h.failFast = enabled
	}
}

// WithTags restricts the run to groups carrying at least one of tags.
// "add" and "[add]" are equivalent.
func WithTags(tags []string) Option {
	return func(h *Harness) {
		for _, tag := range tags {
			if n := normalizeTag(tag); n != "" {
				h.tags[n] = true
			}
		}
	}
}

// WithLogger sets the logger used for run events.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates an empty Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		names:  make(map[string]bool),
		tags:   make(map[string]bool),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds a group. Groups run in the order they were registered.
func (h *Harness) Register(name string, tags []string, fn func(*T)) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilFunc)
	}
	if h.names[name] {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateGroup)
	}

	h.names[name] = true
	h.groups = append(h.groups, Group{
		Name: name,
		Tags: append([]string(nil), tags...),
		Func: fn,
	})
	return nil
}

// Groups returns the registered groups in run order.
func (h *Harness) Groups() []Group {
	return append([]Group(nil), h.groups...)
}

// Run executes every selected group and returns the collected report.
// A failed assertion never aborts other groups unless fail-fast is set.
func (h *Harness) Run(ctx context.Context) *Report {
	report := &Report{}
	stopped := false

	for _, g := range h.groups {
		if !h.selected(g) {
			continue
		}

		if !stopped && ctx.Err() != nil {
			h.logger.WarnContext(ctx, "Run cancelled", "error", ctx.Err())
			report.Cancelled = true
			stopped = true
		}
		if stopped {
			report.Results = append(report.Results, GroupResult{Name: g.Name, Tags: g.Tags, Skipped: true})
			continue
		}

		res := h.runGroup(ctx, g)
		report.Results = append(report.Results, res)
		if h.failFast && res.Failed() {
			stopped = true
		}
	}

	return report
}

// stopGroup is panicked by T under fail-fast and recovered by runGroup.
type stopGroup struct{}

func (h *Harness) runGroup(ctx context.Context, g Group) (res GroupResult) {
	res = GroupResult{Name: g.Name, Tags: g.Tags}
	t := &T{group: g.Name, result: &res, failFast: h.failFast, logger: h.logger}

	h.logger.DebugContext(ctx, "Running test case", "group", g.Name, "tags", g.Tags)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopGroup); !ok {
				res.Panic = fmt.Sprint(r)
				h.logger.ErrorContext(ctx, "Test case panicked", "group", g.Name, "panic", res.Panic)
			}
		}
		h.logger.DebugContext(ctx, "Test case finished",
			"group", g.Name,
			"assertions", res.Assertions,
			"failures", len(res.Failures))
	}()

	g.Func(t)
	return res
}

func (h *Harness) selected(g Group) bool {
	if len(h.tags) == 0 {
		return true
	}
	for _, tag := range g.Tags {
		if h.tags[normalizeTag(tag)] {
			return true
		}
	}
	return false
}

func normalizeTag(tag string) string {
	return strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(tag), "["), "]")
}

// T is passed to a group func and records its assertions.
type T struct {
	group    string
	result   *GroupResult
	failFast bool
	logger   *slog.Logger
}

// Name returns the group name.
func (t *T) Name() string {
	return t.group
}

// RequireEqual checks that actual equals expected. expr describes the
// computation, operands included, and appears in the report on failure.
func (t *T) RequireEqual(expr string, actual, expected int) bool {
	t.result.Assertions++
	if actual == expected {
		return true
	}

	failure := &AssertionFailure{
		Group:    t.group,
		Expr:     expr,
		Expected: expected,
		Actual:   actual,
	}
	t.result.Failures = append(t.result.Failures, failure)
	t.logger.Warn("Assertion failed",
		"group", t.group,
		"expr", expr,
		"expected", expected,
		"actual", actual)

	if t.failFast {
		panic(stopGroup{})
	}
	return false
}
