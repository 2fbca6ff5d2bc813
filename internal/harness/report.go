// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package harness

import (
	"fmt"
	"io"
	"strings"
)

const (
	exitPassed = 0
	exitFailed = 1
	ruleWidth  = 79
)

// Report is the ordered outcome of a run.
type Report struct {
	Results []GroupResult
	// Cancelled is set when the context ended before every group ran
	Cancelled bool
}

// Totals summarizes a report.
type Totals struct {
	Cases            int
	CasesPassed      int
	CasesFailed      int
	CasesSkipped     int
	Assertions       int
	AssertionsFailed int
}

// Totals counts groups and assertions across the report.
func (r *Report) Totals() Totals {
	var t Totals
	for i := range r.Results {
		res := &r.Results[i]
		t.Cases++
		switch {
		case res.Skipped:
			t.CasesSkipped++
		case res.Failed():
			t.CasesFailed++
		default:
			t.CasesPassed++
		}
		t.Assertions += res.Assertions
		t.AssertionsFailed += len(res.Failures)
	}
	return t
}

// Passed returns true when no group failed and the run was not cancelled.
// A run that selected no groups passes.
func (r *Report) Passed() bool {
	if r.Cancelled {
		return false
	}
	for i := range r.Results {
		if r.Results[i].Failed() {
			return false
		}
	}
	return true
}

// ExitCode maps the report to a process exit status.
func (r *Report) ExitCode() int {
	if r.Passed() {
		return exitPassed
	}
	return exitFailed
}

// Failures returns every assertion failure in run order.
func (r *Report) Failures() []*AssertionFailure {
	var out []*AssertionFailure
	for i := range r.Results {
		out = append(out, r.Results[i].Failures...)
	}
	return out
}

// WriteTo writes a human-readable summary naming every failed group and
// assertion, followed by the totals.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	thin := strings.Repeat("-", ruleWidth)

	for i := range r.Results {
		res := &r.Results[i]
		if !res.Failed() {
			continue
		}
		fmt.Fprintf(&b, "%s\n%s\n%s\n", thin, res.Name, thin)
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "  REQUIRE( %s == %d )\n", f.Expr, f.Expected)
			fmt.Fprintf(&b, "  with expansion:\n    %d == %d\n", f.Actual, f.Expected)
			fmt.Fprintf(&b, "  expected: %d, actual: %d\n\n", f.Expected, f.Actual)
		}
		if res.Panic != "" {
			fmt.Fprintf(&b, "  panic: %s\n\n", res.Panic)
		}
	}

	for i := range r.Results {
		if r.Results[i].Skipped {
			fmt.Fprintf(&b, "skipped: %s\n", r.Results[i].Name)
		}
	}
	if r.Cancelled {
		b.WriteString("run cancelled\n")
	}

	t := r.Totals()
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	if t.Cases > 0 && r.Passed() && t.CasesSkipped == 0 {
		fmt.Fprintf(&b, "All tests passed (%d assertions in %d test cases)\n", t.Assertions, t.Cases)
	} else {
		fmt.Fprintf(&b, "test cases: %d | %d passed | %d failed", t.Cases, t.CasesPassed, t.CasesFailed)
		if t.CasesSkipped > 0 {
			fmt.Fprintf(&b, " | %d skipped", t.CasesSkipped)
		}
		fmt.Fprintf(&b, "\nassertions: %d | %d passed | %d failed\n",
			t.Assertions, t.Assertions-t.AssertionsFailed, t.AssertionsFailed)
	}

	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), fmt.Errorf("failed to write report: %w", err)
	}
	return int64(n), nil
}
