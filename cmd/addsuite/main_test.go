// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"add-suite/internal/config"
)

func inTempDir(t *testing.T, configContent string) {
	t.Helper()
	tmpDir := t.TempDir()
	if configContent != "" {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.FileName), []byte(configContent), 0644))
	}

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantCode    int
		wantStdout  []string
		wantStderr  []string
		notInStdout []string
	}{
		{
			name:     "default run reports the failing group",
			wantCode: 1,
			wantStdout: []string{
				"Addition (fail)",
				"REQUIRE( add(0, 3) == 0 )",
				"REQUIRE( add(0, 4) == 0 )",
				"test cases: 2 | 1 passed | 1 failed",
				"assertions: 4 | 2 passed | 2 failed",
			},
			wantStderr:  []string{"Assertion failed", "Run complete"},
			notInStdout: []string{"Assertion failed"},
		},
		{
			name: "fail fast skips the passing group",
			config: `
runner:
  fail_fast: true
`,
			wantCode: 1,
			wantStdout: []string{
				"skipped: Addition (pass)",
				"test cases: 2 | 0 passed | 1 failed | 1 skipped",
				"assertions: 2 | 1 passed | 1 failed",
			},
			notInStdout: []string{"add(0, 4)"},
		},
		{
			name: "tag filter with no match passes",
			config: `
runner:
  tags: ["[mul]"]
`,
			wantCode:   0,
			wantStdout: []string{"test cases: 0 | 0 passed | 0 failed"},
		},
		{
			name: "json logs",
			config: `
log:
  format: json
  level: warn
`,
			wantCode:   1,
			wantStderr: []string{`"msg":"Assertion failed"`, `"expr":"add(0, 3)"`},
		},
		{
			name: "invalid config is a setup error",
			config: `
log:
  format: xml
`,
			wantCode:   exitSetupError,
			wantStderr: []string{"Failed to load configuration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t, tt.config)
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			for _, s := range tt.wantStdout {
				assert.Contains(t, stdout.String(), s)
			}
			for _, s := range tt.wantStderr {
				assert.Contains(t, stderr.String(), s)
			}
			for _, s := range tt.notInStdout {
				assert.NotContains(t, stdout.String(), s)
			}
		})
	}
}
