// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUniformWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	svgPath := filepath.Join(dir, "out.svg")
	htmlPath := filepath.Join(dir, "out.html")

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-uniform", "-sizes", "2,3", "-iterations", "1", "-warmup", "0", "-quiet",
		"-csv", csvPath, "-chart", svgPath, "-html", htmlPath,
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	require.Contains(t, out, `"configuration": "Uniform square sweep"`)
	require.Contains(t, out, `"sizes": [`)
	require.NotContains(t, out, "min_dim")
	require.Contains(t, out, "Execution Time (ns)")
	require.Contains(t, out, "(3 x 3) on (3 x 3)")
	require.NotContains(t, out, "\033[", "buffers are not terminals")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "Size,ADD_Ref_ns,"))

	for _, p := range []string{svgPath, htmlPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}

func TestRunRandomSweep(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "r.csv")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-count", "2", "-min-dim", "2", "-max-dim", "4", "-iterations", "1",
		"-warmup", "0", "-quiet", "-csv", csvPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), `"num_random_sizes": 2`)
	require.FileExists(t, csvPath)
}

func TestRunRejectsBadInput(t *testing.T) {
	for name, tc := range map[string]struct {
		args []string
		code int
	}{
		"unknown flag":   {[]string{"-bogus"}, 2},
		"stray argument": {[]string{"extra"}, 2},
		"bad level":      {[]string{"-log-level", "loud"}, 2},
		"bad chart":      {[]string{"-chart", "x.gif"}, 2},
		"bad sizes":      {[]string{"-uniform", "-sizes", "4,zero"}, 2},
		"bad sweep":      {[]string{"-count", "0"}, 1},
		"bad iterations": {[]string{"-uniform", "-sizes", "2", "-iterations", "0", "-quiet"}, 1},
	} {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			csvPath := filepath.Join(t.TempDir(), "never.csv")
			code := run(append(tc.args, "-csv", csvPath), &stdout, &stderr)
			require.Equal(t, tc.code, code)
			require.NotEmpty(t, stderr.String())
			require.NoFileExists(t, csvPath)
			require.NotContains(t, stdout.String(), "Execution Time")
		})
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("16, 32,64")
	require.NoError(t, err)
	require.Equal(t, []int{16, 32, 64}, got)
	require.Equal(t, "16,32,64", joinInts(got))

	_, err = parseInts("0")
	require.Error(t, err)
}
