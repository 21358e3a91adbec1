// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densebench/report"
)

const sampleCSV = `Size,ADD_Ref_ns,ADD_Opt_ns,ADD_Speedup_%,MATMUL_Ref_ns,MATMUL_Opt_ns,MATMUL_Speedup_%
(64 x 64) on (64 x 64),2000,500,75,900000,90000,90
(12 x 30) on (30 x 7),,,,4000,4000,0
`

func TestRunRendersEachFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte(sampleCSV), 0o600))

	for _, name := range []string{"c.png", "c.svg", "c.html"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)
			var stdout, stderr bytes.Buffer
			require.Equal(t, 0, run([]string{"-in", in, "-out", out, "-dark"}, &stdout, &stderr), stderr.String())
			require.Contains(t, stdout.String(), "Saved "+out)
			info, err := os.Stat(out)
			require.NoError(t, err)
			require.Positive(t, info.Size())
		})
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	require.Equal(t, 2, run([]string{"-out", filepath.Join(dir, "c.gif")}, &stdout, &stderr))
	require.Contains(t, stderr.String(), report.ErrUnknownFormat.Error())

	require.Equal(t, 1, run([]string{"-in", filepath.Join(dir, "missing.csv"), "-out", filepath.Join(dir, "c.png")},
		&stdout, &stderr))

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("Shape,X\na,1\n"), 0o600))
	stderr.Reset()
	require.Equal(t, 1, run([]string{"-in", bad, "-out", filepath.Join(dir, "c.svg")}, &stdout, &stderr))
	require.Contains(t, stderr.String(), report.ErrMalformedCSV.Error())
}
