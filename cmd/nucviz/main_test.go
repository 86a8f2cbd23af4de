package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a regular file.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdout.txt")
	f, err := os.Create(path)
	require.NoError(t, err)

	saved := os.Stdout
	os.Stdout = f
	runErr := fn()
	os.Stdout = saved
	require.NoError(t, f.Close())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(out), runErr
}

func TestSeparationWithoutTerminal(t *testing.T) {
	outPath, xlsxPath, saveFigure = "", "", false

	out, err := captureStdout(t, func() error {
		return runSeparation(&cobra.Command{}, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "no terminal detected")
	assert.Contains(t, out, "nucviz separation --out <file>.svg")
	assert.NotContains(t, out, "S_2n (MeV)")
}

func TestSeparationToSVGWithoutTerminal(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "sn.svg")
	outPath, xlsxPath, saveFigure = svg, "", false
	defer func() { outPath = "" }()

	out, err := captureStdout(t, func() error {
		return runSeparation(&cobra.Command{}, nil)
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "no terminal detected")
	assert.Contains(t, out, "S_2n (MeV)")
	_, err = os.Stat(svg)
	assert.NoError(t, err)
}

func TestViewWithoutTerminal(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runView(&cobra.Command{}, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "no terminal detected")
	assert.Contains(t, out, "nucviz deform --out <file>.svg")
}
