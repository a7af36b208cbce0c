// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	root := t.TempDir()

	l, err := Resolve(root, "", "")
	require.NoError(t, err)

	assert.Equal(t, root, l.RootDir)
	assert.Equal(t, filepath.Join(root, "data"), l.DataDir)
	assert.Equal(t, filepath.Join(root, "plots"), l.PlotsDir)
}

func TestResolveOverrides(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere")

	l, err := Resolve(root, "datasets", abs)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "datasets"), l.DataDir)
	assert.Equal(t, abs, l.PlotsDir)
}

func TestResolveEmptyRootUsesExecutable(t *testing.T) {
	base := t.TempDir()
	old := executable
	executable = func() (string, error) { return filepath.Join(base, "bin", "ivpatents"), nil }
	defer func() { executable = old }()

	l, err := Resolve("", "", "")
	require.NoError(t, err)

	assert.Equal(t, base, l.RootDir)
	assert.Equal(t, filepath.Join(base, "data"), l.DataDir)
}

func TestEnsureCreatesDirectories(t *testing.T) {
	root := t.TempDir()
	l, err := Resolve(root, "", "")
	require.NoError(t, err)

	require.NoError(t, Ensure(l))
	// Second call is a no-op.
	require.NoError(t, Ensure(l))

	for _, dir := range []string{l.DataDir, l.PlotsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestInDataAndInPlots(t *testing.T) {
	l, err := Resolve(t.TempDir(), "", "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(l.DataDir, "in.csv"), InData(l, "in.csv"))
	assert.Equal(t, filepath.Join(l.PlotsDir, "chart.pdf"), InPlots(l, "chart.pdf"))
	assert.Equal(t, "/tmp/x.csv", InData(l, "/tmp/x.csv"))
}
