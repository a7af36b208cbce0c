// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paths resolves the project directory layout (data/ and plots/)
// and creates the directories a run writes into.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/ivpatents/pkg/types"
)

const (
	dataDirName  = "data"
	plotsDirName = "plots"
)

// executable is swapped by tests.
var executable = os.Executable

// DefaultRoot returns the parent of the directory holding the running
// binary, so a binary built into bin/ resolves data/ and plots/ beside it.
func DefaultRoot() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// Resolve builds a Layout rooted at root. Empty dataDir or plotsDir default
// to root/data and root/plots; relative overrides are taken relative to root.
// An empty root falls back to DefaultRoot.
func Resolve(root, dataDir, plotsDir string) (types.Layout, error) {
	if root == "" {
		r, err := DefaultRoot()
		if err != nil {
			return types.Layout{}, err
		}
		root = r
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return types.Layout{}, fmt.Errorf("resolving root %s: %w", root, err)
	}

	return types.Layout{
		RootDir:  root,
		DataDir:  under(root, dataDir, dataDirName),
		PlotsDir: under(root, plotsDir, plotsDirName),
	}, nil
}

func under(root, dir, fallback string) string {
	if dir == "" {
		return filepath.Join(root, fallback)
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}

// Ensure creates the data and plots directories if they are absent.
func Ensure(l types.Layout) error {
	for _, dir := range []string{l.DataDir, l.PlotsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// InData returns name joined to the data directory unless name is absolute.
func InData(l types.Layout, name string) string {
	return under(l.DataDir, name, name)
}

// InPlots returns name joined to the plots directory unless name is absolute.
func InPlots(l types.Layout, name string) string {
	return under(l.PlotsDir, name, name)
}
