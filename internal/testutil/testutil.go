// Package testutil provides shared test helpers and fixtures for the point
// expansion packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/pointexpand/internal/expand"
	"gonum.org/v1/gonum/spatial/r3"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// WriteTempFile writes content to name inside a per-test temp directory
// and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// BlueRedConfig returns a two-category config: BLUE for label numbers
// 1-10 and RED for 11-20, falling back to RED. Each catalog has two
// entries; RED mirrors BLUE in Y.
func BlueRedConfig(t *testing.T) *expand.Config {
	t.Helper()
	cfg, err := expand.NewConfig([]expand.Category{
		{
			ID:     "BLUE",
			Ranges: []expand.Range{{Lo: 1, Hi: 10}},
			Displacements: []expand.Displacement{
				{Suffix: "_1", Offset: r3.Vec{X: 1, Y: 1}},
				{Suffix: "_2", Offset: r3.Vec{X: -1, Y: 1}},
			},
		},
		{
			ID:     "RED",
			Ranges: []expand.Range{{Lo: 11, Hi: 20}},
			Displacements: []expand.Displacement{
				{Suffix: "_1", Offset: r3.Vec{X: 1, Y: -1}},
				{Suffix: "_2", Offset: r3.Vec{X: -1, Y: -1}},
			},
		},
	}, "RED")
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	return cfg
}
