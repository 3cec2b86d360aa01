package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

const geometryFixture = `<?xml version="1.0"?>
<geometry>
  <cell id="1" universe="1"><material>void</material><region>-1</region></cell>
</geometry>`

func TestLoadCommandRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geometry.xml")
	if err := os.WriteFile(path, []byte(geometryFixture), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if err := loadCmd.RunE(loadCmd, []string{path}); err != nil {
		t.Fatalf("load command returned error: %v", err)
	}
}

func TestLoadCommandMissingFile(t *testing.T) {
	if err := loadCmd.RunE(loadCmd, []string{filepath.Join(t.TempDir(), "missing.xml")}); err == nil {
		t.Fatal("expected an error for a missing geometry file")
	}
}
