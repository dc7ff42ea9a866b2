package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Default should be "dev"
	v := GetVersion()
	if v != "dev" {
		t.Errorf("expected default version dev, got %s", v)
	}
}

func TestGetBuild(t *testing.T) {
	b := GetBuild()
	if b != "unknown" {
		t.Errorf("expected default build unknown, got %s", b)
	}
}

func TestGetFullVersion(t *testing.T) {
	fv := GetFullVersion()
	expected := "dev (build: unknown, commit: unknown)"
	if fv != expected {
		t.Errorf("expected %q, got %q", expected, fv)
	}
}

func TestLoadVersionFile(t *testing.T) {
	origVersion, origBuild, origCommit := Version, Build, GitCommit
	t.Cleanup(func() {
		Version, Build, GitCommit = origVersion, origBuild, origCommit
	})

	path := filepath.Join(t.TempDir(), ".version")
	content := "# generated\nversion: 1.4.0\nbuild: 2026-10-01T10:00:00Z\ncommit: abc1234\nnot a pair\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadVersionFile(path); err != nil {
		t.Fatalf("LoadVersionFile failed: %v", err)
	}
	if Version != "1.4.0" {
		t.Errorf("expected version 1.4.0, got %s", Version)
	}
	if Build != "2026-10-01T10:00:00Z" {
		t.Errorf("expected build timestamp, got %s", Build)
	}
	if GitCommit != "abc1234" {
		t.Errorf("expected commit abc1234, got %s", GitCommit)
	}
}

func TestLoadVersionFile_KeepsLdflagValues(t *testing.T) {
	origVersion := Version
	t.Cleanup(func() { Version = origVersion })
	Version = "2.0.0"

	path := filepath.Join(t.TempDir(), ".version")
	if err := os.WriteFile(path, []byte("version: 1.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := LoadVersionFile(path); err != nil {
		t.Fatalf("LoadVersionFile failed: %v", err)
	}
	if Version != "2.0.0" {
		t.Errorf("ldflags version should win, got %s", Version)
	}
}

func TestLoadVersionFile_Missing(t *testing.T) {
	if err := LoadVersionFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing version file")
	}
}
