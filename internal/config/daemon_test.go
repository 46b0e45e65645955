package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDaemon_ResolvesRelativePathsAndSchema(t *testing.T) {
	dir := t.TempDir()
	cfg := []byte(`schema_version: v1
profile: profiles/default.yml
input: input.yml
pad_name: Test Pad
`)
	if err := os.WriteFile(filepath.Join(dir, "sccd.yml"), cfg, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	d, err := LoadDaemon(filepath.Join(dir, "sccd.yml"))
	if err != nil {
		t.Fatalf("LoadDaemon: %v", err)
	}
	if d.Profile != filepath.Join(dir, "profiles", "default.yml") {
		t.Fatalf("profile path not resolved, got %q", d.Profile)
	}
	if d.Input != filepath.Join(dir, "input.yml") {
		t.Fatalf("input path not resolved, got %q", d.Input)
	}
	if d.PadName != "Test Pad" {
		t.Fatalf("pad_name = %q", d.PadName)
	}
}

func TestLoadDaemon_Defaults(t *testing.T) {
	d, err := LoadDaemon(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadDaemon: %v", err)
	}
	if d.GRPCPort != 7433 {
		t.Fatalf("grpc_port default = %d", d.GRPCPort)
	}
	if d.MetricsPort != 9100 {
		t.Fatalf("metrics_port default = %d", d.MetricsPort)
	}
	if d.Sink != "uinput" {
		t.Fatalf("sink default = %q", d.Sink)
	}
}

func TestLoadDaemon_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sccd.yml"), []byte("schema_version: v999\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadDaemon(filepath.Join(dir, "sccd.yml")); err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}
