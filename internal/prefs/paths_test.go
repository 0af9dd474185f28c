package prefs

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if filepath.Base(dir) != "slant" {
		t.Errorf("expected dir to end with 'slant', got %q", filepath.Base(dir))
	}
}

func TestConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if dir != filepath.Join(tmp, "slant") {
		t.Errorf("expected %q, got %q", filepath.Join(tmp, "slant"), dir)
	}
}

func TestMonitorConfigPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	path, err := MonitorConfigPath(Default())
	if err != nil {
		t.Fatalf("MonitorConfigPath() error: %v", err)
	}
	if filepath.Base(path) != "slant.conf" {
		t.Errorf("expected default slant.conf path, got %q", path)
	}

	p := Default()
	p.ConfigPath = "/tmp/other.conf"
	path, err = MonitorConfigPath(p)
	if err != nil {
		t.Fatalf("MonitorConfigPath() error: %v", err)
	}
	if path != "/tmp/other.conf" {
		t.Errorf("expected the override to win, got %q", path)
	}
}
