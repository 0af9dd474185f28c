package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.Waittime != 60 {
		t.Errorf("expected default waittime 60, got %d", cfg.Waittime)
	}
	if len(cfg.Hosts) != 0 || cfg.Layout != nil {
		t.Errorf("expected no hosts and no layout, got %+v", cfg)
	}
}

func TestFromHosts(t *testing.T) {
	cfg := FromHosts([]string{"a", "b"})
	if len(cfg.Hosts) != 2 {
		t.Fatalf("expected 2 hosts, got %d", len(cfg.Hosts))
	}
	if cfg.Hosts[0].URL != "a" || cfg.Hosts[1].URL != "b" {
		t.Errorf("host order not preserved: %+v", cfg.Hosts)
	}
	for i, h := range cfg.Hosts {
		if h.Waittime != 0 {
			t.Errorf("host %d waittime = %d, want 0", i, h.Waittime)
		}
	}
	if cfg.Layout != nil {
		t.Error("FromHosts must not set a layout")
	}

	empty := FromHosts(nil)
	if len(empty.Hosts) != 0 || empty.Waittime != DefaultWaittime {
		t.Errorf("FromHosts(nil) must yield an all-defaults config, got %+v", empty)
	}
}

func TestPollInterval(t *testing.T) {
	h := HostEntry{URL: "a"}
	if got := h.PollInterval(60); got != 60*time.Second {
		t.Errorf("inherited interval = %v, want 60s", got)
	}
	h.Waittime = 15
	if got := h.PollInterval(60); got != 15*time.Second {
		t.Errorf("override interval = %v, want 15s", got)
	}
}

func TestDefaultLayout(t *testing.T) {
	lay := DefaultLayout()
	if !lay.Header {
		t.Error("default layout should draw a header")
	}
	if len(lay.Boxes) == 0 {
		t.Fatal("default layout has no boxes")
	}
	if lay.Boxes[0].Cat != CatHost || !lay.Boxes[0].Has(ArgAccess) {
		t.Errorf("default layout should lead with the host identity box, got %+v", lay.Boxes[0])
	}
}

func TestParseFileMissingWithFallback(t *testing.T) {
	cfg, err := ParseFile(filepath.Join(t.TempDir(), "no-such-file"), []string{"x", "y"})
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(cfg.Hosts) != 2 || cfg.Hosts[0].URL != "x" {
		t.Errorf("expected fallback hosts, got %+v", cfg.Hosts)
	}
}

func TestParseFileMissingNoFallback(t *testing.T) {
	cfg, err := ParseFile(filepath.Join(t.TempDir(), "no-such-file"), nil)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(cfg.Hosts) != 0 || cfg.Waittime != DefaultWaittime {
		t.Errorf("expected an all-defaults config, got %+v", cfg)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slant.conf")
	data := "waittime 45 ;\nservers one two ;\nlayout { header } ;\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if cfg.Waittime != 45 || len(cfg.Hosts) != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Layout == nil || !cfg.Layout.Header {
		t.Errorf("expected a header-only layout, got %+v", cfg.Layout)
	}
}

func TestParseFileFallbackOverridesHosts(t *testing.T) {
	// Explicit host arguments replace the file's servers statements but
	// the file's layout is still honored.
	path := filepath.Join(t.TempDir(), "slant.conf")
	data := "servers one two ;\nlayout { errlog 1 ; } ;\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFile(path, []string{"three"})
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(cfg.Hosts) != 1 || cfg.Hosts[0].URL != "three" {
		t.Errorf("expected only the fallback host, got %+v", cfg.Hosts)
	}
	if cfg.Layout == nil || cfg.Layout.Errlog != 1 {
		t.Errorf("layout from the file must survive, got %+v", cfg.Layout)
	}
}

func TestParseFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slant.conf")
	if err := os.WriteFile(path, []byte("servers ;"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(path, nil); err == nil {
		t.Error("expected a parse error for an empty servers statement")
	}
}

func TestParseFileUnreadable(t *testing.T) {
	// A path that exists but cannot be read as a file is an I/O error,
	// not a fallback case.
	if _, err := ParseFile(t.TempDir(), nil); err == nil {
		t.Error("expected an error reading a directory")
	}
}
