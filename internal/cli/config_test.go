package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// withConfigHome points XDG_CONFIG_HOME at a temp directory for the
// duration of the test and returns the asejson config directory.
func withConfigHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	oldXdg := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", home)
	t.Cleanup(func() {
		if oldXdg != "" {
			os.Setenv("XDG_CONFIG_HOME", oldXdg)
		} else {
			os.Unsetenv("XDG_CONFIG_HOME")
		}
	})

	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadConfigMissingFile(t *testing.T) {
	withConfigHome(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":8080")
	}
	if cfg.Serve.Dir != "" {
		t.Errorf("Serve.Dir = %q, want empty", cfg.Serve.Dir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := withConfigHome(t)
	content := "[serve]\naddr = \":9000\"\ndir = \"/srv/sheets\"\nno_cache = true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Serve.Addr != ":9000" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":9000")
	}
	if cfg.Serve.Dir != "/srv/sheets" {
		t.Errorf("Serve.Dir = %q, want %q", cfg.Serve.Dir, "/srv/sheets")
	}
	if !cfg.Serve.NoCache {
		t.Error("Serve.NoCache = false, want true")
	}
}

func TestLoadConfigPartial(t *testing.T) {
	dir := withConfigHome(t)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[serve]\ndir = \"assets\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want default %q", cfg.Serve.Addr, ":8080")
	}
	if cfg.Serve.Dir != "assets" {
		t.Errorf("Serve.Dir = %q, want %q", cfg.Serve.Dir, "assets")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := withConfigHome(t)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[serve\naddr"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() error = nil, want parse error")
	}
}
