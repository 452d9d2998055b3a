package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BaukeWestendorp/keisteen/config"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := config.Default()
	if cfg != want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadParsesPartialFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	contents := "[server]\nbind_port = 25566\nmotd = \"Custom MOTD\"\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.BindPort != 25566 {
		t.Errorf("BindPort = %d, want 25566", cfg.Server.BindPort)
	}
	if cfg.Server.MOTD != "Custom MOTD" {
		t.Errorf("MOTD = %q, want %q", cfg.Server.MOTD, "Custom MOTD")
	}
	if cfg.Server.MaxPlayers != 20 {
		t.Errorf("MaxPlayers = %d, want default 20", cfg.Server.MaxPlayers)
	}
}

func TestLoadFailsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("not = [valid toml"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := config.Load(dir); err == nil {
		t.Errorf("Load() with malformed TOML succeeded, want error")
	}
}
