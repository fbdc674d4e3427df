package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, `
spin:
  seed: 42
sound:
  enabled: false
metrics:
  listen: "127.0.0.1:9100"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Spin.Seed != 42 || cfg.Sound.Enabled || cfg.Metrics.Listen != "127.0.0.1:9100" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Sound.Volume != Default().Sound.Volume || cfg.Options.File != "options.txt" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"negative burst", "particles:\n  win_burst: -1\n", "win_burst"},
		{"loud volume", "sound:\n  volume: 2\n", "sound.volume"},
		{"bad level", "log:\n  level: chatty\n", "log.level"},
		{"zero history", "history:\n  capacity: 0\n", "history.capacity"},
		{"empty options file", "options:\n  file: \"\"\n", "options.file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeFile(t, "spin: [unclosed")); err == nil {
		t.Fatalf("malformed yaml should fail")
	}
}
