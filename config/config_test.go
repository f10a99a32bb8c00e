package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spiffcs/ago/internal/clock"
	"github.com/spiffcs/ago/internal/reltime"
)

// isolate points the global config dir at a temp dir and runs in another
// temp dir so no real config files are read.
func isolate(t *testing.T) (globalDir, workDir string) {
	t.Helper()
	globalDir = t.TempDir()
	workDir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", globalDir)
	chdir(t, workDir)
	return globalDir, workDir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultFormat != "text" {
		t.Errorf("DefaultFormat = %q, want text", cfg.DefaultFormat)
	}
	if cfg.GetWorkers() != defaultWorkers {
		t.Errorf("GetWorkers() = %d, want %d", cfg.GetWorkers(), defaultWorkers)
	}
}

func TestLoadMergesLocalOverGlobal(t *testing.T) {
	globalDir, _ := isolate(t)

	global := "default_format: table\nseconds_style: singular\nworkers: 3\n"
	if err := SaveTo(filepath.Join(globalDir, "ago", "config.yaml"), global); err != nil {
		t.Fatal(err)
	}
	if err := SaveTo(LocalConfigPath(), "default_format: json\nfuture: clamp\n"); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want json (local wins)", cfg.DefaultFormat)
	}
	if cfg.SecondsStyle != "singular" {
		t.Errorf("SecondsStyle = %q, want singular (from global)", cfg.SecondsStyle)
	}
	if cfg.Future != "clamp" {
		t.Errorf("Future = %q, want clamp", cfg.Future)
	}
	if cfg.GetWorkers() != 3 {
		t.Errorf("GetWorkers() = %d, want 3", cfg.GetWorkers())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad format", "default_format: xml\n"},
		{"bad seconds style", "seconds_style: dual\n"},
		{"bad future", "future: later\n"},
		{"bad workers", "workers: 0\n"},
		{"bad yaml", "default_format: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if err := SaveTo(LocalConfigPath(), tt.content); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSet(t *testing.T) {
	cfg := &Config{DefaultFormat: "text"}

	if err := cfg.Set("format", "table"); err != nil {
		t.Fatalf("Set(format): %v", err)
	}
	if cfg.DefaultFormat != "table" {
		t.Errorf("DefaultFormat = %q, want table", cfg.DefaultFormat)
	}

	if err := cfg.Set("workers", "4"); err != nil {
		t.Fatalf("Set(workers): %v", err)
	}
	if cfg.GetWorkers() != 4 {
		t.Errorf("GetWorkers() = %d, want 4", cfg.GetWorkers())
	}

	for _, kv := range [][2]string{{"format", "xml"}, {"workers", "many"}, {"future", "soon"}, {"color", "red"}} {
		if err := cfg.Set(kv[0], kv[1]); err == nil {
			t.Errorf("Set(%s, %s): expected error", kv[0], kv[1])
		}
	}
	if cfg.DefaultFormat != "table" {
		t.Errorf("failed Set changed DefaultFormat to %q", cfg.DefaultFormat)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	if err := cfg.Set("seconds_style", "singular"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	paths := GetConfigPaths()
	if !paths.GlobalExists {
		t.Fatalf("expected global config at %s", paths.GlobalPath)
	}
	if paths.LocalExists {
		t.Errorf("unexpected local config at %s", paths.LocalPath)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SecondsStyle != "singular" {
		t.Errorf("SecondsStyle = %q, want singular", loaded.SecondsStyle)
	}
}

func TestFormatterOptions(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg := &Config{SecondsStyle: "singular", Future: "clamp"}

	opts := append(cfg.FormatterOptions(), reltime.WithClock(clock.Fixed(now)))
	f := reltime.New(opts...)

	if got := f.Format(now.Add(-time.Second)); got != "1 second ago" {
		t.Errorf("Format(-1s) = %q, want %q", got, "1 second ago")
	}
	if got := f.Format(now.Add(time.Minute)); got != "0 seconds ago" {
		t.Errorf("Format(+1m) = %q, want %q", got, "0 seconds ago")
	}
}

func TestMinimalConfigIsValid(t *testing.T) {
	isolate(t)
	if err := SaveTo(LocalConfigPath(), MinimalConfig()); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultFormat != "text" {
		t.Errorf("DefaultFormat = %q, want text", cfg.DefaultFormat)
	}
}

func TestDefaultConfigYAML(t *testing.T) {
	out, err := DefaultConfig().ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"default_format: text", "seconds_style: plural", "future: pass", "workers: 8"} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %q in:\n%s", key, out)
		}
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+), which the local toolchain lacks.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
