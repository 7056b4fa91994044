package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
profiles:
  - name: taro
    label: 山田太郎
    birth:
      year: 1999
      month: 4
      day: 2
      hour: 8
      minute: 34
      latitude: 36.243548
      longitude: 139.19
      timezone: 9
  - name: hanako
    birth: {year: 2000, month: 1, day: 1, hour: 0, minute: 0, latitude: 35, longitude: 135, timezone: 9}
output:
  dir: out
db:
  host: localhost
  user: salon
  name: salon
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Profiles) != 2 {
		t.Fatalf("len(Profiles) = %d, want 2", len(cfg.Profiles))
	}
	taro := cfg.Profiles[0]
	if taro.Label != "山田太郎" || taro.Birth.Minute != 34 || taro.Birth.TimezoneOffset != 9 {
		t.Errorf("Profiles[0] = %+v", taro)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Concurrency.Workers != 4 || cfg.Log.Level != "info" {
		t.Errorf("defaults not applied: %+v %+v", cfg.Concurrency, cfg.Log)
	}
	want := "host=localhost port=5432 user=salon password= dbname=salon sslmode=disable"
	if got := cfg.DB.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no profiles", "output: {dir: x}"},
		{"missing name", "profiles: [{birth: {year: 2000, month: 1, day: 1}}]"},
		{"duplicate", "profiles: [{name: a}, {name: a}]"},
		{"bad yaml", "profiles: [:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() error = nil for missing file")
	}
}
