package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"edascope/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.OutDir != "reports" || c.Sep != "," || c.Encoding != "utf-8" {
		t.Fatalf("defaults: %+v", c)
	}
	if c.MaxHistColumns != 6 || c.TopKCategories != 5 {
		t.Fatalf("defaults: %+v", c)
	}
	if c.Title != "EDA-отчёт" || c.MinMissingShare != 0.3 || c.HighCardinalityShare != 0.9 {
		t.Fatalf("defaults: %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &config.Global{
		OutDir:               "out",
		Sep:                  ";",
		Encoding:             "windows-1251",
		MaxHistColumns:       3,
		TopKCategories:       10,
		Title:                "Отчёт",
		MinMissingShare:      0.5,
		HighCardinalityShare: 0.8,
	}
	if err := config.Save(want, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *want {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	os.Setenv("EDASCOPE_TOP_K_CATEGORIES", "9")
	defer os.Unsetenv("EDASCOPE_TOP_K_CATEGORIES")
	c, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.TopKCategories != 9 {
		t.Fatalf("env override ignored: %+v", c)
	}
}
