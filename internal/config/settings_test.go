package config

import (
	"path/filepath"
	"testing"
)

func TestSettings_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	settings := DefaultSettings()
	settings.OutputDirectory = "/rips"
	settings.DefaultPerformer = "Unknown Artist"
	settings.SaveCoverArt = true

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.OutputDirectory != "/rips" {
		t.Errorf("OutputDirectory = %q, want %q", loaded.OutputDirectory, "/rips")
	}
	if loaded.DefaultPerformer != "Unknown Artist" {
		t.Errorf("DefaultPerformer = %q, want %q", loaded.DefaultPerformer, "Unknown Artist")
	}
	if !loaded.SaveCoverArt {
		t.Error("SaveCoverArt should survive the round trip")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := DefaultSettings()
	if settings.DefaultPerformer != defaults.DefaultPerformer {
		t.Errorf("DefaultPerformer = %q, want default %q", settings.DefaultPerformer, defaults.DefaultPerformer)
	}
}
