package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mbzcue/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputDirectory   string `json:"output_directory"`
	CueFileNameFormat string `json:"cue_file_name_format"`
	WaveFileName      string `json:"wave_file_name"`

	// Extraction settings
	DefaultPerformer      string  `json:"default_performer"`
	UserAgent             string  `json:"user_agent"`
	HTTPTimeoutSeconds    float64 `json:"http_timeout_seconds"`
	MaxConcurrentReleases int     `json:"max_concurrent_releases"`

	// Cover art settings
	SaveCoverArt           bool   `json:"save_cover_art"`
	CoverArtFileNameFormat string `json:"cover_art_file_name_format"`
	CoverArtResize         bool   `json:"cover_art_resize"`
	CoverArtMaxSize        int    `json:"cover_art_max_size"`
	ConvertCoverArtToJPG   bool   `json:"convert_cover_art_to_jpg"`

	// Verbosity: 0 errors only, 1 adds results, 2 adds info, 3 adds debug.
	DebugLevel int `json:"debug_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDirectory:   ".",
		CueFileNameFormat: "{album}",
		WaveFileName:      "{album}.wav",

		DefaultPerformer:      "Various Artists",
		UserAgent:             "Mozilla/5.0",
		HTTPTimeoutSeconds:    60,
		MaxConcurrentReleases: 1,

		SaveCoverArt:           false,
		CoverArtFileNameFormat: "{album}",
		CoverArtResize:         true,
		CoverArtMaxSize:        1000,
		ConvertCoverArtToJPG:   true,

		DebugLevel: 1,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		OutputDirectory:        s.OutputDirectory,
		CueFileNameFormat:      s.CueFileNameFormat,
		CoverArtFileNameFormat: s.CoverArtFileNameFormat,
	}
}
