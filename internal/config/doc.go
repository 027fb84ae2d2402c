// Package config provides configuration management for mbzcue.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to PathConfig for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Writes cue sheets to the current directory
//	// "Various Artists" as the fallback performer
//	// Cover art download disabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputDirectory = "/rips"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Output directory and file naming
//   - Default performer and HTTP behavior
//   - Cover art handling
//   - Verbosity (debug level 0-3)
package config
