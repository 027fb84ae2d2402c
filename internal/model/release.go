package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Release represents a MusicBrainz release with its tracklist and
// computed output paths.
//
// Release contains everything the cue sheet renderer needs:
//   - Title and Artist for the release-level TITLE/PERFORMER directives
//   - Discs, each holding the ordered tracklist for one audio file
//   - MBID and CoverURL for fetching cover art
//
// Output paths are computed when creating a release via NewRelease,
// using placeholders like {artist} and {album}.
//
// Example:
//
//	cfg := &PathConfig{
//	    OutputDirectory:   ".",
//	    CueFileNameFormat: "{album}",
//	}
//	release := NewRelease("Abbey Road", "The Beatles", mbid, coverURL, cfg)
//	// release.CuePath(disc) = "Abbey Road.cue"
type Release struct {
	// Title is the release title.
	Title string

	// Artist is the release-level artist, used as the default
	// performer for tracks that do not name their own.
	Artist string

	// MBID is the MusicBrainz release identifier, taken from the URL.
	// Empty when the source URL carried none.
	MBID string

	// CoverURL is the URL to download the front cover art from.
	// Empty string means no cover art is available.
	CoverURL string

	// Discs contains the tracklists, one per audio file, in order.
	Discs []*Disc

	// CueBase is the computed output path for cue sheets, without the
	// extension or disc suffix. Set by NewRelease from PathConfig.
	CueBase string

	// CoverArtPath is the computed local file path for the cover art.
	// Empty if the release has no cover art.
	CoverArtPath string
}

// Disc is one physical disc of a release: an ordered tracklist meant
// to be indexed into a single audio file. The track order is
// load-bearing, since cue offsets are cumulative sums of the
// preceding durations.
type Disc struct {
	// Number is the disc number (1-indexed).
	Number int

	// Tracks contains all tracks on this disc, in playing order.
	Tracks []*Track
}

// NewRelease creates a new Release with computed output paths.
//
// The pathConfig determines how file paths are constructed using
// placeholders:
//   - {artist} - Release artist
//   - {album} - Release title
//
// Invalid filename characters are replaced with underscores. Paths are
// truncated if they exceed Windows path length limits (260 for files).
func NewRelease(title, artist, mbid, coverURL string, cfg *PathConfig) *Release {
	r := &Release{
		Title:    title,
		Artist:   artist,
		MBID:     mbid,
		CoverURL: coverURL,
	}

	r.CueBase = r.parseCueBase(cfg)
	r.CoverArtPath = r.parseCoverArtPath(cfg)

	return r
}

// HasCoverArt returns true if the release has cover art available for
// download.
func (r *Release) HasCoverArt() bool {
	return r.CoverURL != ""
}

// TrackCount returns the total number of tracks across all discs.
func (r *Release) TrackCount() int {
	n := 0
	for _, disc := range r.Discs {
		n += len(disc.Tracks)
	}
	return n
}

// CuePath returns the cue sheet path for the given disc.
//
// A single-disc release writes to "<base>.cue"; a multi-disc release
// writes one file per disc, "<base>_disc1.cue", "<base>_disc2.cue", etc.
func (r *Release) CuePath(disc *Disc) string {
	if len(r.Discs) > 1 {
		return fmt.Sprintf("%s_disc%d.cue", r.CueBase, disc.Number)
	}
	return r.CueBase + ".cue"
}

// PathConfig holds path formatting settings for cue sheets and cover art.
//
// All filename fields support placeholders that are replaced with
// actual values:
//   - {artist} - Release artist
//   - {album} - Release title
//
// Example configuration:
//
//	cfg := &PathConfig{
//	    OutputDirectory:        "/home/user/rips",
//	    CueFileNameFormat:      "{album}",
//	    CoverArtFileNameFormat: "{album}",
//	}
type PathConfig struct {
	// OutputDirectory is the directory cue sheets are written to.
	OutputDirectory string

	// CueFileNameFormat is the filename template for cue sheets
	// (without extension). Example: "{album}" or "{artist} - {album}"
	CueFileNameFormat string

	// CoverArtFileNameFormat is the filename template for cover art
	// (without extension).
	CoverArtFileNameFormat string
}

// parseCueBase computes the extensionless cue sheet path.
func (r *Release) parseCueBase(cfg *PathConfig) string {
	fileName := cfg.CueFileNameFormat
	fileName = strings.ReplaceAll(fileName, "{artist}", r.Artist)
	fileName = strings.ReplaceAll(fileName, "{album}", r.Title)
	path := filepath.Join(cfg.OutputDirectory, sanitizeFileName(fileName))

	// Leave room for a "_discN.cue" suffix under the Windows MAX_PATH limit
	if len(path) >= 248 {
		path = path[:247]
	}

	return path
}

// parseCoverArtPath computes the full cover art file path.
func (r *Release) parseCoverArtPath(cfg *PathConfig) string {
	if !r.HasCoverArt() {
		return ""
	}

	fileName := cfg.CoverArtFileNameFormat
	fileName = strings.ReplaceAll(fileName, "{artist}", r.Artist)
	fileName = strings.ReplaceAll(fileName, "{album}", r.Title)
	artPath := filepath.Join(cfg.OutputDirectory, sanitizeFileName(fileName)+".jpg")

	if len(artPath) >= 260 {
		artPath = artPath[:255] + ".jpg"
	}

	return artPath
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Live: 1999/2000") // Returns "Live_ 1999_2000"
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
