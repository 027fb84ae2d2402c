package model

import (
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-album", "normal-album"},
		{"album:with:colons", "album_with_colons"},
		{"album<with>brackets", "album_with_brackets"},
		{"album/with\\slashes", "album_with_slashes"},
		{"album|with|pipes", "album_with_pipes"},
		{"album?with*wildcards", "album_with_wildcards"},
		{"album\"with\"quotes", "album_with_quotes"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRelease_CuePath(t *testing.T) {
	cfg := &PathConfig{
		OutputDirectory:        "/rips",
		CueFileNameFormat:      "{album}",
		CoverArtFileNameFormat: "{album}",
	}

	release := NewRelease("Test Album", "Test Artist", "", "", cfg)
	disc1 := &Disc{Number: 1}
	release.Discs = append(release.Discs, disc1)

	if got := release.CuePath(disc1); got != "/rips/Test Album.cue" {
		t.Errorf("single disc CuePath = %q, want %q", got, "/rips/Test Album.cue")
	}

	// Adding a second disc switches to per-disc naming
	disc2 := &Disc{Number: 2}
	release.Discs = append(release.Discs, disc2)

	if got := release.CuePath(disc1); got != "/rips/Test Album_disc1.cue" {
		t.Errorf("multi disc CuePath(1) = %q, want %q", got, "/rips/Test Album_disc1.cue")
	}
	if got := release.CuePath(disc2); got != "/rips/Test Album_disc2.cue" {
		t.Errorf("multi disc CuePath(2) = %q, want %q", got, "/rips/Test Album_disc2.cue")
	}
}

func TestRelease_CuePathSanitized(t *testing.T) {
	cfg := &PathConfig{
		OutputDirectory:   ".",
		CueFileNameFormat: "{album}",
	}

	release := NewRelease("AC/DC Live", "AC/DC", "", "", cfg)
	release.Discs = append(release.Discs, &Disc{Number: 1})

	if got := release.CuePath(release.Discs[0]); got != "AC_DC Live.cue" {
		t.Errorf("CuePath = %q, want %q", got, "AC_DC Live.cue")
	}
}

func TestRelease_CoverArtPath(t *testing.T) {
	cfg := &PathConfig{
		OutputDirectory:        "/rips",
		CueFileNameFormat:      "{album}",
		CoverArtFileNameFormat: "{album}",
	}

	withArt := NewRelease("Test Album", "Artist", "mbid", "https://example.com/front", cfg)
	if withArt.CoverArtPath != "/rips/Test Album.jpg" {
		t.Errorf("CoverArtPath = %q, want %q", withArt.CoverArtPath, "/rips/Test Album.jpg")
	}

	withoutArt := NewRelease("Test Album", "Artist", "", "", cfg)
	if withoutArt.HasCoverArt() {
		t.Error("HasCoverArt() should return false when CoverURL is empty")
	}
	if withoutArt.CoverArtPath != "" {
		t.Errorf("CoverArtPath should be empty, got %q", withoutArt.CoverArtPath)
	}
}

func TestRelease_TrackCount(t *testing.T) {
	release := &Release{
		Discs: []*Disc{
			{Number: 1, Tracks: []*Track{{Number: 1}, {Number: 2}}},
			{Number: 2, Tracks: []*Track{{Number: 1}}},
		},
	}

	if got := release.TrackCount(); got != 3 {
		t.Errorf("TrackCount() = %d, want 3", got)
	}
}

func TestTrack_Length(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{30, "0:30"},
		{225, "3:45"},
		{3600, "60:00"},
		{0, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			track := &Track{Duration: tt.seconds}
			if got := track.Length(); got != tt.want {
				t.Errorf("Length() = %q, want %q", got, tt.want)
			}
		})
	}
}
