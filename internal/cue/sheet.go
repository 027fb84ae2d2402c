package cue

import (
	"fmt"
	"strings"

	"mbzcue/internal/model"
)

// FramesPerSecond is the cue sheet sub-second unit: 75 frames per
// second in the Red Book standard. MusicBrainz lengths carry whole
// seconds only, so emitted frame fields are always zero.
const FramesPerSecond = 75

// SheetWriter renders cue sheets for release discs.
//
// SheetWriter takes one disc of a release and generates a cue sheet
// indexing the disc's tracks into a single audio file. The output is
// a string ready to be written to a file; rendering is a pure function
// of its inputs.
//
// Example:
//
//	writer := NewSheetWriter()
//	content := writer.RenderDisc(release, release.Discs[0], "album.wav")
//	os.WriteFile(release.CuePath(release.Discs[0]), []byte(content), 0644)
//
//	// Result:
//	// PERFORMER "Artist X"
//	// TITLE "Test Album"
//	// FILE "album.wav" WAVE
//	//
//	// TRACK 01 AUDIO
//	//     TITLE "Intro"
//	//     PERFORMER "Artist X"
//	//     INDEX 01 00:00:00
type SheetWriter struct{}

// NewSheetWriter creates a new SheetWriter.
func NewSheetWriter() *SheetWriter {
	return &SheetWriter{}
}

// RenderDisc generates cue sheet content for one disc of a release.
//
// The header carries the release-level PERFORMER and TITLE directives
// and the FILE directive naming the audio file. For a multi-disc
// release the TITLE is suffixed with the disc number, so the sheets
// stay distinguishable after splitting.
//
// Each track block carries a TRACK directive with the zero-padded
// track number, the track TITLE and PERFORMER, and an INDEX 01 offset.
// Offsets are cumulative: track i starts at the sum of the durations
// of tracks 1..i-1, with track 1 at 00:00:00.
func (w *SheetWriter) RenderDisc(release *model.Release, disc *model.Disc, audioFile string) string {
	var sb strings.Builder

	title := release.Title
	if len(release.Discs) > 1 {
		title = fmt.Sprintf("%s (Disc %d)", title, disc.Number)
	}

	sb.WriteString(fmt.Sprintf("PERFORMER %s\n", quote(release.Artist)))
	sb.WriteString(fmt.Sprintf("TITLE %s\n", quote(title)))
	sb.WriteString(fmt.Sprintf("FILE %s WAVE\n", quote(audioFile)))

	elapsed := 0
	for _, track := range disc.Tracks {
		sb.WriteString(fmt.Sprintf("\nTRACK %02d AUDIO\n", track.Number))
		sb.WriteString(fmt.Sprintf("    TITLE %s\n", quote(track.Title)))
		sb.WriteString(fmt.Sprintf("    PERFORMER %s\n", quote(track.Performer)))
		sb.WriteString(fmt.Sprintf("    INDEX 01 %s\n", formatOffset(elapsed)))
		elapsed += track.Duration
	}

	return sb.String()
}

// formatOffset formats a second count as a cue "MM:SS:FF" position.
//
// Minutes are not wrapped at 60: a track an hour in starts at
// "60:00:00". The frame field is always "00", since source precision
// is whole seconds.
func formatOffset(seconds int) string {
	return fmt.Sprintf("%02d:%02d:00", seconds/60, seconds%60)
}

// quote wraps a string in double quotes for a cue directive,
// escaping any embedded double quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
