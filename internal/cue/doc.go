// Package cue renders cue sheets from release tracklists.
//
// A cue sheet is a plain-text index describing how a single audio
// file divides into tracks, consumed by splitting tools. The writer
// emits the release-level PERFORMER/TITLE/FILE header followed by one
// TRACK block per track:
//
//	writer := cue.NewSheetWriter()
//	content := writer.RenderDisc(release, release.Discs[0], "album.wav")
//
//	// PERFORMER "Artist X"
//	// TITLE "Test Album"
//	// FILE "album.wav" WAVE
//	//
//	// TRACK 01 AUDIO
//	//     TITLE "Intro"
//	//     PERFORMER "Artist X"
//	//     INDEX 01 00:00:00
//
// INDEX offsets are cumulative sums of the preceding track durations,
// formatted as minutes:seconds:frames. Rendering has no side effects;
// writing the result to disk is the caller's job.
package cue
