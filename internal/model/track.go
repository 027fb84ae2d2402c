package model

import "fmt"

// Track represents a single track within a disc.
//
// Track carries exactly the fields a cue sheet needs:
//   - Number for the TRACK directive (1-indexed within the disc)
//   - Title and Performer for the per-track directives
//   - Duration in whole seconds, used to compute the next track's
//     INDEX offset
//
// Example:
//
//	track := &model.Track{Number: 1, Title: "Intro", Performer: "Artist X", Duration: 30}
//	fmt.Println(track.Length()) // "0:30"
type Track struct {
	// Number is the track number (1-indexed within its disc).
	Number int

	// Title is the track title.
	Title string

	// Performer is the track artist. Falls back to the release artist
	// during extraction when the source row names none.
	Performer string

	// Duration is the track length in whole seconds. MusicBrainz
	// publishes lengths with second precision only.
	Duration int
}

// Length formats the duration as "M:SS", the form MusicBrainz
// displays it in.
func (t *Track) Length() string {
	return fmt.Sprintf("%d:%02d", t.Duration/60, t.Duration%60)
}
