// Package model defines the core data structures used throughout mbzcue.
//
// # Release
//
// Release represents a MusicBrainz release with metadata and computed
// output paths:
//
//	release := model.NewRelease("Title", "Artist", mbid, coverURL, pathConfig)
//	fmt.Println(release.CuePath(disc)) // Where the cue sheet is written
//	fmt.Println(release.CoverArtPath)  // Where cover art is saved
//
// # Disc and Track
//
// A release holds one Disc per physical disc; each disc is an ordered
// tracklist destined for a single audio file:
//
//	disc := &model.Disc{Number: 1}
//	disc.Tracks = append(disc.Tracks, &model.Track{Number: 1, Title: "Intro", Duration: 30})
//
// Track order is load-bearing: cue sheet INDEX offsets are cumulative
// sums of the preceding track durations.
//
// # Path Configuration
//
// PathConfig controls how output paths are computed using placeholders:
//
//	cfg := &model.PathConfig{
//	    OutputDirectory:        ".",
//	    CueFileNameFormat:      "{album}",
//	    CoverArtFileNameFormat: "{album}",
//	}
//
// Available placeholders: {artist}, {album}
package model
