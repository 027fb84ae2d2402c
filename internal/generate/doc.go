// Package generate orchestrates the cue sheet pipeline:
// fetch release pages, parse them, render cue sheets, write files.
//
// The Manager is driven the same way by both front ends:
//
//	manager := generate.NewManager(settings, func(event generate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, urls); err != nil {
//	    // nothing parseable
//	}
//	if err := manager.Generate(ctx); err != nil {
//	    // a cue sheet could not be written
//	}
//
// Initialize fetches and parses every input URL; Generate renders one
// cue sheet per disc and optionally saves cover art. Progress events
// carry a level so front ends can filter by verbosity.
//
// Extraction is consumed through the ReleaseSource interface, so the
// MusicBrainz scraper can be swapped for another source without
// touching rendering.
package generate
