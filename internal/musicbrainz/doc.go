// Package musicbrainz provides functionality to parse MusicBrainz
// release pages and extract tracklist information.
//
// # Release Page Parsing
//
// Use the Parser to extract a release from a MusicBrainz release page:
//
//	parser := musicbrainz.NewParser(pathConfig, "Various Artists")
//	release, err := parser.ParseReleasePage(url, htmlContent)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Release: %s by %s\n", release.Title, release.Artist)
//
// # MusicBrainz Page Format
//
// MusicBrainz renders release pages server-side: the release title
// sits in a <bdi> element inside the page <h1>, the artist in the
// subheader line below it, and the tracklist as one
// <table class="tbl medium"> per disc with odd/even rows of
// position / title / artist / rating / length cells. This package
// walks that markup with string and regexp tools; there is no
// embedded JSON document to deserialize.
//
// Failure taxonomy: ErrMissingTitle, ErrEmptyTracklist and
// ErrMalformedDuration are sentinel values suitable for errors.Is.
package musicbrainz
