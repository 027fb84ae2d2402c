// Package http provides an HTTP client configured for MusicBrainz and
// the Cover Art Archive.
//
// The client sets a browser-like User-Agent on every request (the
// MusicBrainz site serves an error page to clients without one) and
// applies a request timeout.
//
// Example usage:
//
//	client := http.NewClient("Mozilla/5.0", 60*time.Second)
//
//	// Fetch a release page
//	html, err := client.GetString(ctx, releaseURL)
//
//	// Fetch cover art into memory
//	art, err := client.DownloadBytes(ctx, coverURL)
package http
