package musicbrainz

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"mbzcue/internal/model"
)

// ErrMissingTitle is returned when no release title can be found on a page.
//
// This typically occurs when:
//   - The URL is not a MusicBrainz release page
//   - The HTML structure has changed unexpectedly
var ErrMissingTitle = errors.New("release title not found on page")

// ErrEmptyTracklist is returned when a release page contains no
// usable tracklist rows.
var ErrEmptyTracklist = errors.New("no tracklist found on page")

// ErrMalformedDuration is returned when a track length does not match
// the "minutes:seconds" form MusicBrainz displays.
var ErrMalformedDuration = errors.New("malformed track duration")

var (
	titleRe    = regexp.MustCompile(`(?s)<h1[^>]*>.*?<bdi[^>]*>(.*?)</bdi>`)
	artistRe   = regexp.MustCompile(`(?s)<p class="subheader">.*?<bdi[^>]*>(.*?)</bdi>`)
	tableRe    = regexp.MustCompile(`(?s)<table[^>]*class="tbl medium[^"]*"[^>]*>(.*?)</table>`)
	rowRe      = regexp.MustCompile(`(?s)<tr[^>]*class="[^"]*\b(?:odd|even)\b[^"]*"[^>]*>(.*?)</tr>`)
	cellRe     = regexp.MustCompile(`(?s)<td[^>]*>(.*?)</td>`)
	bdiRe      = regexp.MustCompile(`(?s)<bdi[^>]*>(.*?)</bdi>`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
	mbidRe     = regexp.MustCompile(`/release/([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})`)
	durationRe = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
)

const coverArtURLFormat = "https://coverartarchive.org/release/%s/front"

// Parser extracts release information from MusicBrainz HTML pages.
//
// MusicBrainz renders the tracklist server-side as one table per disc,
// with the release title in the page heading. The Parser walks that
// markup and produces a Release model with per-disc tracklists.
//
// Example usage:
//
//	parser := NewParser(pathConfig, "Various Artists")
//
//	resp, _ := http.Get("https://musicbrainz.org/release/<mbid>")
//	html, _ := io.ReadAll(resp.Body)
//
//	release, err := parser.ParseReleasePage(url, string(html))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Release: %s by %s\n", release.Title, release.Artist)
type Parser struct {
	pathConfig       *model.PathConfig
	defaultPerformer string
}

// NewParser creates a new Parser with the given configuration.
//
// The pathConfig is used to compute output paths for parsed releases.
// The defaultPerformer is used as the release artist when the page
// does not name one, and cascades to tracks without their own artist.
func NewParser(pathCfg *model.PathConfig, defaultPerformer string) *Parser {
	return &Parser{
		pathConfig:       pathCfg,
		defaultPerformer: defaultPerformer,
	}
}

// ParseReleasePage extracts release info from a MusicBrainz release page.
//
// This method performs the following steps:
//  1. Extracts the release title from the page heading
//  2. Extracts the release artist (falling back to the default performer)
//  3. Walks the tracklist table(s), one per disc
//  4. Parses every track length into whole seconds
//  5. Synthesizes the Cover Art Archive URL from the release MBID
//
// The pageURL is the URL the HTML was fetched from; it supplies the
// release MBID. The htmlContent should be the full page source.
//
// Returns an error if:
//   - No release title is present (ErrMissingTitle)
//   - No tracklist rows are present (ErrEmptyTracklist)
//   - A track length does not parse (ErrMalformedDuration)
func (p *Parser) ParseReleasePage(pageURL, htmlContent string) (*model.Release, error) {
	title, ok := extractReleaseTitle(htmlContent)
	if !ok {
		return nil, ErrMissingTitle
	}

	artist := extractReleaseArtist(htmlContent)
	if artist == "" {
		artist = p.defaultPerformer
	}

	mbid := extractMBID(pageURL)
	coverURL := ""
	if mbid != "" {
		coverURL = fmt.Sprintf(coverArtURLFormat, mbid)
	}

	release := model.NewRelease(title, artist, mbid, coverURL, p.pathConfig)

	discs, err := p.extractDiscs(htmlContent, artist)
	if err != nil {
		return nil, err
	}
	release.Discs = discs

	return release, nil
}

// extractDiscs walks the per-disc tracklist tables.
//
// Each <table class="tbl medium"> is one disc; rows carry odd/even
// classes. Rows with fewer than five cells (headers, data-track rows)
// are skipped.
func (p *Parser) extractDiscs(htmlContent, releaseArtist string) ([]*model.Disc, error) {
	tables := tableRe.FindAllStringSubmatch(htmlContent, -1)
	if len(tables) == 0 {
		return nil, ErrEmptyTracklist
	}

	var discs []*model.Disc
	for i, table := range tables {
		disc := &model.Disc{Number: i + 1}

		for _, row := range rowRe.FindAllStringSubmatch(table[1], -1) {
			cells := cellRe.FindAllStringSubmatch(row[1], -1)
			if len(cells) < 5 {
				continue
			}

			length := cellText(cells[4][1])
			duration, err := ParseDuration(length)
			if err != nil {
				return nil, fmt.Errorf("track %q: %w", cellText(cells[1][1]), err)
			}

			performer := cellText(cells[2][1])
			if performer == "" {
				performer = releaseArtist
			}

			disc.Tracks = append(disc.Tracks, &model.Track{
				Number:    trackNumber(cellText(cells[0][1]), len(disc.Tracks)),
				Title:     cellText(cells[1][1]),
				Performer: performer,
				Duration:  duration,
			})
		}

		if len(disc.Tracks) > 0 {
			discs = append(discs, disc)
		}
	}

	if len(discs) == 0 {
		return nil, ErrEmptyTracklist
	}

	// Renumber discs in case empty tables were dropped
	for i, disc := range discs {
		disc.Number = i + 1
	}

	return discs, nil
}

// ParseDuration parses a "minutes:seconds" length into whole seconds.
//
// Minutes may exceed two digits ("123:04" is a valid mix length);
// seconds must be below 60. Anything else, including MusicBrainz's
// "?:??" placeholder for unknown lengths, returns ErrMalformedDuration.
func ParseDuration(s string) (int, error) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}

	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	if seconds >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}

	return minutes*60 + seconds, nil
}

// trackNumber returns the numeric track position, or the next
// sequential number when the position is vinyl-style ("A1", "B2").
func trackNumber(position string, parsedSoFar int) int {
	if n, err := strconv.Atoi(position); err == nil {
		return n
	}
	return parsedSoFar + 1
}

// extractReleaseTitle finds the release title in the page heading.
//
// MusicBrainz wraps the title in a <bdi> element inside the first <h1>.
func extractReleaseTitle(htmlContent string) (string, bool) {
	m := titleRe.FindStringSubmatch(htmlContent)
	if m == nil {
		return "", false
	}

	title := cellText(m[1])
	if title == "" {
		return "", false
	}
	return title, true
}

// extractReleaseArtist finds the release artist in the subheader line
// under the page heading. Returns "" when absent.
func extractReleaseArtist(htmlContent string) string {
	m := artistRe.FindStringSubmatch(htmlContent)
	if m == nil {
		return ""
	}
	return cellText(m[1])
}

// extractMBID pulls the release MBID out of a MusicBrainz URL.
// Returns "" when the URL carries none.
func extractMBID(pageURL string) string {
	m := mbidRe.FindStringSubmatch(pageURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// cellText reduces a table cell (or any markup fragment) to its text:
// the first <bdi> content when present, otherwise the whole fragment,
// with tags stripped, entities unescaped, and whitespace trimmed.
func cellText(fragment string) string {
	if m := bdiRe.FindStringSubmatch(fragment); m != nil {
		fragment = m[1]
	}
	text := tagRe.ReplaceAllString(fragment, "")
	return strings.TrimSpace(html.UnescapeString(text))
}
