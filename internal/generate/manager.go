package generate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"mbzcue/internal/config"
	"mbzcue/internal/cue"
	"mbzcue/internal/http"
	ioutils "mbzcue/internal/io"
	"mbzcue/internal/model"
	"mbzcue/internal/musicbrainz"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ReleaseSource extracts a release from a fetched page.
//
// The scraping strategy is the fragile part of the pipeline; keeping it
// behind this interface lets the page format change (or another site be
// supported) without touching rendering or orchestration.
type ReleaseSource interface {
	ParseReleasePage(pageURL, htmlContent string) (*model.Release, error)
}

// Manager coordinates cue sheet generation: fetch release pages, parse
// them, render cue sheets, write output files.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	source     ReleaseSource
	sheet      *cue.SheetWriter
	images     *ioutils.ImageService

	releases []*model.Release

	totalFiles   int32
	writtenFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new generation Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	timeout := time.Duration(settings.HTTPTimeoutSeconds * float64(time.Second))

	return &Manager{
		settings:   settings,
		httpClient: http.NewClient(settings.UserAgent, timeout),
		source:     musicbrainz.NewParser(settings.ToPathConfig(), settings.DefaultPerformer),
		sheet:      cue.NewSheetWriter(),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// Initialize fetches and parses release info from the input URLs.
//
// Input may contain several URLs separated by newlines or commas.
// Per-URL failures are reported as error events; Initialize only
// returns an error when no release could be parsed at all, so one bad
// URL does not sink a batch.
func (m *Manager) Initialize(ctx context.Context, inputURLs string) error {
	urls := m.parseInputURLs(inputURLs)
	if len(urls) == 0 {
		return fmt.Errorf("no release URLs given")
	}

	for _, releaseURL := range urls {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching release page: %s", releaseURL), Level: LevelVerbose})

		page, err := m.httpClient.GetString(ctx, releaseURL)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", releaseURL, err), Level: LevelError})
			continue
		}

		release, err := m.source.ParseReleasePage(releaseURL, page)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error parsing %s: %v", releaseURL, err), Level: LevelError})
			continue
		}

		m.releases = append(m.releases, release)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Found release: %s - %s (%d discs, %d tracks)",
			release.Artist, release.Title, len(release.Discs), release.TrackCount()), Level: LevelInfo})
	}

	if len(m.releases) == 0 {
		return fmt.Errorf("no release could be parsed from the given URLs")
	}

	m.calculateTotals()

	return nil
}

// Generate renders and writes cue sheets for all initialized releases.
//
// Releases run through a bounded group; a cue sheet write failure is
// terminal for its release and surfaces through the returned error.
// Cover art failures only warn, since the cue sheets are the point.
func (m *Manager) Generate(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentReleases)

	for _, release := range m.releases {
		release := release
		g.Go(func() error {
			return m.generateRelease(ctx, release)
		})
	}

	return g.Wait()
}

// GetProgress returns current generation progress as file counts.
func (m *Manager) GetProgress() (written, total int32) {
	return atomic.LoadInt32(&m.writtenFiles), m.totalFiles
}

// Releases returns the parsed releases, for display and dry runs.
func (m *Manager) Releases() []*model.Release {
	return m.releases
}

// GetReleaseNames returns the names of all initialized releases.
func (m *Manager) GetReleaseNames() []string {
	names := make([]string, len(m.releases))
	for i, release := range m.releases {
		names[i] = fmt.Sprintf("%s - %s (%d tracks)", release.Artist, release.Title, release.TrackCount())
	}
	return names
}

func (m *Manager) parseInputURLs(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == ','
	})

	var urls []string
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field != "" && (strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://")) {
			urls = append(urls, field)
		}
	}
	return urls
}

func (m *Manager) calculateTotals() {
	for _, release := range m.releases {
		m.totalFiles += int32(len(release.Discs))
		if m.settings.SaveCoverArt && release.HasCoverArt() {
			m.totalFiles++
		}
	}
}

func (m *Manager) generateRelease(ctx context.Context, release *model.Release) error {
	if err := ioutils.EnsureDir(m.settings.OutputDirectory); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating output directory: %v", err), Level: LevelError})
		return err
	}

	for _, disc := range release.Discs {
		content := m.sheet.RenderDisc(release, disc, m.waveFileName(release, disc))
		cuePath := release.CuePath(disc)

		if err := ioutils.WriteFile(ctx, cuePath, []byte(content)); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing %s: %v", cuePath, err), Level: LevelError})
			return fmt.Errorf("writing cue sheet: %w", err)
		}

		atomic.AddInt32(&m.writtenFiles, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s (%d tracks)", cuePath, len(disc.Tracks)), Level: LevelSuccess})
	}

	if m.settings.SaveCoverArt && release.HasCoverArt() {
		if err := m.saveCoverArt(ctx, release); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving cover art for %s: %v", release.Title, err), Level: LevelWarning})
		} else {
			atomic.AddInt32(&m.writtenFiles, 1)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Saved cover art to %s", release.CoverArtPath), Level: LevelVerbose})
		}
	}

	return nil
}

// waveFileName expands the configured audio filename for a disc.
// The {album} and {disc} placeholders are supported; a plain filename
// (the -wav_file flag) passes through untouched and is shared by all
// discs, as the original splitting workflow expects.
func (m *Manager) waveFileName(release *model.Release, disc *model.Disc) string {
	name := m.settings.WaveFileName
	name = strings.ReplaceAll(name, "{album}", release.Title)
	name = strings.ReplaceAll(name, "{disc}", strconv.Itoa(disc.Number))
	return name
}

func (m *Manager) saveCoverArt(ctx context.Context, release *model.Release) error {
	art, err := m.httpClient.DownloadBytes(ctx, release.CoverURL)
	if err != nil {
		return err
	}

	if m.settings.CoverArtResize {
		art, err = m.images.ResizeImage(ctx, art, m.settings.CoverArtMaxSize, m.settings.CoverArtMaxSize)
		if err != nil {
			return err
		}
	}

	if m.settings.ConvertCoverArtToJPG {
		art, err = m.images.ConvertToJPEG(ctx, art)
		if err != nil {
			return err
		}
	}

	return ioutils.WriteFile(ctx, release.CoverArtPath, art)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
