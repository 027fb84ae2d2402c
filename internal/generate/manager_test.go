package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mbzcue/internal/config"
	"mbzcue/internal/model"
)

func TestManager_ParseInputURLs(t *testing.T) {
	m := NewManager(config.DefaultSettings(), nil)

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"single URL", "https://musicbrainz.org/release/abc", 1},
		{"newline separated", "https://a.org/x\nhttps://b.org/y", 2},
		{"comma separated", "https://a.org/x,https://b.org/y", 2},
		{"blank lines and junk skipped", "\nhttps://a.org/x\n\nnot-a-url\n", 1},
		{"empty input", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.parseInputURLs(tt.input); len(got) != tt.want {
				t.Errorf("parseInputURLs(%q) = %v, want %d URLs", tt.input, got, tt.want)
			}
		})
	}
}

func TestManager_Generate(t *testing.T) {
	dir := t.TempDir()

	settings := config.DefaultSettings()
	settings.OutputDirectory = dir
	settings.WaveFileName = "album.wav"

	var events []ProgressEvent
	m := NewManager(settings, func(event ProgressEvent) {
		events = append(events, event)
	})

	release := model.NewRelease("Test Album", "Artist X", "", "", settings.ToPathConfig())
	release.Discs = []*model.Disc{{
		Number: 1,
		Tracks: []*model.Track{
			{Number: 1, Title: "Intro", Performer: "Artist X", Duration: 30},
			{Number: 2, Title: "Main", Performer: "Artist X", Duration: 225},
		},
	}}
	m.releases = []*model.Release{release}
	m.calculateTotals()

	if err := m.Generate(context.Background()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Test Album.cue"))
	if err != nil {
		t.Fatalf("cue sheet not written: %v", err)
	}

	content := string(data)
	for _, want := range []string{
		`TITLE "Test Album"`,
		`FILE "album.wav" WAVE`,
		"TRACK 01 AUDIO",
		"INDEX 01 00:00:00",
		"TRACK 02 AUDIO",
		"INDEX 01 00:30:00",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("cue sheet missing %q:\n%s", want, content)
		}
	}

	written, total := m.GetProgress()
	if written != 1 || total != 1 {
		t.Errorf("GetProgress() = %d/%d, want 1/1", written, total)
	}

	success := false
	for _, event := range events {
		if event.Level == LevelSuccess {
			success = true
		}
	}
	if !success {
		t.Error("expected a success-level progress event")
	}
}

func TestManager_GenerateMultiDisc(t *testing.T) {
	dir := t.TempDir()

	settings := config.DefaultSettings()
	settings.OutputDirectory = dir
	settings.WaveFileName = "disc{disc}.wav"

	m := NewManager(settings, nil)

	release := model.NewRelease("Double", "Artist X", "", "", settings.ToPathConfig())
	release.Discs = []*model.Disc{
		{Number: 1, Tracks: []*model.Track{{Number: 1, Title: "One", Performer: "Artist X", Duration: 60}}},
		{Number: 2, Tracks: []*model.Track{{Number: 1, Title: "Two", Performer: "Artist X", Duration: 60}}},
	}
	m.releases = []*model.Release{release}
	m.calculateTotals()

	if err := m.Generate(context.Background()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	disc1, err := os.ReadFile(filepath.Join(dir, "Double_disc1.cue"))
	if err != nil {
		t.Fatalf("disc 1 cue sheet not written: %v", err)
	}
	if !strings.Contains(string(disc1), `FILE "disc1.wav" WAVE`) {
		t.Errorf("disc 1 FILE directive wrong:\n%s", disc1)
	}

	disc2, err := os.ReadFile(filepath.Join(dir, "Double_disc2.cue"))
	if err != nil {
		t.Fatalf("disc 2 cue sheet not written: %v", err)
	}
	if !strings.Contains(string(disc2), `TITLE "Double (Disc 2)"`) {
		t.Errorf("disc 2 TITLE directive wrong:\n%s", disc2)
	}
}

func TestManager_InitializeRejectsEmptyInput(t *testing.T) {
	m := NewManager(config.DefaultSettings(), nil)

	if err := m.Initialize(context.Background(), ""); err == nil {
		t.Error("Initialize with no URLs should fail")
	}
}
