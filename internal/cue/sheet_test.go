package cue

import (
	"fmt"
	"strings"
	"testing"

	"mbzcue/internal/model"
)

func singleDiscRelease(tracks ...*model.Track) *model.Release {
	release := &model.Release{
		Title:  "Test Album",
		Artist: "Artist X",
	}
	release.Discs = []*model.Disc{{Number: 1, Tracks: tracks}}
	return release
}

func TestSheetWriter_RenderDisc(t *testing.T) {
	release := singleDiscRelease(
		&model.Track{Number: 1, Title: "Intro", Performer: "Artist X", Duration: 30},
		&model.Track{Number: 2, Title: "Main", Performer: "Artist X", Duration: 225},
	)

	content := NewSheetWriter().RenderDisc(release, release.Discs[0], "album.wav")

	want := `PERFORMER "Artist X"
TITLE "Test Album"
FILE "album.wav" WAVE

TRACK 01 AUDIO
    TITLE "Intro"
    PERFORMER "Artist X"
    INDEX 01 00:00:00

TRACK 02 AUDIO
    TITLE "Main"
    PERFORMER "Artist X"
    INDEX 01 00:30:00
`
	if content != want {
		t.Errorf("RenderDisc() =\n%s\nwant:\n%s", content, want)
	}
}

func TestSheetWriter_CumulativeOffsets(t *testing.T) {
	durations := []int{30, 225, 61, 3600, 7}
	var tracks []*model.Track
	for i, d := range durations {
		tracks = append(tracks, &model.Track{
			Number:    i + 1,
			Title:     fmt.Sprintf("Track %d", i+1),
			Performer: "Artist X",
			Duration:  d,
		})
	}
	release := singleDiscRelease(tracks...)

	content := NewSheetWriter().RenderDisc(release, release.Discs[0], "album.wav")

	// Track i's INDEX offset is the sum of durations of tracks 1..i-1
	elapsed := 0
	for i, d := range durations {
		wantIndex := fmt.Sprintf("INDEX 01 %02d:%02d:00", elapsed/60, elapsed%60)
		if !strings.Contains(content, wantIndex) {
			t.Errorf("track %d: output missing %q", i+1, wantIndex)
		}
		elapsed += d
	}
}

func TestSheetWriter_TrackNumberPadding(t *testing.T) {
	var tracks []*model.Track
	for i := 0; i < 12; i++ {
		tracks = append(tracks, &model.Track{
			Number:    i + 1,
			Title:     fmt.Sprintf("Track %d", i+1),
			Performer: "Artist X",
			Duration:  60,
		})
	}
	release := singleDiscRelease(tracks...)

	content := NewSheetWriter().RenderDisc(release, release.Discs[0], "album.wav")

	if !strings.Contains(content, "TRACK 01 AUDIO") {
		t.Error("single-digit numbers should be zero-padded")
	}
	if !strings.Contains(content, "TRACK 12 AUDIO") {
		t.Error("two-digit numbers should be emitted as-is")
	}
	if strings.Contains(content, "TRACK 1 AUDIO") {
		t.Error("unpadded track number emitted")
	}
}

func TestSheetWriter_MultiDiscTitle(t *testing.T) {
	release := &model.Release{Title: "Double", Artist: "Artist X"}
	release.Discs = []*model.Disc{
		{Number: 1, Tracks: []*model.Track{{Number: 1, Title: "One", Performer: "Artist X", Duration: 60}}},
		{Number: 2, Tracks: []*model.Track{{Number: 1, Title: "Two", Performer: "Artist X", Duration: 60}}},
	}

	writer := NewSheetWriter()

	disc1 := writer.RenderDisc(release, release.Discs[0], "d1.wav")
	if !strings.Contains(disc1, `TITLE "Double (Disc 1)"`) {
		t.Errorf("disc 1 title not suffixed:\n%s", disc1)
	}

	disc2 := writer.RenderDisc(release, release.Discs[1], "d2.wav")
	if !strings.Contains(disc2, `TITLE "Double (Disc 2)"`) {
		t.Errorf("disc 2 title not suffixed:\n%s", disc2)
	}

	// Single-disc releases keep the plain title
	single := singleDiscRelease(&model.Track{Number: 1, Title: "Only", Performer: "A", Duration: 60})
	if !strings.Contains(writer.RenderDisc(single, single.Discs[0], "a.wav"), `TITLE "Test Album"`+"\n") {
		t.Error("single disc title should not carry a disc suffix")
	}
}

func TestSheetWriter_QuoteEscaping(t *testing.T) {
	release := singleDiscRelease(
		&model.Track{Number: 1, Title: `Say "Hello"`, Performer: "Artist X", Duration: 60},
	)

	content := NewSheetWriter().RenderDisc(release, release.Discs[0], "album.wav")

	if !strings.Contains(content, `TITLE "Say \"Hello\""`) {
		t.Errorf("embedded quotes not escaped:\n%s", content)
	}
}

func TestSheetWriter_Deterministic(t *testing.T) {
	release := singleDiscRelease(
		&model.Track{Number: 1, Title: "Intro", Performer: "Artist X", Duration: 30},
		&model.Track{Number: 2, Title: "Main", Performer: "Artist X", Duration: 225},
	)
	writer := NewSheetWriter()

	first := writer.RenderDisc(release, release.Discs[0], "album.wav")
	second := writer.RenderDisc(release, release.Discs[0], "album.wav")

	if first != second {
		t.Error("rendering the same release twice should produce identical output")
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{30, "00:30:00"},
		{60, "01:00:00"},
		{225, "03:45:00"},
		{3661, "61:01:00"},
		{6023, "100:23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatOffset(tt.seconds); got != tt.want {
				t.Errorf("formatOffset(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
