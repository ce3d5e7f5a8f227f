package formatter

import (
	"strings"
	"testing"

	"github.com/spotport/spotport/internal/models"
)

func TestToTable(t *testing.T) {
	t.Run("single track produces exactly two lines", func(t *testing.T) {
		tracks := []models.Track{{Name: "A", Artists: []string{"C"}, Album: "B"}}

		got := string(ToTable(tracks))
		want := "TRACK | ARTIST | ALBUM\nA | C | B\n"
		if got != want {
			t.Errorf("ToTable() = %q, want %q", got, want)
		}
	})

	t.Run("joins multiple artists", func(t *testing.T) {
		tracks := []models.Track{{Name: "Song", Artists: []string{"One", "Two"}, Album: "LP"}}

		got := string(ToTable(tracks))
		if !strings.Contains(got, "Song | One, Two | LP") {
			t.Errorf("expected joined artists, got %q", got)
		}
	})

	t.Run("empty listing still prints the header", func(t *testing.T) {
		got := string(ToTable(nil))
		if got != "TRACK | ARTIST | ALBUM\n" {
			t.Errorf("expected header only, got %q", got)
		}
	})
}

func TestToCSV(t *testing.T) {
	tracks := []models.Track{
		{Name: "A", Artists: []string{"C"}, Album: "B"},
		{Name: "With, Comma", Artists: []string{"X"}, Album: "Y"},
	}

	data, err := ToCSV(tracks)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "TRACK,ARTIST,ALBUM" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "A,C,B" {
		t.Errorf("unexpected record: %q", lines[1])
	}
	if lines[2] != `"With, Comma",X,Y` {
		t.Errorf("expected quoted comma field, got %q", lines[2])
	}
}

func TestToMarkdown(t *testing.T) {
	tracks := []models.Track{{Name: "A", Artists: []string{"C"}, Album: "B"}}
	meta := models.Playlist{Description: "d", CanonicalURL: "u"}

	got := string(ToMarkdown(tracks, meta, "Mix"))

	for _, want := range []string{
		"# Mix",
		"**Description**: d",
		"**Source**: u",
		"**Tracks**: 1",
		"1. C - A (B)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in markdown output:\n%s", want, got)
		}
	}

	t.Run("defaults the title and omits empty metadata", func(t *testing.T) {
		got := string(ToMarkdown(tracks, models.Playlist{}, ""))
		if !strings.HasPrefix(got, "# Playlist") {
			t.Errorf("expected default title, got %q", got)
		}
		if strings.Contains(got, "**Description**") || strings.Contains(got, "**Source**") {
			t.Errorf("did not expect metadata sections, got %q", got)
		}
	})
}
