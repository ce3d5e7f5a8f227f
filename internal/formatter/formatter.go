// package formatter renders an extracted track listing in tabular, CSV, and
// Markdown forms.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/spotport/spotport/internal/models"
)

// ToTable renders the plain-output table: a header row, then one
// `name | artist(s) | album` line per track in source order.
func ToTable(tracks []models.Track) []byte {
	var buf bytes.Buffer

	buf.WriteString("TRACK | ARTIST | ALBUM\n")
	for _, track := range tracks {
		buf.WriteString(fmt.Sprintf("%s | %s | %s\n", track.Name, track.ArtistLine(), track.Album))
	}

	return buf.Bytes()
}

// ToCSV converts the track listing to CSV with columns TRACK, ARTIST, ALBUM.
func ToCSV(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"TRACK", "ARTIST", "ALBUM"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, track := range tracks {
		record := []string{track.Name, track.ArtistLine(), track.Album}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToMarkdown converts the track listing to a Markdown document with the
// playlist metadata up top when present.
func ToMarkdown(tracks []models.Track, meta models.Playlist, title string) []byte {
	var buf bytes.Buffer

	if title == "" {
		title = "Playlist"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))

	if meta.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", meta.Description))
	}
	if meta.CanonicalURL != "" {
		buf.WriteString(fmt.Sprintf("**Source**: %s\n\n", meta.CanonicalURL))
	}

	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range tracks {
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, track.ArtistLine(), track.Name, albumPart))
	}

	return buf.Bytes()
}
