package main

import (
	"context"
	"fmt"

	"github.com/spotport/spotport/internal/formatter"
	"github.com/spotport/spotport/internal/models"
	"github.com/spotport/spotport/internal/shared"
	"github.com/urfave/cli/v3"
)

// Tracks extracts the playlist and prints it to stdout. Plain-output mode:
// no service is contacted.
func (r *Runner) Tracks(ctx context.Context, cmd *cli.Command) error {
	r.configureLogging(cmd)

	tracks, meta, err := r.loadSource(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		payload := struct {
			Tracks   []models.Track  `json:"tracks"`
			Playlist models.Playlist `json:"playlist"`
		}{tracks, meta}
		return r.writeJSON(payload, cmd.Bool("pretty"))
	}

	switch format := cmd.String("output"); format {
	case "table":
		_, err := r.output.Write(formatter.ToTable(tracks))
		return err
	case "csv":
		data, err := formatter.ToCSV(tracks)
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	case "markdown":
		_, err := r.output.Write(formatter.ToMarkdown(tracks, meta, ""))
		return err
	default:
		return fmt.Errorf("%w: output must be table, csv, or markdown, got %q", shared.ErrInvalidFlag, format)
	}
}
