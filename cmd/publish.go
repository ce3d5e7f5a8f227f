package main

import (
	"context"
	"fmt"

	"github.com/spotport/spotport/internal/publisher"
	"github.com/spotport/spotport/internal/shared"
	"github.com/urfave/cli/v3"
)

// Publish runs the full pipeline: extract, authenticate, search per track,
// create the playlist, and add every matched track in one batch.
func (r *Runner) Publish(ctx context.Context, cmd *cli.Command) error {
	r.configureLogging(cmd)
	r.loadConfig(cmd)

	username := cmd.String("username")
	if username == "" {
		username = r.config.Service.Username
	}
	password := cmd.String("password")
	if password == "" {
		password = r.config.Service.Password
	}
	name := cmd.String("name")
	dryRun := cmd.Bool("dry-run")

	// Argument validation happens before any network or file work. Dry runs
	// still search the catalog, so they need credentials too.
	if username == "" || password == "" {
		return fmt.Errorf("%w: publish requires --username and --password", shared.ErrMissingArgument)
	}
	if !dryRun && name == "" {
		return fmt.Errorf("%w: publish requires --name", shared.ErrMissingArgument)
	}

	tracks, meta, err := r.loadSource(ctx, cmd)
	if err != nil {
		return err
	}

	r.logger.Info("authenticating", "service", r.service.Name(), "user", username)
	if err := r.service.Authenticate(ctx, username, password); err != nil {
		return err
	}

	engine := publisher.NewEngine(r.service, r.logger, r.config.Publish.RateLimit)

	if dryRun {
		matches, missed, err := engine.MatchTracks(ctx, tracks)
		if err != nil {
			return err
		}
		r.writePlain("%s\n", r.styles.Title("Dry run: no playlist created"))
		for _, m := range matches {
			if m.Found() {
				r.writePlain("%s %s - %s → %s\n", r.styles.OK("✓"), m.Track.ArtistLine(), m.Track.Name, m.ExternalID)
			} else {
				r.writePlain("%s %s - %s\n", r.styles.Warn("✗"), m.Track.ArtistLine(), m.Track.Name)
			}
		}
		r.writePlain("Matched %d/%d tracks (%d missed)\n", len(matches)-missed, len(matches), missed)
		return nil
	}

	report, err := engine.Publish(ctx, tracks, name, meta)
	if err != nil {
		// No rollback: tell the user which playlist was left behind.
		if report != nil && report.PlaylistID != "" {
			r.writePlain("%s\n", r.styles.Err(fmt.Sprintf("Playlist %s was created but adding tracks failed", report.PlaylistID)))
		}
		return err
	}

	r.writePlain("%s\n", r.styles.Title("Publish complete"))
	r.writePlain("Playlist: %s (%s)\n", name, report.PlaylistID)
	r.writePlain("Matched: %d/%d tracks\n", len(report.Matches)-report.Missed, len(report.Matches))

	if report.Missed > 0 {
		r.writePlain("%s\n", r.styles.Warn(fmt.Sprintf("No match found for %d tracks:", report.Missed)))
		for _, m := range report.Matches {
			if !m.Found() {
				r.writePlain("  - %s - %s\n", m.Track.ArtistLine(), m.Track.Name)
			}
		}
	}

	return nil
}
